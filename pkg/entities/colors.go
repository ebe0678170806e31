package entities

const (
	// ColorRed is the embed color for 赤.
	ColorRed = 0xE74C3C

	// ColorBlue is the embed color for 青, and the default for any
	// unrecognised color name.
	ColorBlue = 0x3498DB

	// ColorGold is the embed color for 黄色.
	ColorGold = 0xF1C40F

	// ColorGreen is the embed color for 緑.
	ColorGreen = 0x2ECC71
)

// colorNames maps the color names accepted by the configuration commands
// to their embed color values.
var colorNames = map[string]int{
	"赤":  ColorRed,
	"青":  ColorBlue,
	"黄色": ColorGold,
	"緑":  ColorGreen,
}

// ColorFromName resolves a color name to its embed color value. Unknown
// names fall back to blue rather than erroring.
func ColorFromName(name string) int {
	if c, ok := colorNames[name]; ok {
		return c
	}
	return ColorBlue
}
