package entities

// CommunityConfig is the ticketing configuration for a single guild.
// Configs are created lazily on first write and live for the process
// lifetime, or until a snapshot load overwrites them.
type CommunityConfig struct {
	// Buttons are the configured ticket buttons. Insertion order is the
	// display order of the selection menu.
	Buttons []ButtonDef `json:"buttons"`

	// StaffRoleID is the ID of the role that is mentioned when a ticket is
	// created. There is a single staff role per guild; configuring a new
	// button replaces it for every button, including ones configured
	// earlier.
	StaffRoleID string `json:"staff_role_id"`

	// AllowedRoleIDs are additional roles granted access to every ticket
	// channel in the guild.
	AllowedRoleIDs []string `json:"allowed_role_ids"`

	// Panel is the configuration for the published ticket panel.
	Panel PanelConfig `json:"panel"`

	// OpenEmbed is the configuration for the embed posted into a newly
	// created ticket channel.
	OpenEmbed OpenEmbedConfig `json:"open_embed"`

	// Close is the configuration for the close notification.
	Close CloseConfig `json:"close"`

	// Developer is the developer credit shown in the panel footer.
	Developer DeveloperInfo `json:"developer"`
}

// PanelConfig is the configuration for the ticket panel message.
type PanelConfig struct {
	// Title is the title of the panel embed.
	Title string `json:"title"`

	// Description is the description of the panel embed.
	Description string `json:"description"`

	// URL is the optional URL that the panel title links to.
	URL string `json:"url"`

	// Color is the color of the panel embed.
	Color int `json:"color"`

	// Image is the optional image shown in the panel embed.
	Image ImageRef `json:"image"`

	// TopRightImage is the optional thumbnail shown in the top right of
	// the panel embed.
	TopRightImage ImageRef `json:"top_right_image"`
}

// OpenEmbedConfig is the configuration for the embed posted into a new
// ticket channel.
type OpenEmbedConfig struct {
	// Title is the title of the embed.
	Title string `json:"title"`

	// Description is the description of the embed.
	Description string `json:"description"`

	// Color is the color of the embed.
	Color int `json:"color"`

	// Image is the optional image shown in the embed.
	Image ImageRef `json:"image"`
}

// CloseConfig is the configuration for the notification sent on ticket
// close.
type CloseConfig struct {
	// DMMessage is the message sent to the user when their ticket is
	// closed. An empty message disables the notification entirely.
	DMMessage string `json:"dm_message"`

	// Link is the optional URL for the "create another ticket" button
	// attached to the notification.
	Link string `json:"link"`

	// Image is the optional image shown in the notification embed.
	Image ImageRef `json:"image"`
}

// DeveloperInfo is the developer credit shown in the panel footer.
type DeveloperInfo struct {
	// Text is the footer text.
	Text string `json:"text"`

	// IconURL is the URL of the footer icon.
	IconURL string `json:"icon_url"`
}
