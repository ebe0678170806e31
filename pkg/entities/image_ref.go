package entities

import (
	"encoding/json"

	"github.com/Jacobbrewer1/discordgo"
)

// ImageRef is a reference to an image used in an embed. Uploaded
// attachments are resolved to their CDN URL at configuration time, so
// downstream rendering and persistence only ever deal with URL strings.
type ImageRef struct {
	// URL is the resolved URL of the image. Empty means no image.
	URL string
}

// ImageFromURL creates an ImageRef from a plain URL string.
func ImageFromURL(url string) ImageRef {
	return ImageRef{URL: url}
}

// ImageFromAttachment creates an ImageRef from an uploaded attachment.
func ImageFromAttachment(a *discordgo.MessageAttachment) ImageRef {
	if a == nil {
		return ImageRef{}
	}
	return ImageRef{URL: a.URL}
}

// IsZero reports whether no image is set.
func (r ImageRef) IsZero() bool {
	return r.URL == ""
}

// MarshalJSON implements the json.Marshaler interface. Images persist as
// their resolved URL string.
func (r ImageRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.URL)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (r *ImageRef) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.URL)
}
