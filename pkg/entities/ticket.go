package entities

import (
	"strings"

	"github.com/NefyAD/madoguchi/pkg/custom"
)

const (
	// TicketChannelPrefix is the prefix of every ticket channel name.
	TicketChannelPrefix = "ticket-"

	// PinMarker is the prefix added to a ticket channel name when the
	// ticket is pinned. Pinning is a name decoration, not a distinct
	// ticket state.
	PinMarker = "📌"
)

// Ticket is a live ticket. Tickets are not persisted; their existence is
// derived from the presence of a channel following the ticket naming
// convention under the chosen category.
type Ticket struct {
	// GuildID is the ID of the guild that the ticket is in.
	GuildID string `json:"guild_id"`

	// ChannelID is the ID of the ticket channel.
	ChannelID string `json:"channel_id"`

	// ChannelName is the name of the ticket channel.
	ChannelName string `json:"channel_name"`

	// CategoryID is the ID of the category the channel was created under.
	CategoryID string `json:"category_id"`

	// UserID is the ID of the user that created the ticket.
	UserID string `json:"user_id"`

	// Username is the username of the user that created the ticket.
	Username string `json:"username"`

	// CreatedAt is the time that the ticket was created.
	CreatedAt custom.Datetime `json:"created_at"`
}

// TicketChannelName returns the channel name for a ticket created by the
// given user. Usernames are lowercased to match the names Discord assigns
// to created channels, so the result is comparable against live channel
// listings.
func TicketChannelName(username string) string {
	return TicketChannelPrefix + strings.ToLower(username)
}

// IsTicketChannel reports whether the given channel name follows the
// ticket naming convention, pinned or not.
func IsTicketChannel(name string) bool {
	return strings.HasPrefix(UnpinnedName(name), TicketChannelPrefix)
}

// PinnedName returns the channel name with the pin marker applied. The
// result carries exactly one marker no matter how often it is applied, so
// a repeated pin never stacks markers.
func PinnedName(name string) string {
	return PinMarker + UnpinnedName(name)
}

// UnpinnedName returns the channel name with every pin marker stripped.
// Channels renamed outside the bot may carry stacked markers; the
// duplicate-ticket check has to see through all of them.
func UnpinnedName(name string) string {
	for strings.HasPrefix(name, PinMarker) {
		name = strings.TrimPrefix(name, PinMarker)
	}
	return name
}
