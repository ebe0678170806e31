package ticket

import (
	"context"

	"github.com/Jacobbrewer1/discordgo"
)

// Platform is the channel-provisioning collaborator the lifecycle runs
// against. The production implementation wraps a discord session; tests
// substitute a fake.
type Platform interface {
	// Category looks up a category channel in the guild. It returns
	// ErrCategoryNotFound when the category does not exist, is not a
	// category, or belongs to another guild.
	Category(ctx context.Context, guildID, categoryID string) (*discordgo.Channel, error)

	// GuildChannels lists every channel in the guild. Used for the
	// duplicate-ticket check by name.
	GuildChannels(ctx context.Context, guildID string) ([]*discordgo.Channel, error)

	// CreateChannel provisions a new channel in the guild.
	CreateChannel(ctx context.Context, guildID string, data discordgo.GuildChannelCreateData) (*discordgo.Channel, error)

	// RenameChannel changes the display name of a channel.
	RenameChannel(ctx context.Context, channelID, name string) error

	// DeleteChannel deletes a channel.
	DeleteChannel(ctx context.Context, channelID string) error

	// SendMessage posts a message into a channel.
	SendMessage(ctx context.Context, channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error)

	// SendDirectMessage sends a direct message to a user.
	SendDirectMessage(ctx context.Context, userID string, msg *discordgo.MessageSend) (*discordgo.Message, error)
}
