package panel

import (
	"errors"
	"log/slog"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/NefyAD/madoguchi/pkg/entities"
	"github.com/NefyAD/madoguchi/pkg/logging"
	"github.com/NefyAD/madoguchi/pkg/messages"
	"github.com/NefyAD/madoguchi/pkg/settings"
)

// SelectMenuID is the custom ID of the ticket selection menu attached to
// every published panel.
const SelectMenuID = "ticket_select"

// ErrNoButtons is returned when a panel is rendered for a guild with no
// ticket buttons configured. The panel is not published; the operator is
// told instead.
var ErrNoButtons = errors.New("no ticket buttons configured")

// Builder renders the ticket panel message from the configuration store.
type Builder struct {
	// l is the logger.
	l *slog.Logger

	// store is the configuration store.
	store *settings.Store
}

// NewBuilder creates a new panel builder over the given store.
func NewBuilder(l *slog.Logger, store *settings.Store) *Builder {
	return &Builder{
		l:     l.With(slog.String(logging.KeyComponent, "panel")),
		store: store,
	}
}

// Render builds the panel message for the guild: an embed carrying the
// configured panel text and visuals, and a selection menu with one entry
// per configured button in insertion order.
func (b *Builder) Render(guild *discordgo.Guild) (*discordgo.MessageSend, error) {
	cfg := b.store.Community(guild.ID)

	if len(cfg.Buttons) == 0 {
		return nil, ErrNoButtons
	}

	embed := &discordgo.MessageEmbed{
		Title:       cfg.Panel.Title,
		URL:         cfg.Panel.URL,
		Description: cfg.Panel.Description,
		Color:       cfg.Panel.Color,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    guild.Name,
			IconURL: guildIconURL(guild),
		},
	}

	if cfg.Developer != (entities.DeveloperInfo{}) {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text:    cfg.Developer.Text,
			IconURL: cfg.Developer.IconURL,
		}
	}

	if !cfg.Panel.Image.IsZero() {
		embed.Image = &discordgo.MessageEmbedImage{URL: cfg.Panel.Image.URL}
	}

	if !cfg.Panel.TopRightImage.IsZero() {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: cfg.Panel.TopRightImage.URL}
	}

	options := make([]discordgo.SelectMenuOption, 0, len(cfg.Buttons))
	for i, button := range cfg.Buttons {
		options = append(options, discordgo.SelectMenuOption{
			Label:       button.Name,
			Value:       button.MenuValue(i),
			Description: button.Description,
			Emoji:       discordgo.ComponentEmoji{Name: button.Emoji},
		})
	}

	return &discordgo.MessageSend{
		Embed: embed,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						CustomID:    SelectMenuID,
						Placeholder: messages.PanelMenuPlaceholder,
						Options:     options,
					},
				},
			},
		},
	}, nil
}

// guildIconURL returns the CDN URL of the guild icon, or an empty string
// when the guild has none.
func guildIconURL(guild *discordgo.Guild) string {
	if guild.Icon == "" {
		return ""
	}
	return discordgo.EndpointGuildIcon(guild.ID, guild.Icon)
}
