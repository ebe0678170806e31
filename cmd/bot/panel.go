package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/NefyAD/madoguchi/pkg/entities"
	"github.com/NefyAD/madoguchi/pkg/messages"
	"github.com/NefyAD/madoguchi/pkg/panel"
	"github.com/NefyAD/madoguchi/pkg/ticket"
)

// ticketPanelCommand publishes the ticket panel into the channel the
// command was invoked in.
func ticketPanelCommand(a IApp, i *discordgo.InteractionCreate) error {
	if !isAdministrator(i) {
		return respondSlashEphemeral(a, i, messages.ErrPermissionDenied)
	}

	guild, err := interactionGuild(a, i.GuildID)
	if err != nil {
		return fmt.Errorf("error getting guild %s: %w", i.GuildID, err)
	}

	msg, err := a.Panels().Render(guild)
	if errors.Is(err, panel.ErrNoButtons) {
		return respondSlashEphemeral(a, i, messages.ErrNoButtonsConfigured)
	} else if err != nil {
		return fmt.Errorf("error rendering panel for guild %s: %w", i.GuildID, err)
	}

	if _, err := a.Session().ChannelMessageSendComplex(i.ChannelID, msg); err != nil {
		return fmt.Errorf("error publishing panel: %w", err)
	}

	return respondSlashEphemeral(a, i, messages.PanelPublished)
}

// ticketSelected opens a ticket for the option picked from the panel's
// selection menu.
func ticketSelected(a IApp, i *discordgo.InteractionCreate) error {
	value := i.MessageComponentData().Values[0]

	categoryID, position, err := entities.ParseMenuValue(value)
	if err != nil {
		return fmt.Errorf("error parsing menu value %q: %w", value, err)
	}

	cfg := a.Settings().Community(i.GuildID)
	if position < 0 || position >= len(cfg.Buttons) {
		// The panel message outlived the configuration it was built from.
		return respondSlashError(a, i)
	}
	button := cfg.Buttons[position]

	guild, err := interactionGuild(a, i.GuildID)
	if err != nil {
		return fmt.Errorf("error getting guild %s: %w", i.GuildID, err)
	}

	user := i.Member.User

	t, err := a.Tickets().Create(context.Background(), ticket.CreateRequest{
		GuildID:      i.GuildID,
		GuildName:    guild.Name,
		GuildIconURL: guildIconURL(guild),
		CategoryID:   categoryID,
		Button:       button,
		Requester: ticket.Requester{
			ID:        user.ID,
			Username:  user.Username,
			AvatarURL: user.AvatarURL(""),
		},
	})
	switch {
	case errors.Is(err, ticket.ErrCategoryNotFound):
		return respondSlashEphemeral(a, i, messages.ErrCategoryNotFound)
	case errors.Is(err, ticket.ErrDuplicateTicket):
		return respondSlashEphemeral(a, i, messages.ErrTicketAlreadyOpen)
	case err != nil:
		return fmt.Errorf("error creating ticket: %w", err)
	}

	TotalTicketsCreated.Inc()

	embed := &discordgo.MessageEmbed{
		Title:       messages.TicketCreatedTitle,
		Description: messages.TicketCreatedDescription,
		Color:       cfg.OpenEmbed.Color,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    user.Username,
			IconURL: user.AvatarURL(""),
		},
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label: messages.VisitTicketLabel,
					Style: discordgo.LinkButton,
					Emoji: discordgo.ComponentEmoji{Name: "🎫"},
					URL:   channelJumpURL(i.GuildID, t.ChannelID),
				},
			},
		},
	}

	return respondEmbedEphemeral(a, i, embed, components)
}
