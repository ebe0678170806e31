package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/NefyAD/madoguchi/pkg/logging"
	"github.com/NefyAD/madoguchi/pkg/messages"
	"github.com/NefyAD/madoguchi/pkg/ticket"
	"log/slog"
)

// pinTicket decorates the ticket channel name with the pin marker. Staff
// only.
func pinTicket(a IApp, i *discordgo.InteractionCreate) error {
	channel, err := a.Session().Channel(i.ChannelID)
	if err != nil {
		return fmt.Errorf("error getting channel %s: %w", i.ChannelID, err)
	}

	err = a.Tickets().Pin(context.Background(), ticket.PinRequest{
		GuildID:     i.GuildID,
		ChannelID:   i.ChannelID,
		ChannelName: channel.Name,
		ActorID:     i.Member.User.ID,
		ActorRoles:  i.Member.Roles,
	})
	if errors.Is(err, ticket.ErrPermissionDenied) {
		return respondSlashEphemeral(a, i, messages.ErrPermissionDenied)
	} else if err != nil {
		return fmt.Errorf("error pinning ticket: %w", err)
	}

	return respondSlashEphemeral(a, i, messages.TicketPinned)
}

// closeTicketPrompt shows the yes/no close confirmation.
func closeTicketPrompt(a IApp, i *discordgo.InteractionCreate) error {
	embed, components := ticket.ClosePrompt()
	return respondEmbedEphemeral(a, i, embed, components)
}

// confirmCloseTicket completes the close. The interaction is acknowledged
// before the channel is deleted, as the channel the prompt lives in is
// about to disappear.
func confirmCloseTicket(a IApp, i *discordgo.InteractionCreate) error {
	if err := a.Session().InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}); err != nil {
		return fmt.Errorf("error acknowledging interaction: %w", err)
	}

	guild, err := interactionGuild(a, i.GuildID)
	if err != nil {
		return fmt.Errorf("error getting guild %s: %w", i.GuildID, err)
	}

	user := i.Member.User

	res, err := a.Tickets().ConfirmClose(context.Background(), ticket.CloseRequest{
		GuildID:      i.GuildID,
		GuildName:    guild.Name,
		GuildIconURL: guildIconURL(guild),
		ChannelID:    i.ChannelID,
		Actor: ticket.Requester{
			ID:        user.ID,
			Username:  user.Username,
			AvatarURL: user.AvatarURL(""),
		},
	})
	if err != nil {
		return fmt.Errorf("error closing ticket: %w", err)
	}

	TotalTicketsClosed.Inc()

	// Guilds with no DM template attempt no delivery; only a configured
	// notification that failed to arrive is worth a warning.
	if res.DMConfigured && !res.DMSent {
		a.Log().Warn("Close notification was not delivered",
			slog.String(logging.KeyGuild, i.GuildID),
			slog.String(logging.KeyUser, user.ID),
		)
	}
	return nil
}

// cancelCloseTicket dismisses the close prompt.
func cancelCloseTicket(a IApp, i *discordgo.InteractionCreate) error {
	return respondSlashEphemeral(a, i, messages.CloseCancelled)
}
