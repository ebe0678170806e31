package main

import (
	"errors"
	"fmt"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/NefyAD/madoguchi/pkg/messages"
	"github.com/NefyAD/madoguchi/pkg/snapshots"
)

// ticketSaveCommand writes the current settings of every guild to a new
// snapshot file.
func ticketSaveCommand(a IApp, i *discordgo.InteractionCreate) error {
	if !isAdministrator(i) {
		return respondSlashEphemeral(a, i, messages.ErrPermissionDenied)
	}

	handle, err := a.Snapshots().Save(a.Settings().Export())
	if err != nil {
		return fmt.Errorf("error saving snapshot: %w", err)
	}

	return respondSlashEphemeral(a, i, fmt.Sprintf(messages.SnapshotSavedFmt, handle.Name))
}

// ticketRoadCommand lists the saved snapshots in a select menu.
func ticketRoadCommand(a IApp, i *discordgo.InteractionCreate) error {
	if !isAdministrator(i) {
		return respondSlashEphemeral(a, i, messages.ErrPermissionDenied)
	}

	handles, err := a.Snapshots().List()
	if err != nil {
		return fmt.Errorf("error listing snapshots: %w", err)
	}
	if len(handles) == 0 {
		return respondSlashEphemeral(a, i, messages.ErrNoSnapshots)
	}

	options := make([]discordgo.SelectMenuOption, 0, len(handles))
	for _, h := range handles {
		options = append(options, discordgo.SelectMenuOption{
			Label: h.Name,
			Value: h.Name,
		})
		// A select menu holds at most 25 options.
		if len(options) == 25 {
			break
		}
	}

	return a.Session().InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: messages.SnapshotMenuPrompt,
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.SelectMenu{
							CustomID:    SnapshotSelectID,
							Placeholder: messages.SnapshotMenuPlaceholder,
							Options:     options,
						},
					},
				},
			},
		},
	})
}

// snapshotSelected loads the selected snapshot into the settings store.
func snapshotSelected(a IApp, i *discordgo.InteractionCreate) error {
	name := i.MessageComponentData().Values[0]

	snap, err := a.Snapshots().Load(name)
	if errors.Is(err, snapshots.ErrSnapshotNotFound) {
		return respondSlashEphemeral(a, i, messages.ErrSnapshotMissing)
	} else if err != nil {
		return fmt.Errorf("error loading snapshot %s: %w", name, err)
	}

	a.Settings().Import(snap)

	return respondSlashEphemeral(a, i, fmt.Sprintf(messages.SnapshotLoadedFmt, name))
}
