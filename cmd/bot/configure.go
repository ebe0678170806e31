package main

import (
	"fmt"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/NefyAD/madoguchi/pkg/entities"
	"github.com/NefyAD/madoguchi/pkg/messages"
)

// pendingButton is a ticket button configuration waiting for its category to
// be selected.
type pendingButton struct {
	// Emoji is the emoji shown on the button.
	Emoji string

	// Name is the name of the button.
	Name string

	// Description is the description of the button.
	Description string

	// StaffRoleID is the staff role mentioned in new tickets.
	StaffRoleID string

	// TicketRoleID is the extra role allowed to view tickets opened
	// through this button.
	TicketRoleID string
}

// ticketButtonCommand stores the button definition and offers the guild's
// categories in a select menu. The button is only appended once a category
// has been picked.
func ticketButtonCommand(a IApp, i *discordgo.InteractionCreate) error {
	if !isAdministrator(i) {
		return respondSlashEphemeral(a, i, messages.ErrPermissionDenied)
	}

	opts := commandOptions(i)

	a.SetPendingButton(i.GuildID, i.Member.User.ID, pendingButton{
		Emoji:        optionString(opts, optEmoji),
		Name:         optionString(opts, optName),
		Description:  optionString(opts, optDescription),
		StaffRoleID:  optionRoleID(opts, optStaffRole),
		TicketRoleID: optionRoleID(opts, optTicketRole),
	})

	channels, err := a.Session().GuildChannels(i.GuildID)
	if err != nil {
		return fmt.Errorf("error getting channels for guild %s: %w", i.GuildID, err)
	}

	options := make([]discordgo.SelectMenuOption, 0)
	for _, c := range channels {
		if c.Type != discordgo.ChannelTypeGuildCategory {
			continue
		}
		options = append(options, discordgo.SelectMenuOption{
			Label: c.Name,
			Value: c.ID,
		})
		// A select menu holds at most 25 options.
		if len(options) == 25 {
			break
		}
	}

	return a.Session().InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: messages.CategoryMenuPrompt,
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.SelectMenu{
							CustomID:    CategorySelectID,
							Placeholder: messages.CategoryMenuPlaceholder,
							Options:     options,
						},
					},
				},
			},
		},
	})
}

// categorySelected finishes the button configuration started by
// ticketButtonCommand.
func categorySelected(a IApp, i *discordgo.InteractionCreate) error {
	p, ok := a.TakePendingButton(i.GuildID, i.Member.User.ID)
	if !ok {
		return respondSlashError(a, i)
	}

	categoryID := i.MessageComponentData().Values[0]

	a.Settings().AppendButton(i.GuildID, entities.ButtonDef{
		CategoryID:   categoryID,
		Emoji:        p.Emoji,
		Name:         p.Name,
		Description:  p.Description,
		TicketRoleID: p.TicketRoleID,
	}, p.StaffRoleID)

	return respondSlashEphemeral(a, i, fmt.Sprintf(messages.ButtonAddedFmt,
		p.Name, categoryID, p.Emoji, roleName(a, i.GuildID, p.StaffRoleID), roleName(a, i.GuildID, p.TicketRoleID)))
}

// roleName resolves a role ID to its display name, falling back to the ID
// when the role is not cached.
func roleName(a IApp, guildID, roleID string) string {
	if roleID == "" {
		return ""
	}
	role, err := a.Session().State.Role(guildID, roleID)
	if err != nil || role.Name == "" {
		return roleID
	}
	return role.Name
}

// ticketTitleCommand opens the panel title modal.
func ticketTitleCommand(a IApp, i *discordgo.InteractionCreate) error {
	if !isAdministrator(i) {
		return respondSlashEphemeral(a, i, messages.ErrPermissionDenied)
	}

	return a.Session().InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: TicketTitleModalID,
			Title:    "チケットパネル設定",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "panel_title",
							Label:       "チケットパネルのタイトル",
							Style:       discordgo.TextInputShort,
							Placeholder: "例: サポートチケット",
							Required:    true,
						},
					},
				},
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "panel_description",
							Label:       "チケットパネルの説明",
							Style:       discordgo.TextInputParagraph,
							Placeholder: "例: サポートチームに連絡したい内容を書いてください。",
							Required:    false,
						},
					},
				},
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "panel_url",
							Label:       "タイトルのURL",
							Style:       discordgo.TextInputShort,
							Placeholder: "例: https://example.com",
							Required:    false,
						},
					},
				},
			},
		},
	})
}

// ticketTitleSubmitted stores the panel title, description and URL.
func ticketTitleSubmitted(a IApp, i *discordgo.InteractionCreate) error {
	data := i.ModalSubmitData()

	title := modalValue(data, "panel_title")
	a.Settings().SetPanelText(i.GuildID, title, modalValue(data, "panel_description"), modalValue(data, "panel_url"))

	return respondSlashEphemeral(a, i, fmt.Sprintf(messages.PanelTextSavedFmt, title))
}

// openTicketSettingsCommand opens the opening message embed modal.
func openTicketSettingsCommand(a IApp, i *discordgo.InteractionCreate) error {
	if !isAdministrator(i) {
		return respondSlashEphemeral(a, i, messages.ErrPermissionDenied)
	}

	return a.Session().InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: OpenTicketModalID,
			Title:    "チケット設定",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "embed_title",
							Label:       "チケットのタイトル",
							Style:       discordgo.TextInputShort,
							Placeholder: "例: サポートチケット",
							Required:    true,
						},
					},
				},
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "embed_description",
							Label:       "チケットの説明",
							Style:       discordgo.TextInputParagraph,
							Placeholder: "例: サポートチームに連絡したい内容を書いてください。",
							Required:    false,
						},
					},
				},
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "embed_color",
							Label:       "チケットのEmbedカラー（赤、青、黄色、緑から選択）",
							Style:       discordgo.TextInputShort,
							Placeholder: "例: 青",
							Required:    true,
						},
					},
				},
			},
		},
	})
}

// openTicketSettingsSubmitted stores the opening message embed settings.
func openTicketSettingsSubmitted(a IApp, i *discordgo.InteractionCreate) error {
	data := i.ModalSubmitData()

	a.Settings().SetOpenEmbed(i.GuildID,
		modalValue(data, "embed_title"),
		modalValue(data, "embed_description"),
		entities.ColorFromName(modalValue(data, "embed_color")),
	)

	return respondSlashEphemeral(a, i, messages.OpenEmbedSaved)
}

// ticketDmCommand opens the close DM modal.
func ticketDmCommand(a IApp, i *discordgo.InteractionCreate) error {
	if !isAdministrator(i) {
		return respondSlashEphemeral(a, i, messages.ErrPermissionDenied)
	}

	return a.Session().InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: DmModalID,
			Title:    "DMメッセージ設定",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "dm_message",
							Label:       "DMメッセージ",
							Style:       discordgo.TextInputParagraph,
							Placeholder: "例: チケットが開かれました。ご利用ありがとうございました。",
							Required:    true,
						},
					},
				},
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "ticket_link",
							Label:       "チケットリンク",
							Style:       discordgo.TextInputShort,
							Placeholder: "例: https://discord.com/channels/...",
							Required:    true,
						},
					},
				},
			},
		},
	})
}

// dmSubmitted stores the close DM message and reopen link.
func dmSubmitted(a IApp, i *discordgo.InteractionCreate) error {
	data := i.ModalSubmitData()

	a.Settings().SetCloseMessages(i.GuildID, modalValue(data, "dm_message"), modalValue(data, "ticket_link"))

	return respondSlashEphemeral(a, i, messages.DMSettingsSaved)
}

// ticketSettingsCommand stores the panel image, color and thumbnail.
func ticketSettingsCommand(a IApp, i *discordgo.InteractionCreate) error {
	if !isAdministrator(i) {
		return respondSlashEphemeral(a, i, messages.ErrPermissionDenied)
	}

	opts := commandOptions(i)

	a.Settings().SetPanelVisuals(i.GuildID,
		entities.ImageFromAttachment(optionAttachment(i, opts, optImageFile)),
		entities.ColorFromName(optionString(opts, optColor)),
		entities.ImageFromAttachment(optionAttachment(i, opts, optTopRightImageFile)),
	)

	if roleID := optionRoleID(opts, optAllowedRoles); roleID != "" {
		a.Settings().SetAllowedRoles(i.GuildID, []string{roleID})
	}

	return respondSlashEphemeral(a, i, messages.PanelVisualsSaved)
}

// ticketEmbedSettingsCommand stores the open and close embed images.
func ticketEmbedSettingsCommand(a IApp, i *discordgo.InteractionCreate) error {
	if !isAdministrator(i) {
		return respondSlashEphemeral(a, i, messages.ErrPermissionDenied)
	}

	opts := commandOptions(i)

	a.Settings().SetEmbedImages(i.GuildID,
		entities.ImageFromAttachment(optionAttachment(i, opts, optOpenImageFile)),
		entities.ImageFromAttachment(optionAttachment(i, opts, optCloseImageFile)),
	)

	return respondSlashEphemeral(a, i, messages.EmbedImagesSaved)
}

// ticketDevelopCommand stores the panel footer text and icon.
func ticketDevelopCommand(a IApp, i *discordgo.InteractionCreate) error {
	if !isAdministrator(i) {
		return respondSlashEphemeral(a, i, messages.ErrPermissionDenied)
	}

	opts := commandOptions(i)

	a.Settings().SetDeveloperInfo(i.GuildID, entities.DeveloperInfo{
		Text:    optionString(opts, optText),
		IconURL: optionString(opts, optIconURL),
	})

	return respondSlashEphemeral(a, i, messages.DeveloperInfoSaved)
}
