package main

import (
	"github.com/Jacobbrewer1/discordgo"
	"github.com/NefyAD/madoguchi/pkg/panel"
	"github.com/NefyAD/madoguchi/pkg/ticket"
)

const (
	// TicketButtonCmdName is the command for configuring a ticket button.
	TicketButtonCmdName = "ticket_button"

	// TicketTitleCmdName is the command for configuring the panel title and
	// description.
	TicketTitleCmdName = "ticket_title"

	// OpenTicketSettingsCmdName is the command for configuring the opening
	// message embed.
	OpenTicketSettingsCmdName = "open_ticket_settings"

	// TicketPanelCmdName is the command for publishing the ticket panel.
	TicketPanelCmdName = "ticket_panel"

	// TicketDmCmdName is the command for configuring the close DM.
	TicketDmCmdName = "ticket_dm"

	// TicketSettingsCmdName is the command for configuring the panel
	// visuals.
	TicketSettingsCmdName = "ticket_settings"

	// TicketEmbedSettingsCmdName is the command for configuring the open
	// and close embed images.
	TicketEmbedSettingsCmdName = "ticket_embed_settings"

	// TicketDevelopCmdName is the command for configuring the panel footer.
	TicketDevelopCmdName = "ticket_develop"

	// TicketSaveCmdName is the command for saving settings to a snapshot.
	TicketSaveCmdName = "ticket_save"

	// TicketRoadCmdName is the command for loading settings from a
	// snapshot.
	TicketRoadCmdName = "ticket_road"
)

const (
	// CategorySelectID is the ID of the category selection menu shown
	// while configuring a ticket button.
	CategorySelectID = "ticket_button_category"

	// SnapshotSelectID is the ID of the snapshot selection menu.
	SnapshotSelectID = "snapshot_select"

	// TicketTitleModalID is the ID of the panel title modal.
	TicketTitleModalID = "ticket_title_modal"

	// OpenTicketModalID is the ID of the opening message embed modal.
	OpenTicketModalID = "open_ticket_modal"

	// DmModalID is the ID of the close DM modal.
	DmModalID = "dm_modal"
)

const (
	// optEmoji is the emoji shown on a ticket button.
	optEmoji = "emoji"

	// optName is the name of a ticket button.
	optName = "name"

	// optDescription is the description of a ticket button.
	optDescription = "description"

	// optStaffRole is the staff role mentioned in new tickets.
	optStaffRole = "staff_role"

	// optTicketRole is the extra role allowed to view a ticket.
	optTicketRole = "ticket_role"

	// optImageFile is the panel image attachment.
	optImageFile = "image_file"

	// optColor is the panel embed color name.
	optColor = "color"

	// optTopRightImageFile is the panel thumbnail attachment.
	optTopRightImageFile = "top_right_image_file"

	// optAllowedRoles is the role granted access to every ticket channel.
	optAllowedRoles = "allowed_roles"

	// optOpenImageFile is the opening message embed image attachment.
	optOpenImageFile = "open_image_file"

	// optCloseImageFile is the close notification embed image attachment.
	optCloseImageFile = "close_image_file"

	// optText is the panel footer text.
	optText = "text"

	// optIconURL is the panel footer icon URL.
	optIconURL = "icon_url"
)

// commands is the full set of slash commands registered for every guild.
func commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        TicketButtonCmdName,
			Type:        discordgo.ChatApplicationCommand,
			Description: "チケット作成ボタンとスタッフロールおよび閲覧可能ロールを設定します。",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        optEmoji,
					Type:        discordgo.ApplicationCommandOptionString,
					Description: "ボタンに表示する絵文字",
					Required:    true,
				},
				{
					Name:        optName,
					Type:        discordgo.ApplicationCommandOptionString,
					Description: "ボタンの名前",
					Required:    true,
				},
				{
					Name:        optDescription,
					Type:        discordgo.ApplicationCommandOptionString,
					Description: "ボタンの説明",
					Required:    true,
				},
				{
					Name:        optStaffRole,
					Type:        discordgo.ApplicationCommandOptionRole,
					Description: "通知するスタッフロール（@メンション）",
					Required:    true,
				},
				{
					Name:        optTicketRole,
					Type:        discordgo.ApplicationCommandOptionRole,
					Description: "チケットを閲覧できる追加ロール（@メンション）",
					Required:    true,
				},
			},
		},
		{
			Name:        TicketTitleCmdName,
			Type:        discordgo.ChatApplicationCommand,
			Description: "チケットパネルのタイトルと説明を設定します。",
		},
		{
			Name:        OpenTicketSettingsCmdName,
			Type:        discordgo.ChatApplicationCommand,
			Description: "チケットが送信されたときのEmbedカラー、タイトル、説明を設定します。",
		},
		{
			Name:        TicketPanelCmdName,
			Type:        discordgo.ChatApplicationCommand,
			Description: "チケットパネルを作成します。",
		},
		{
			Name:        TicketDmCmdName,
			Type:        discordgo.ChatApplicationCommand,
			Description: "チケットを開いた際にDMで送信する内容を設定します。",
		},
		{
			Name:        TicketSettingsCmdName,
			Type:        discordgo.ChatApplicationCommand,
			Description: "チケットパネルの設定を管理します。",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        optImageFile,
					Type:        discordgo.ApplicationCommandOptionAttachment,
					Description: "パネルに表示する画像やGIFのファイル",
					Required:    true,
				},
				{
					Name:        optColor,
					Type:        discordgo.ApplicationCommandOptionString,
					Description: "パネルの埋め込みカラー（赤、青、黄色、緑から選択）",
					Required:    true,
				},
				{
					Name:        optTopRightImageFile,
					Type:        discordgo.ApplicationCommandOptionAttachment,
					Description: "パネルの右上に表示する画像のファイル",
					Required:    true,
				},
				{
					Name:        optAllowedRoles,
					Type:        discordgo.ApplicationCommandOptionRole,
					Description: "チケットを見れるようにするロール（@メンション）",
					Required:    true,
				},
			},
		},
		{
			Name:        TicketEmbedSettingsCmdName,
			Type:        discordgo.ChatApplicationCommand,
			Description: "チケットを開いた時と閉じた時のembedに画像を追加します。",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        optOpenImageFile,
					Type:        discordgo.ApplicationCommandOptionAttachment,
					Description: "チケットを開いた時のembedに表示する画像のファイル",
					Required:    true,
				},
				{
					Name:        optCloseImageFile,
					Type:        discordgo.ApplicationCommandOptionAttachment,
					Description: "チケットを閉じた時のembedに表示する画像のファイル",
					Required:    true,
				},
			},
		},
		{
			Name:        TicketDevelopCmdName,
			Type:        discordgo.ChatApplicationCommand,
			Description: "チケットパネルの左下に表示する文章と画像を設定します。",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        optText,
					Type:        discordgo.ApplicationCommandOptionString,
					Description: "表示する文章",
					Required:    true,
				},
				{
					Name:        optIconURL,
					Type:        discordgo.ApplicationCommandOptionString,
					Description: "表示するアイコンのURL",
					Required:    true,
				},
			},
		},
		{
			Name:        TicketSaveCmdName,
			Type:        discordgo.ChatApplicationCommand,
			Description: "全ての設定した内容を保存します。",
		},
		{
			Name:        TicketRoadCmdName,
			Type:        discordgo.ChatApplicationCommand,
			Description: "保存済みの設定ファイルを一覧から選んでロードします。",
		},
	}
}

// slashControllers maps slash command names to their processors.
func slashControllers() map[string]commandProcessor {
	return map[string]commandProcessor{
		TicketButtonCmdName:        ticketButtonCommand,
		TicketTitleCmdName:         ticketTitleCommand,
		OpenTicketSettingsCmdName:  openTicketSettingsCommand,
		TicketPanelCmdName:         ticketPanelCommand,
		TicketDmCmdName:            ticketDmCommand,
		TicketSettingsCmdName:      ticketSettingsCommand,
		TicketEmbedSettingsCmdName: ticketEmbedSettingsCommand,
		TicketDevelopCmdName:       ticketDevelopCommand,
		TicketSaveCmdName:          ticketSaveCommand,
		TicketRoadCmdName:          ticketRoadCommand,
	}
}

// componentControllers maps component custom IDs to their processors.
func componentControllers() map[string]commandProcessor {
	return map[string]commandProcessor{
		panel.SelectMenuID:          ticketSelected,
		CategorySelectID:            categorySelected,
		SnapshotSelectID:            snapshotSelected,
		ticket.PinButtonID:          pinTicket,
		ticket.CloseButtonID:        closeTicketPrompt,
		ticket.ConfirmCloseButtonID: confirmCloseTicket,
		ticket.CancelCloseButtonID:  cancelCloseTicket,
	}
}

// modalControllers maps modal custom IDs to their processors.
func modalControllers() map[string]commandProcessor {
	return map[string]commandProcessor{
		TicketTitleModalID: ticketTitleSubmitted,
		OpenTicketModalID:  openTicketSettingsSubmitted,
		DmModalID:          dmSubmitted,
	}
}
