package main

import (
	"fmt"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/NefyAD/madoguchi/pkg/messages"
)

func respondSlashError(a IApp, i *discordgo.InteractionCreate) error {
	return respondSlashEphemeral(a, i, messages.ErrUserErrorProcessing)
}

func respondSlashEphemeral(a IApp, i *discordgo.InteractionCreate, content string) error {
	return a.Session().InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func respondEmbedEphemeral(a IApp, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	return a.Session().InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
}

// commandOptions maps the options of a slash command by name.
func commandOptions(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption)
	for _, opt := range i.ApplicationCommandData().Options {
		opts[opt.Name] = opt
	}
	return opts
}

// optionString returns the string value of the named option, or the empty
// string if the option was not provided.
func optionString(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	opt, ok := opts[name]
	if !ok {
		return ""
	}
	return opt.StringValue()
}

// optionRoleID returns the role ID of the named role option, or the empty
// string if the option was not provided.
func optionRoleID(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	opt, ok := opts[name]
	if !ok {
		return ""
	}
	id, ok := opt.Value.(string)
	if !ok {
		return ""
	}
	return id
}

// optionAttachment resolves the named attachment option against the
// interaction's resolved data.
func optionAttachment(i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.MessageAttachment {
	opt, ok := opts[name]
	if !ok {
		return nil
	}
	resolved := i.ApplicationCommandData().Resolved
	if resolved == nil {
		return nil
	}
	id, ok := opt.Value.(string)
	if !ok {
		return nil
	}
	return resolved.Attachments[id]
}

// modalValue returns the value of the text input with the given custom ID
// from a modal submission.
func modalValue(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, c := range data.Components {
		row, ok := c.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, rc := range row.Components {
			input, ok := rc.(*discordgo.TextInput)
			if !ok {
				continue
			}
			if input.CustomID == customID {
				return input.Value
			}
		}
	}
	return ""
}

// isAdministrator reports whether the invoking member has the administrator
// permission. Configuration commands are restricted to administrators.
func isAdministrator(i *discordgo.InteractionCreate) bool {
	if i.Member == nil {
		return false
	}
	return i.Member.Permissions&discordgo.PermissionAdministrator != 0
}

// interactionGuild resolves the guild an interaction came from, preferring
// the state cache over the REST API.
func interactionGuild(a IApp, guildID string) (*discordgo.Guild, error) {
	guild, err := a.Session().State.Guild(guildID)
	if err == nil {
		return guild, nil
	}
	guild, err = a.Session().Guild(guildID)
	if err != nil {
		return nil, fmt.Errorf("error getting guild %s: %w", guildID, err)
	}
	return guild, nil
}

// guildIconURL is the CDN URL of the guild's icon, or empty when the guild
// has none.
func guildIconURL(guild *discordgo.Guild) string {
	if guild == nil || guild.Icon == "" {
		return ""
	}
	return discordgo.EndpointGuildIcon(guild.ID, guild.Icon)
}

// channelJumpURL is the link to a channel in the Discord client.
func channelJumpURL(guildID, channelID string) string {
	return fmt.Sprintf("https://discord.com/channels/%s/%s", guildID, channelID)
}
