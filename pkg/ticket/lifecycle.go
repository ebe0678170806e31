package ticket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/NefyAD/madoguchi/pkg/custom"
	"github.com/NefyAD/madoguchi/pkg/entities"
	"github.com/NefyAD/madoguchi/pkg/logging"
	"github.com/NefyAD/madoguchi/pkg/messages"
	"github.com/NefyAD/madoguchi/pkg/settings"
)

const (
	// PinButtonID is the custom ID of the pin button on the opening
	// message.
	PinButtonID = "pin_ticket"

	// CloseButtonID is the custom ID of the close button on the opening
	// message.
	CloseButtonID = "close_ticket"

	// ConfirmCloseButtonID is the custom ID of the "yes" button on the
	// close confirmation prompt.
	ConfirmCloseButtonID = "confirm_close"

	// CancelCloseButtonID is the custom ID of the "no" button on the close
	// confirmation prompt.
	CancelCloseButtonID = "cancel_close"
)

const (
	// PinEmoji is the emoji on the pin button.
	PinEmoji = "📌"

	// CloseEmoji is the emoji on the close button.
	CloseEmoji = "❎"
)

var (
	// ErrCategoryNotFound is returned when a ticket is requested for a
	// category that does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrDuplicateTicket is returned when the requester already has an
	// open ticket channel in the guild.
	ErrDuplicateTicket = errors.New("ticket already open")

	// ErrPermissionDenied is returned when a lifecycle action is attempted
	// by a user without the staff role.
	ErrPermissionDenied = errors.New("permission denied")
)

// Requester identifies the user an operation acts for.
type Requester struct {
	// ID is the user's ID.
	ID string

	// Username is the user's username.
	Username string

	// AvatarURL is the URL of the user's avatar, if any.
	AvatarURL string
}

// QA is a single free-form question/answer pair appended to the opening
// embed description.
type QA struct {
	Key   string
	Value string
}

// CreateRequest is a request to open a new ticket.
type CreateRequest struct {
	// GuildID is the guild the ticket is opened in.
	GuildID string

	// GuildName is the display name of the guild.
	GuildName string

	// GuildIconURL is the URL of the guild's icon, if any.
	GuildIconURL string

	// CategoryID is the category the ticket channel is created under.
	CategoryID string

	// Button is the button definition the requester selected.
	Button entities.ButtonDef

	// Requester is the user opening the ticket.
	Requester Requester

	// Answers are optional form answers appended to the opening embed
	// description as "key: value" lines, in order.
	Answers []QA
}

// PinRequest is a request to pin an open ticket.
type PinRequest struct {
	// GuildID is the guild the ticket is in.
	GuildID string

	// ChannelID is the ticket channel.
	ChannelID string

	// ChannelName is the current name of the ticket channel.
	ChannelName string

	// ActorID is the user attempting the pin.
	ActorID string

	// ActorRoles are the roles held by the actor.
	ActorRoles []string
}

// CloseRequest is a request to close a ticket after confirmation.
type CloseRequest struct {
	// GuildID is the guild the ticket is in.
	GuildID string

	// GuildName is the display name of the guild.
	GuildName string

	// GuildIconURL is the URL of the guild's icon, if any.
	GuildIconURL string

	// ChannelID is the ticket channel to delete.
	ChannelID string

	// Actor is the user that confirmed the close. The close notification
	// is sent to them.
	Actor Requester
}

// CloseResult reports what the close actually did.
type CloseResult struct {
	// DMConfigured is whether a close notification was configured for
	// the guild. With no DM message set, no delivery is attempted.
	DMConfigured bool

	// DMSent is whether the close notification was delivered. A failed
	// delivery never blocks the close itself.
	DMSent bool
}

// Lifecycle is the ticket state machine. Tickets move
// Idle → Creating → Open, stay Open across pins and cancelled close
// prompts, and end when a confirmed close deletes the channel. Tickets
// have no persisted record; the Open state is the existence of the
// channel itself.
type Lifecycle struct {
	// l is the logger.
	l *slog.Logger

	// store is the configuration store.
	store *settings.Store

	// platform is the channel-provisioning collaborator.
	platform Platform

	// mu guards claims.
	mu sync.Mutex

	// claims holds the (guild, requester) pairs with a creation in
	// flight. A claim is taken before the duplicate check and released
	// when creation completes either way, closing the check-then-create
	// race between near-simultaneous requests.
	claims map[claimKey]struct{}

	// now returns the current time. Overridable in tests.
	now func() time.Time
}

type claimKey struct {
	guildID string
	userID  string
}

// NewLifecycle creates the ticket lifecycle over the given store and
// platform.
func NewLifecycle(l *slog.Logger, store *settings.Store, platform Platform) *Lifecycle {
	return &Lifecycle{
		l:        l.With(slog.String(logging.KeyComponent, "ticket")),
		store:    store,
		platform: platform,
		claims:   make(map[claimKey]struct{}),
		now:      time.Now,
	}
}

// claim takes the in-flight creation claim for the requester. It reports
// false when another creation for the same requester is already running.
func (t *Lifecycle) claim(key claimKey) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.claims[key]; ok {
		return false
	}
	t.claims[key] = struct{}{}
	return true
}

func (t *Lifecycle) release(key claimKey) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.claims, key)
}

// Create opens a new ticket: it verifies the category, rejects duplicate
// tickets for the requester, provisions the private channel and posts the
// opening message into it. On any failure nothing is left behind.
func (t *Lifecycle) Create(ctx context.Context, req CreateRequest) (*entities.Ticket, error) {
	key := claimKey{guildID: req.GuildID, userID: req.Requester.ID}
	if !t.claim(key) {
		return nil, fmt.Errorf("%w: creation in flight", ErrDuplicateTicket)
	}
	defer t.release(key)

	// Ensure the category still exists before provisioning anything.
	if _, err := t.platform.Category(ctx, req.GuildID, req.CategoryID); err != nil {
		return nil, err
	}

	// One open ticket per requester, derived from the channel name.
	channels, err := t.platform.GuildChannels(ctx, req.GuildID)
	if err != nil {
		return nil, err
	}

	wantName := entities.TicketChannelName(req.Requester.Username)
	for _, channel := range channels {
		if entities.UnpinnedName(channel.Name) == wantName {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTicket, channel.Name)
		}
	}

	cfg := t.store.Community(req.GuildID)

	channel, err := t.platform.CreateChannel(ctx, req.GuildID, discordgo.GuildChannelCreateData{
		Name:                 wantName,
		Type:                 discordgo.ChannelTypeGuildText,
		Topic:                fmt.Sprintf("Ticket created by %s", req.Requester.Username),
		PermissionOverwrites: t.overwrites(req, cfg),
		ParentID:             req.CategoryID,
	})
	if err != nil {
		return nil, err
	}

	if _, err := t.platform.SendMessage(ctx, channel.ID, t.openingMessage(req, cfg)); err != nil {
		// A channel without its opening message is not a usable ticket;
		// tear it down rather than leaving it half provisioned.
		if derr := t.platform.DeleteChannel(ctx, channel.ID); derr != nil {
			t.l.Error("Error cleaning up ticket channel",
				slog.String(logging.KeyGuild, req.GuildID),
				slog.String("channel", channel.ID),
				slog.String(logging.KeyError, derr.Error()),
			)
		}
		return nil, fmt.Errorf("error posting opening message: %w", err)
	}

	ticket := &entities.Ticket{
		GuildID:     req.GuildID,
		ChannelID:   channel.ID,
		ChannelName: channel.Name,
		CategoryID:  req.CategoryID,
		UserID:      req.Requester.ID,
		Username:    req.Requester.Username,
		CreatedAt:   custom.Datetime(t.now().UTC()),
	}

	t.l.Info("Ticket created",
		slog.String(logging.KeyGuild, req.GuildID),
		slog.String(logging.KeyUser, req.Requester.ID),
		slog.String("channel", channel.ID),
	)

	return ticket, nil
}

// overwrites builds the ACL for a new ticket channel: @everyone is denied,
// the requester can read and write, the button's ticket role can read, and
// any guild-wide allowed roles can read and write. The staff role is not
// granted here; staff reach the channel through their own permissions and
// are brought in by the opening mention.
func (t *Lifecycle) overwrites(req CreateRequest, cfg entities.CommunityConfig) []*discordgo.PermissionOverwrite {
	overwrites := []*discordgo.PermissionOverwrite{
		{
			ID:   req.GuildID,
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: discordgo.PermissionAll,
		},
		{
			ID:    req.Requester.ID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: discordgo.PermissionAllText,
			Deny:  discordgo.PermissionMentionEveryone,
		},
	}

	if req.Button.TicketRoleID != "" {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID:    req.Button.TicketRoleID,
			Type:  discordgo.PermissionOverwriteTypeRole,
			Allow: discordgo.PermissionViewChannel,
		})
	}

	for _, roleID := range cfg.AllowedRoleIDs {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID:    roleID,
			Type:  discordgo.PermissionOverwriteTypeRole,
			Allow: discordgo.PermissionAllText,
			Deny:  discordgo.PermissionMentionEveryone,
		})
	}

	return overwrites
}

// openingMessage builds the first message of a ticket channel: the
// requester and staff mentions, the configured embed with any form
// answers appended, and the pin/close buttons.
func (t *Lifecycle) openingMessage(req CreateRequest, cfg entities.CommunityConfig) *discordgo.MessageSend {
	content := fmt.Sprintf("<@%s>", req.Requester.ID)
	if cfg.StaffRoleID != "" {
		content += fmt.Sprintf(" <@&%s>", cfg.StaffRoleID)
	}

	description := cfg.OpenEmbed.Description
	if len(req.Answers) > 0 {
		lines := make([]string, 0, len(req.Answers))
		for _, answer := range req.Answers {
			lines = append(lines, fmt.Sprintf("%s: %s", answer.Key, answer.Value))
		}
		description += "\n\n" + strings.Join(lines, "\n")
	}

	embed := &discordgo.MessageEmbed{
		Title:       cfg.OpenEmbed.Title,
		Description: description,
		Color:       cfg.OpenEmbed.Color,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    req.GuildName,
			IconURL: req.GuildIconURL,
		},
	}

	if req.Requester.AvatarURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: req.Requester.AvatarURL}
	}

	if !cfg.OpenEmbed.Image.IsZero() {
		embed.Image = &discordgo.MessageEmbedImage{URL: cfg.OpenEmbed.Image.URL}
	}

	return &discordgo.MessageSend{
		Content:    content,
		Embed:      embed,
		Components: OpeningComponents(),
	}
}

// OpeningComponents returns the pin and close buttons attached to every
// ticket opening message.
func OpeningComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    messages.PinTicketLabel,
					Style:    discordgo.SuccessButton,
					Emoji:    discordgo.ComponentEmoji{Name: PinEmoji},
					CustomID: PinButtonID,
				},
				discordgo.Button{
					Label:    messages.CloseTicketLabel,
					Style:    discordgo.DangerButton,
					Emoji:    discordgo.ComponentEmoji{Name: CloseEmoji},
					CustomID: CloseButtonID,
				},
			},
		},
	}
}

// Pin decorates the ticket channel name with the pin marker. Only members
// holding the configured staff role may pin; with no staff role
// configured, nobody can.
func (t *Lifecycle) Pin(ctx context.Context, req PinRequest) error {
	cfg := t.store.Community(req.GuildID)

	if cfg.StaffRoleID == "" || !hasRole(req.ActorRoles, cfg.StaffRoleID) {
		return fmt.Errorf("%w: pin requires the staff role", ErrPermissionDenied)
	}

	if err := t.platform.RenameChannel(ctx, req.ChannelID, entities.PinnedName(req.ChannelName)); err != nil {
		return err
	}

	t.l.Info("Ticket pinned",
		slog.String(logging.KeyGuild, req.GuildID),
		slog.String(logging.KeyUser, req.ActorID),
		slog.String("channel", req.ChannelID),
	)

	return nil
}

// ClosePrompt builds the yes/no confirmation shown when a close is
// requested. The prompt is purely a UI gate: until the "yes" button is
// pressed the ticket stays open and nothing is allocated, so an abandoned
// prompt needs no cleanup.
func ClosePrompt() (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Title:       messages.ClosePromptTitle,
		Description: messages.ClosePromptDescription,
		Color:       entities.ColorRed,
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    messages.CloseConfirmLabel,
					Style:    discordgo.DangerButton,
					CustomID: ConfirmCloseButtonID,
				},
				discordgo.Button{
					Label:    messages.CloseCancelLabel,
					Style:    discordgo.SecondaryButton,
					CustomID: CancelCloseButtonID,
				},
			},
		},
	}

	return embed, components
}

// ConfirmClose completes a confirmed close: it sends the close
// notification DM when one is configured, then deletes the ticket
// channel. The delete always happens, even when the DM cannot be
// delivered; a user with DMs disabled must not keep a ticket open.
func (t *Lifecycle) ConfirmClose(ctx context.Context, req CloseRequest) (*CloseResult, error) {
	cfg := t.store.Community(req.GuildID)

	res := new(CloseResult)

	if cfg.Close.DMMessage != "" {
		res.DMConfigured = true
		if _, err := t.platform.SendDirectMessage(ctx, req.Actor.ID, t.closeNotification(req, cfg)); err != nil {
			t.l.Warn("Close notification undeliverable",
				slog.String(logging.KeyGuild, req.GuildID),
				slog.String(logging.KeyUser, req.Actor.ID),
				slog.String(logging.KeyError, err.Error()),
			)
		} else {
			res.DMSent = true
		}
	}

	if err := t.platform.DeleteChannel(ctx, req.ChannelID); err != nil {
		return nil, err
	}

	t.l.Info("Ticket closed",
		slog.String(logging.KeyGuild, req.GuildID),
		slog.String(logging.KeyUser, req.Actor.ID),
		slog.String("channel", req.ChannelID),
	)

	return res, nil
}

// closeNotification builds the DM embed sent on a confirmed close.
func (t *Lifecycle) closeNotification(req CloseRequest, cfg entities.CommunityConfig) *discordgo.MessageSend {
	embed := &discordgo.MessageEmbed{
		Title:       messages.TicketClosedTitle,
		Description: cfg.Close.DMMessage,
		Color:       entities.ColorRed,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    req.GuildName,
			IconURL: req.GuildIconURL,
		},
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  messages.CreatorFieldName,
				Value: fmt.Sprintf("<@%s>\nID: %s", req.Actor.ID, req.Actor.ID),
			},
			{
				Name:  messages.ClosedAtFieldName,
				Value: t.now().UTC().Format("2006-01-02 15:04:05"),
			},
		},
	}

	if req.Actor.AvatarURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: req.Actor.AvatarURL}
	}

	if !cfg.Close.Image.IsZero() {
		embed.Image = &discordgo.MessageEmbedImage{URL: cfg.Close.Image.URL}
	}

	msg := &discordgo.MessageSend{Embed: embed}

	if cfg.Close.Link != "" {
		msg.Components = []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label: messages.ReopenTicketLabel,
						Style: discordgo.LinkButton,
						URL:   cfg.Close.Link,
					},
				},
			},
		}
	}

	return msg
}

func hasRole(roles []string, roleID string) bool {
	for _, r := range roles {
		if r == roleID {
			return true
		}
	}
	return false
}
