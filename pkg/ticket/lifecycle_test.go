package ticket

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/NefyAD/madoguchi/pkg/entities"
	"github.com/NefyAD/madoguchi/pkg/logging"
	"github.com/NefyAD/madoguchi/pkg/settings"
	"github.com/stretchr/testify/require"
)

// fakePlatform records every provisioning call the lifecycle makes.
type fakePlatform struct {
	categories map[string]*discordgo.Channel
	channels   []*discordgo.Channel

	createCalls int
	deleteCalls int
	renameCalls int
	dmCalls     int

	lastCreate discordgo.GuildChannelCreateData
	lastRename string
	sent       []*discordgo.MessageSend
	dms        []*discordgo.MessageSend
	sendErr    error
	dmErr      error
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		categories: make(map[string]*discordgo.Channel),
	}
}

func (f *fakePlatform) addCategory(guildID, categoryID string) {
	f.categories[categoryID] = &discordgo.Channel{
		ID:      categoryID,
		GuildID: guildID,
		Type:    discordgo.ChannelTypeGuildCategory,
	}
}

func (f *fakePlatform) Category(_ context.Context, guildID, categoryID string) (*discordgo.Channel, error) {
	category, ok := f.categories[categoryID]
	if !ok || category.GuildID != guildID {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, categoryID)
	}
	return category, nil
}

func (f *fakePlatform) GuildChannels(_ context.Context, guildID string) ([]*discordgo.Channel, error) {
	channels := make([]*discordgo.Channel, 0, len(f.channels))
	for _, channel := range f.channels {
		if channel.GuildID == guildID {
			channels = append(channels, channel)
		}
	}
	return channels, nil
}

func (f *fakePlatform) CreateChannel(_ context.Context, guildID string, data discordgo.GuildChannelCreateData) (*discordgo.Channel, error) {
	f.createCalls++
	f.lastCreate = data

	channel := &discordgo.Channel{
		ID:       fmt.Sprintf("chan-%d", f.createCalls),
		GuildID:  guildID,
		Name:     data.Name,
		ParentID: data.ParentID,
		Type:     data.Type,
	}
	f.channels = append(f.channels, channel)
	return channel, nil
}

func (f *fakePlatform) RenameChannel(_ context.Context, channelID, name string) error {
	f.renameCalls++
	f.lastRename = name
	return nil
}

func (f *fakePlatform) DeleteChannel(_ context.Context, channelID string) error {
	f.deleteCalls++
	return nil
}

func (f *fakePlatform) SendMessage(_ context.Context, channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, msg)
	return &discordgo.Message{ID: "msg-1", ChannelID: channelID}, nil
}

func (f *fakePlatform) SendDirectMessage(_ context.Context, userID string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
	f.dmCalls++
	if f.dmErr != nil {
		return nil, f.dmErr
	}
	f.dms = append(f.dms, msg)
	return &discordgo.Message{ID: "dm-1"}, nil
}

func newTestLifecycle(t *testing.T) (*Lifecycle, *settings.Store, *fakePlatform) {
	t.Helper()

	l, err := logging.CommonLogger(logging.NewConfig(`tests`))
	require.NoError(t, err, "Failed to create logger")

	store := settings.NewStore(l)
	platform := newFakePlatform()

	lc := NewLifecycle(l, store, platform)
	lc.now = func() time.Time {
		return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	}

	return lc, store, platform
}

func billingRequest() CreateRequest {
	return CreateRequest{
		GuildID:    "42",
		GuildName:  "Test Guild",
		CategoryID: "100",
		Button:     entities.ButtonDef{CategoryID: "100", Emoji: "🎫", Name: "Billing"},
		Requester:  Requester{ID: "u1-id", Username: "U1"},
	}
}

func TestCreateTicket(t *testing.T) {
	lc, store, platform := newTestLifecycle(t)
	platform.addCategory("42", "100")
	store.AppendButton("42", entities.ButtonDef{CategoryID: "100", Emoji: "🎫", Name: "Billing"}, "staff-role")

	ticket, err := lc.Create(context.Background(), billingRequest())
	require.NoError(t, err)
	require.Equal(t, "ticket-u1", ticket.ChannelName)
	require.Equal(t, "100", ticket.CategoryID)

	require.Equal(t, 1, platform.createCalls)
	require.Equal(t, "100", platform.lastCreate.ParentID)

	// @everyone denied, requester allowed.
	overwrites := platform.lastCreate.PermissionOverwrites
	require.Equal(t, "42", overwrites[0].ID)
	require.Equal(t, int64(discordgo.PermissionAll), overwrites[0].Deny)
	require.Equal(t, "u1-id", overwrites[1].ID)
	require.Equal(t, int64(discordgo.PermissionAllText), overwrites[1].Allow)

	// Opening message mentions the requester and the staff role, and the
	// embed carries the defaults when nothing is configured.
	require.Len(t, platform.sent, 1)
	opening := platform.sent[0]
	require.Contains(t, opening.Content, "<@u1-id>")
	require.Contains(t, opening.Content, "<@&staff-role>")
	require.Equal(t, settings.DefaultOpenEmbedTitle, opening.Embed.Title)
	require.Equal(t, settings.DefaultOpenEmbedDescription, opening.Embed.Description)
}

func TestCreateTicketDuplicate(t *testing.T) {
	lc, _, platform := newTestLifecycle(t)
	platform.addCategory("42", "100")

	_, err := lc.Create(context.Background(), billingRequest())
	require.NoError(t, err)

	before := len(platform.channels)
	_, err = lc.Create(context.Background(), billingRequest())
	require.ErrorIs(t, err, ErrDuplicateTicket)
	require.Len(t, platform.channels, before)
	require.Equal(t, 1, platform.createCalls)
}

func TestCreateTicketDuplicatePinned(t *testing.T) {
	lc, _, platform := newTestLifecycle(t)
	platform.addCategory("42", "100")

	// A pinned ticket channel still counts as the requester's open ticket.
	platform.channels = append(platform.channels, &discordgo.Channel{
		ID:      "chan-0",
		GuildID: "42",
		Name:    entities.PinnedName("ticket-u1"),
	})

	_, err := lc.Create(context.Background(), billingRequest())
	require.ErrorIs(t, err, ErrDuplicateTicket)
	require.Zero(t, platform.createCalls)
}

func TestCreateTicketDuplicateRepinned(t *testing.T) {
	lc, store, platform := newTestLifecycle(t)
	platform.addCategory("42", "100")
	store.AppendButton("42", entities.ButtonDef{CategoryID: "100", Name: "Billing"}, "staff-role")

	_, err := lc.Create(context.Background(), billingRequest())
	require.NoError(t, err)

	// Pin the ticket twice in a row. The channel name must stay at a
	// single marker, and the requester must still be unable to open a
	// second ticket.
	for n := 0; n < 2; n++ {
		channelName := platform.channels[0].Name
		require.NoError(t, lc.Pin(context.Background(), PinRequest{
			GuildID:     "42",
			ChannelID:   platform.channels[0].ID,
			ChannelName: channelName,
			ActorID:     "u2-id",
			ActorRoles:  []string{"staff-role"},
		}))
		platform.channels[0].Name = platform.lastRename
	}
	require.Equal(t, "📌ticket-u1", platform.channels[0].Name)

	_, err = lc.Create(context.Background(), billingRequest())
	require.ErrorIs(t, err, ErrDuplicateTicket)
	require.Equal(t, 1, platform.createCalls)
}

func TestCreateTicketDuplicateStackedMarkers(t *testing.T) {
	lc, _, platform := newTestLifecycle(t)
	platform.addCategory("42", "100")

	// A channel renamed outside the bot may carry stacked markers; the
	// duplicate check still has to see through all of them.
	platform.channels = append(platform.channels, &discordgo.Channel{
		ID:      "chan-0",
		GuildID: "42",
		Name:    "📌📌ticket-u1",
	})

	_, err := lc.Create(context.Background(), billingRequest())
	require.ErrorIs(t, err, ErrDuplicateTicket)
	require.Zero(t, platform.createCalls)
}

func TestCreateTicketOpeningMessageFailureCleansUp(t *testing.T) {
	lc, _, platform := newTestLifecycle(t)
	platform.addCategory("42", "100")
	platform.sendErr = errors.New("missing access")

	_, err := lc.Create(context.Background(), billingRequest())
	require.Error(t, err)

	// The provisioned channel is torn down rather than left behind
	// without its opening message.
	require.Equal(t, 1, platform.createCalls)
	require.Equal(t, 1, platform.deleteCalls)
}

func TestCreateTicketCategoryNotFound(t *testing.T) {
	lc, _, platform := newTestLifecycle(t)

	_, err := lc.Create(context.Background(), billingRequest())
	require.ErrorIs(t, err, ErrCategoryNotFound)

	// No provisioning of any kind happened.
	require.Zero(t, platform.createCalls)
	require.Empty(t, platform.sent)
}

func TestCreateTicketClaimInFlight(t *testing.T) {
	lc, _, platform := newTestLifecycle(t)
	platform.addCategory("42", "100")

	// A concurrent creation for the same requester holds the claim.
	require.True(t, lc.claim(claimKey{guildID: "42", userID: "u1-id"}))

	_, err := lc.Create(context.Background(), billingRequest())
	require.ErrorIs(t, err, ErrDuplicateTicket)
	require.Zero(t, platform.createCalls)

	// Releasing the claim lets the requester create again.
	lc.release(claimKey{guildID: "42", userID: "u1-id"})
	_, err = lc.Create(context.Background(), billingRequest())
	require.NoError(t, err)
}

func TestCreateTicketRoleAndAllowedRoles(t *testing.T) {
	lc, store, platform := newTestLifecycle(t)
	platform.addCategory("42", "100")
	store.SetAllowedRoles("42", []string{"helper-role"})

	req := billingRequest()
	req.Button.TicketRoleID = "viewer-role"

	_, err := lc.Create(context.Background(), req)
	require.NoError(t, err)

	overwrites := platform.lastCreate.PermissionOverwrites
	require.Len(t, overwrites, 4)
	require.Equal(t, "viewer-role", overwrites[2].ID)
	require.Equal(t, int64(discordgo.PermissionViewChannel), overwrites[2].Allow)
	require.Equal(t, "helper-role", overwrites[3].ID)
	require.Equal(t, int64(discordgo.PermissionAllText), overwrites[3].Allow)
}

func TestCreateTicketAnswersAppended(t *testing.T) {
	lc, _, platform := newTestLifecycle(t)
	platform.addCategory("42", "100")

	req := billingRequest()
	req.Answers = []QA{
		{Key: "注文番号", Value: "12345"},
		{Key: "内容", Value: "返金について"},
	}

	_, err := lc.Create(context.Background(), req)
	require.NoError(t, err)

	description := platform.sent[0].Embed.Description
	require.Contains(t, description, "注文番号: 12345\n内容: 返金について")
}

func TestPin(t *testing.T) {
	tests := []struct {
		name        string
		staffRole   string
		actorRoles  []string
		wantErr     error
		wantRenames int
	}{
		{
			name:        "StaffMember",
			staffRole:   "staff-role",
			actorRoles:  []string{"other-role", "staff-role"},
			wantRenames: 1,
		},
		{
			name:       "NonStaffMember",
			staffRole:  "staff-role",
			actorRoles: []string{"other-role"},
			wantErr:    ErrPermissionDenied,
		},
		{
			name:       "NoStaffRoleConfigured",
			actorRoles: []string{"other-role"},
			wantErr:    ErrPermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc, store, platform := newTestLifecycle(t)
			if tt.staffRole != "" {
				store.AppendButton("42", entities.ButtonDef{CategoryID: "100", Name: "Billing"}, tt.staffRole)
			}

			err := lc.Pin(context.Background(), PinRequest{
				GuildID:     "42",
				ChannelID:   "chan-1",
				ChannelName: "ticket-u1",
				ActorID:     "u2-id",
				ActorRoles:  tt.actorRoles,
			})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.Equal(t, "📌ticket-u1", platform.lastRename)
			}
			require.Equal(t, tt.wantRenames, platform.renameCalls)
		})
	}
}

func TestConfirmClose(t *testing.T) {
	tests := []struct {
		name             string
		dmMessage        string
		dmErr            error
		wantDMCalls      int
		wantDMConfigured bool
		wantDMSent       bool
	}{
		{
			name:             "DMConfigured",
			dmMessage:        "Thanks for reaching out",
			wantDMCalls:      1,
			wantDMConfigured: true,
			wantDMSent:       true,
		},
		{
			name:             "DMUndeliverable",
			dmMessage:        "Thanks for reaching out",
			dmErr:            errors.New("cannot send messages to this user"),
			wantDMCalls:      1,
			wantDMConfigured: true,
		},
		{
			name: "NoDMConfigured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc, store, platform := newTestLifecycle(t)
			platform.dmErr = tt.dmErr
			if tt.dmMessage != "" {
				store.SetCloseMessages("42", tt.dmMessage, "")
			}

			res, err := lc.ConfirmClose(context.Background(), CloseRequest{
				GuildID:   "42",
				GuildName: "Test Guild",
				ChannelID: "chan-1",
				Actor:     Requester{ID: "u1-id", Username: "U1"},
			})
			require.NoError(t, err)

			// The channel is deleted exactly once regardless of the DM
			// outcome.
			require.Equal(t, 1, platform.deleteCalls)
			require.Equal(t, tt.wantDMCalls, platform.dmCalls)
			require.Equal(t, tt.wantDMConfigured, res.DMConfigured)
			require.Equal(t, tt.wantDMSent, res.DMSent)
		})
	}
}

func TestConfirmCloseNotificationContent(t *testing.T) {
	lc, store, platform := newTestLifecycle(t)
	store.SetCloseMessages("42", "Thanks for reaching out", "https://discord.com/channels/42/panel")
	store.SetEmbedImages("42", entities.ImageRef{}, entities.ImageFromURL("https://cdn.example.com/close.png"))

	_, err := lc.ConfirmClose(context.Background(), CloseRequest{
		GuildID:   "42",
		GuildName: "Test Guild",
		ChannelID: "chan-1",
		Actor:     Requester{ID: "u1-id", Username: "U1"},
	})
	require.NoError(t, err)

	require.Len(t, platform.dms, 1)
	dm := platform.dms[0]
	require.Equal(t, "Thanks for reaching out", dm.Embed.Description)
	require.Contains(t, dm.Embed.Fields[0].Value, "<@u1-id>")
	require.Equal(t, "2024-03-01 12:00:00", dm.Embed.Fields[1].Value)
	require.Equal(t, "https://cdn.example.com/close.png", dm.Embed.Image.URL)

	// The re-create link is attached as a URL button.
	row, ok := dm.Components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	button, ok := row.Components[0].(discordgo.Button)
	require.True(t, ok)
	require.Equal(t, discordgo.LinkButton, button.Style)
	require.Equal(t, "https://discord.com/channels/42/panel", button.URL)
}

func TestCancelledCloseDeletesNothing(t *testing.T) {
	_, _, platform := newTestLifecycle(t)

	// Requesting a close is purely a UI gate: the prompt is built without
	// touching the platform.
	embed, components := ClosePrompt()
	require.NotNil(t, embed)
	require.NotEmpty(t, components)
	require.Zero(t, platform.deleteCalls)
	require.Zero(t, platform.dmCalls)
}
