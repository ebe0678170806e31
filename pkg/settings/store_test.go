package settings

import (
	"encoding/json"
	"testing"

	"github.com/NefyAD/madoguchi/pkg/entities"
	"github.com/NefyAD/madoguchi/pkg/logging"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	l, err := logging.CommonLogger(logging.NewConfig(`tests`))
	require.NoError(t, err, "Failed to create logger")

	return NewStore(l)
}

func TestCommunityDefaults(t *testing.T) {
	s := newTestStore(t)

	cfg := s.Community("42")
	require.Empty(t, cfg.Buttons)
	require.Equal(t, DefaultPanelTitle, cfg.Panel.Title)
	require.Equal(t, DefaultPanelDescription, cfg.Panel.Description)
	require.Equal(t, entities.ColorBlue, cfg.Panel.Color)
	require.Equal(t, DefaultOpenEmbedTitle, cfg.OpenEmbed.Title)
	require.Equal(t, DefaultOpenEmbedDescription, cfg.OpenEmbed.Description)
	require.Equal(t, entities.ColorBlue, cfg.OpenEmbed.Color)
}

func TestAppendButtonOrderAndStaffRoleOverwrite(t *testing.T) {
	s := newTestStore(t)

	s.AppendButton("42", entities.ButtonDef{CategoryID: "100", Emoji: "🎫", Name: "Billing"}, "role-1")
	s.AppendButton("42", entities.ButtonDef{CategoryID: "200", Emoji: "🛠", Name: "Support"}, "role-2")

	cfg := s.Community("42")
	require.Len(t, cfg.Buttons, 2)
	require.Equal(t, "Billing", cfg.Buttons[0].Name)
	require.Equal(t, "Support", cfg.Buttons[1].Name)

	// The staff role is guild-wide; the second configuration replaces it
	// for every button.
	require.Equal(t, "role-2", cfg.StaffRoleID)
}

func TestCommunityReturnsCopy(t *testing.T) {
	s := newTestStore(t)
	s.AppendButton("42", entities.ButtonDef{CategoryID: "100", Name: "Billing"}, "role-1")

	cfg := s.Community("42")
	cfg.Buttons[0].Name = "mutated"
	cfg.Panel.Title = "mutated"

	require.Equal(t, "Billing", s.Community("42").Buttons[0].Name)
	require.Equal(t, DefaultPanelTitle, s.Community("42").Panel.Title)
}

func TestColorFromNameFallback(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{
			name:  "Red",
			input: "赤",
			want:  entities.ColorRed,
		},
		{
			name:  "Blue",
			input: "青",
			want:  entities.ColorBlue,
		},
		{
			name:  "Gold",
			input: "黄色",
			want:  entities.ColorGold,
		},
		{
			name:  "Green",
			input: "緑",
			want:  entities.ColorGreen,
		},
		{
			name:  "UnknownFallsBackToBlue",
			input: "purple",
			want:  entities.ColorBlue,
		},
		{
			name:  "EmptyFallsBackToBlue",
			input: "",
			want:  entities.ColorBlue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, entities.ColorFromName(tt.input))
		})
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s := newTestStore(t)
	s.AppendButton("42", entities.ButtonDef{CategoryID: "100", Emoji: "🎫", Name: "Billing", Description: "Billing help", TicketRoleID: "role-9"}, "role-1")
	s.SetPanelText("42", "Support", "Pick a category", "https://example.com")
	s.SetPanelVisuals("42", entities.ImageFromURL("https://cdn.example.com/panel.png"), entities.ColorGreen, entities.ImageFromURL("https://cdn.example.com/corner.png"))
	s.SetOpenEmbed("42", "Hello", "How can we help?", entities.ColorGold)
	s.SetEmbedImages("42", entities.ImageFromURL("https://cdn.example.com/open.png"), entities.ImageFromURL("https://cdn.example.com/close.png"))
	s.SetCloseMessages("42", "Thanks for reaching out", "https://discord.com/channels/42/1")
	s.SetDeveloperInfo("42", entities.DeveloperInfo{Text: "built by us", IconURL: "https://cdn.example.com/icon.png"})
	s.SetAllowedRoles("42", []string{"role-5", "role-6"})

	// Round-trip through JSON, as the persistence layer does.
	raw, err := json.Marshal(s.Export())
	require.NoError(t, err)

	snap := new(Snapshot)
	require.NoError(t, json.Unmarshal(raw, snap))

	fresh := newTestStore(t)
	fresh.Import(snap)

	require.Equal(t, s.Community("42"), fresh.Community("42"))
}

func TestImportMergesOnlyPresentKeys(t *testing.T) {
	s := newTestStore(t)
	s.SetCloseMessages("42", "original dm", "https://example.com")
	s.SetPanelText("42", "Original title", "Original description", "")

	// A snapshot carrying only panel text leaves the close settings alone.
	s.Import(&Snapshot{
		PanelTitle: map[string]string{"42": "Loaded title"},
	})

	cfg := s.Community("42")
	require.Equal(t, "Loaded title", cfg.Panel.Title)
	require.Equal(t, "Original description", cfg.Panel.Description)
	require.Equal(t, "original dm", cfg.Close.DMMessage)
}

func TestSnapshotWireFormat(t *testing.T) {
	s := newTestStore(t)
	s.SetOpenEmbed("42", "Hello", "", entities.ColorRed)
	s.SetEmbedImages("42", entities.ImageFromURL("https://cdn.example.com/open.png"), entities.ImageRef{})

	raw, err := json.Marshal(s.Export())
	require.NoError(t, err)

	// Top-level keys are field names, second-level keys are guild IDs,
	// colors are integers and images are URL strings.
	var decoded map[string]map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, float64(entities.ColorRed), decoded["embed_color"]["42"])
	require.Equal(t, "https://cdn.example.com/open.png", decoded["open_image"]["42"])
}
