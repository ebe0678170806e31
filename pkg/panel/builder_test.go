package panel

import (
	"testing"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/NefyAD/madoguchi/pkg/entities"
	"github.com/NefyAD/madoguchi/pkg/logging"
	"github.com/NefyAD/madoguchi/pkg/settings"
	"github.com/stretchr/testify/require"
)

func newTestBuilder(t *testing.T) (*Builder, *settings.Store) {
	t.Helper()

	l, err := logging.CommonLogger(logging.NewConfig(`tests`))
	require.NoError(t, err, "Failed to create logger")

	store := settings.NewStore(l)
	return NewBuilder(l, store), store
}

func TestRenderNoButtons(t *testing.T) {
	b, _ := newTestBuilder(t)

	msg, err := b.Render(&discordgo.Guild{ID: "42", Name: "Test Guild"})
	require.ErrorIs(t, err, ErrNoButtons)
	require.Nil(t, msg)
}

func TestRenderMenuOrder(t *testing.T) {
	b, store := newTestBuilder(t)

	store.AppendButton("42", entities.ButtonDef{CategoryID: "100", Emoji: "🎫", Name: "Billing", Description: "Billing help"}, "role-1")
	store.AppendButton("42", entities.ButtonDef{CategoryID: "200", Emoji: "🛠", Name: "Support", Description: "Technical help"}, "role-1")

	msg, err := b.Render(&discordgo.Guild{ID: "42", Name: "Test Guild"})
	require.NoError(t, err)

	row, ok := msg.Components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	menu, ok := row.Components[0].(discordgo.SelectMenu)
	require.True(t, ok)

	require.Equal(t, SelectMenuID, menu.CustomID)
	require.Len(t, menu.Options, 2)

	// Insertion order is display order, and the menu value pairs the
	// category with the append position.
	require.Equal(t, "Billing", menu.Options[0].Label)
	require.Equal(t, "100_0", menu.Options[0].Value)
	require.Equal(t, "Support", menu.Options[1].Label)
	require.Equal(t, "200_1", menu.Options[1].Value)
}

func TestRenderPanelText(t *testing.T) {
	b, store := newTestBuilder(t)

	store.AppendButton("42", entities.ButtonDef{CategoryID: "100", Name: "Billing"}, "role-1")
	store.SetPanelText("42", "Support Desk", "Pick a category below", "https://example.com")
	store.SetPanelVisuals("42", entities.ImageFromURL("https://cdn.example.com/panel.png"), entities.ColorGreen, entities.ImageRef{})
	store.SetDeveloperInfo("42", entities.DeveloperInfo{Text: "built by us", IconURL: "https://cdn.example.com/icon.png"})

	msg, err := b.Render(&discordgo.Guild{ID: "42", Name: "Test Guild"})
	require.NoError(t, err)

	require.Equal(t, "Support Desk", msg.Embed.Title)
	require.Equal(t, "https://example.com", msg.Embed.URL)
	require.Equal(t, "Pick a category below", msg.Embed.Description)
	require.Equal(t, entities.ColorGreen, msg.Embed.Color)
	require.Equal(t, "Test Guild", msg.Embed.Author.Name)
	require.Equal(t, "built by us", msg.Embed.Footer.Text)
	require.Equal(t, "https://cdn.example.com/panel.png", msg.Embed.Image.URL)
	require.Nil(t, msg.Embed.Thumbnail)
}

func TestRenderDefaults(t *testing.T) {
	b, store := newTestBuilder(t)

	store.AppendButton("42", entities.ButtonDef{CategoryID: "100", Name: "Billing"}, "role-1")

	msg, err := b.Render(&discordgo.Guild{ID: "42", Name: "Test Guild"})
	require.NoError(t, err)

	require.Equal(t, settings.DefaultPanelTitle, msg.Embed.Title)
	require.Equal(t, settings.DefaultPanelDescription, msg.Embed.Description)
	require.Equal(t, entities.ColorBlue, msg.Embed.Color)
	require.Nil(t, msg.Embed.Footer)
}
