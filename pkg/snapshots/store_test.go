package snapshots

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/NefyAD/madoguchi/pkg/entities"
	"github.com/NefyAD/madoguchi/pkg/logging"
	"github.com/NefyAD/madoguchi/pkg/settings"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	l, err := logging.CommonLogger(logging.NewConfig(`tests`))
	require.NoError(t, err, "Failed to create logger")

	s, err := NewStore(l, t.TempDir())
	require.NoError(t, err, "Failed to create snapshot store")

	return s
}

func TestSaveListLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	s.now = func() time.Time {
		return time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)
	}

	snap := &settings.Snapshot{
		Buttons: map[string][]entities.ButtonDef{
			"42": {{CategoryID: "100", Emoji: "🎫", Name: "Billing", Description: "Billing help"}},
		},
		StaffRole:  map[string]string{"42": "role-1"},
		EmbedColor: map[string]int{"42": entities.ColorGreen},
		OpenImage:  map[string]entities.ImageRef{"42": entities.ImageFromURL("https://cdn.example.com/open.png")},
	}

	h, err := s.Save(snap)
	require.NoError(t, err)
	require.Equal(t, "save_20240301_123045.json", h.Name)

	handles, err := s.List()
	require.NoError(t, err)
	require.Len(t, handles, 1)
	require.Equal(t, h.Name, handles[0].Name)

	loaded, err := s.Load(h.Name)
	require.NoError(t, err)
	require.Equal(t, snap, loaded)
}

func TestSaveNeverOverwrites(t *testing.T) {
	s := newTestStore(t)
	s.now = func() time.Time {
		return time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)
	}

	_, err := s.Save(new(settings.Snapshot))
	require.NoError(t, err)

	// A second save within the same second collides with the existing
	// snapshot and must not touch it.
	_, err = s.Save(new(settings.Snapshot))
	require.ErrorIs(t, err, ErrSnapshotExists)
}

func TestListSortedLexicographically(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{
		"save_20240302_000000.json",
		"save_20240101_000000.json",
		"save_20240201_000000.json",
		"notes.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(s.dir, name), []byte(`{}`), 0o644))
	}

	handles, err := s.List()
	require.NoError(t, err)
	require.Len(t, handles, 3)
	require.Equal(t, "save_20240101_000000.json", handles[0].Name)
	require.Equal(t, "save_20240201_000000.json", handles[1].Name)
	require.Equal(t, "save_20240302_000000.json", handles[2].Name)
}

func TestLoadNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load("save_19990101_000000.json")
	require.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestLoadCorrupt(t *testing.T) {
	s := newTestStore(t)

	name := "save_20240301_123045.json"
	require.NoError(t, os.WriteFile(filepath.Join(s.dir, name), []byte(`{not json`), 0o644))

	_, err := s.Load(name)
	require.ErrorIs(t, err, ErrSnapshotCorrupt)
}
