package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/NefyAD/madoguchi/pkg/custom"
	"github.com/NefyAD/madoguchi/pkg/logging"
	"github.com/NefyAD/madoguchi/pkg/settings"
	"github.com/NefyAD/madoguchi/pkg/snapshots/monitoring"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// storeName is the component name used in logs and metrics.
	storeName = "snapshots"

	// filePrefix is the prefix of every snapshot file name.
	filePrefix = "save_"

	// fileSuffix is the suffix of every snapshot file name.
	fileSuffix = ".json"

	// timestampLayout is the layout of the timestamp embedded in snapshot
	// file names. Lexicographic order of the names is also chronological.
	timestampLayout = "20060102_150405"
)

var (
	// ErrSnapshotNotFound is returned when a snapshot handle no longer
	// resolves to a file.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrSnapshotCorrupt is returned when a snapshot file cannot be
	// decoded.
	ErrSnapshotCorrupt = errors.New("snapshot corrupt")

	// ErrSnapshotExists is returned when a save collides with an existing
	// snapshot. Snapshots are immutable; an existing file is never
	// overwritten.
	ErrSnapshotExists = errors.New("snapshot already exists")
)

// Handle identifies a single saved snapshot.
type Handle struct {
	// Name is the snapshot file name.
	Name string `json:"name"`

	// SavedAt is the save time parsed from the file name.
	SavedAt custom.Datetime `json:"saved_at"`
}

// Store persists configuration snapshots as timestamp-named JSON files in
// a single directory.
type Store struct {
	// l is the logger.
	l *slog.Logger

	// dir is the directory holding the snapshot files.
	dir string

	// now returns the current time. Overridable in tests.
	now func() time.Time
}

// NewStore creates a snapshot store over the given directory, creating
// the directory if it does not exist.
func NewStore(l *slog.Logger, dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating snapshot directory: %w", err)
	}

	return &Store{
		l:   l.With(slog.String(logging.KeyComponent, storeName)),
		dir: dir,
		now: time.Now,
	}, nil
}

// Save writes a new timestamp-named snapshot. Existing snapshots are
// never overwritten; a save colliding with one fails with
// ErrSnapshotExists.
func (s *Store) Save(snap *settings.Snapshot) (*Handle, error) {
	monitoring.SnapshotTotalRequests.WithLabelValues("save").Inc()
	t := prometheus.NewTimer(monitoring.SnapshotLatency.WithLabelValues("save"))
	defer t.ObserveDuration()

	savedAt := s.now().UTC()
	name := filePrefix + savedAt.Format(timestampLayout) + fileSuffix

	data, err := json.MarshalIndent(snap, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("error encoding snapshot: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotExists, name)
		}
		return nil, fmt.Errorf("error creating snapshot file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("error writing snapshot file: %w", err)
	}

	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("error closing snapshot file: %w", err)
	}

	s.l.Info("Snapshot saved", slog.String("name", name))

	return &Handle{
		Name:    name,
		SavedAt: custom.Datetime(savedAt),
	}, nil
}

// List returns the available snapshots sorted lexicographically by name,
// which is also chronological given the naming scheme.
func (s *Store) List() ([]*Handle, error) {
	monitoring.SnapshotTotalRequests.WithLabelValues("list").Inc()
	t := prometheus.NewTimer(monitoring.SnapshotLatency.WithLabelValues("list"))
	defer t.ObserveDuration()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("error listing snapshot directory: %w", err)
	}

	handles := make([]*Handle, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}

		h := &Handle{Name: name}
		raw := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
		if savedAt, err := time.Parse(timestampLayout, raw); err == nil {
			h.SavedAt = custom.Datetime(savedAt)
		}
		handles = append(handles, h)
	}

	sort.Slice(handles, func(i, j int) bool {
		return handles[i].Name < handles[j].Name
	})

	return handles, nil
}

// Load reads a snapshot by name. It fails with ErrSnapshotNotFound when
// the handle no longer resolves to a file, and with ErrSnapshotCorrupt
// when the file cannot be decoded.
func (s *Store) Load(name string) (*settings.Snapshot, error) {
	monitoring.SnapshotTotalRequests.WithLabelValues("load").Inc()
	t := prometheus.NewTimer(monitoring.SnapshotLatency.WithLabelValues("load"))
	defer t.ObserveDuration()

	// Handles are file names; keep loads inside the snapshot directory.
	name = filepath.Base(name)

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, name)
		}
		return nil, fmt.Errorf("error reading snapshot file: %w", err)
	}

	snap := new(settings.Snapshot)
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrSnapshotCorrupt, name, err)
	}

	s.l.Info("Snapshot loaded", slog.String("name", name))

	return snap, nil
}
