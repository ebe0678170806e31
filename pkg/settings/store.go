package settings

import (
	"log/slog"
	"sync"

	"github.com/NefyAD/madoguchi/pkg/entities"
	"github.com/NefyAD/madoguchi/pkg/logging"
)

const (
	// DefaultPanelTitle is the panel title used when none is configured.
	DefaultPanelTitle = `チケットサポート`

	// DefaultPanelDescription is the panel description used when none is
	// configured.
	DefaultPanelDescription = `以下のボタンを押してチケットを開いてください。`

	// DefaultOpenEmbedTitle is the open-ticket embed title used when none
	// is configured.
	DefaultOpenEmbedTitle = `チケット`

	// DefaultOpenEmbedDescription is the open-ticket embed description
	// used when none is configured.
	DefaultOpenEmbedDescription = `サポートが必要ですか？`
)

// Store holds the ticketing configuration for every guild the bot is in.
// Configs are created lazily on first write. The store is an injected
// instance, never package state; handlers run on separate goroutines, so
// all access goes through the mutex.
type Store struct {
	// l is the logger.
	l *slog.Logger

	// mu guards configs.
	mu sync.RWMutex

	// configs is the configuration per guild ID.
	configs map[string]*entities.CommunityConfig
}

// NewStore creates a new, empty configuration store.
func NewStore(l *slog.Logger) *Store {
	return &Store{
		l:       l.With(slog.String(logging.KeyComponent, "settings")),
		configs: make(map[string]*entities.CommunityConfig),
	}
}

// config returns the config for the guild, creating it if needed. The
// caller must hold the write lock.
func (s *Store) config(guildID string) *entities.CommunityConfig {
	cfg, ok := s.configs[guildID]
	if !ok {
		cfg = new(entities.CommunityConfig)
		s.configs[guildID] = cfg
	}
	return cfg
}

// Community returns a copy of the guild's configuration with defaults
// applied to any unset panel and open-embed fields. Defaults are applied
// on read and never written back, so a snapshot only ever contains values
// an operator actually set.
func (s *Store) Community(guildID string) entities.CommunityConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg := entities.CommunityConfig{}
	if stored, ok := s.configs[guildID]; ok {
		cfg = *stored
		cfg.Buttons = append([]entities.ButtonDef(nil), stored.Buttons...)
		cfg.AllowedRoleIDs = append([]string(nil), stored.AllowedRoleIDs...)
	}

	if cfg.Panel.Title == "" {
		cfg.Panel.Title = DefaultPanelTitle
	}
	if cfg.Panel.Description == "" {
		cfg.Panel.Description = DefaultPanelDescription
	}
	if cfg.Panel.Color == 0 {
		cfg.Panel.Color = entities.ColorBlue
	}
	if cfg.OpenEmbed.Title == "" {
		cfg.OpenEmbed.Title = DefaultOpenEmbedTitle
	}
	if cfg.OpenEmbed.Description == "" {
		cfg.OpenEmbed.Description = DefaultOpenEmbedDescription
	}
	if cfg.OpenEmbed.Color == 0 {
		cfg.OpenEmbed.Color = entities.ColorBlue
	}

	return cfg
}

// AppendButton appends a ticket button to the guild's selection menu and
// replaces the guild-wide staff role. The staff role is single-valued per
// guild; re-running the button configuration overwrites it for every
// button, including previously configured ones.
func (s *Store) AppendButton(guildID string, def entities.ButtonDef, staffRoleID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.config(guildID)
	cfg.Buttons = append(cfg.Buttons, def)
	cfg.StaffRoleID = staffRoleID

	s.l.Debug("Button appended",
		slog.String(logging.KeyGuild, guildID),
		slog.String("name", def.Name),
		slog.Int("position", len(cfg.Buttons)-1),
	)
}

// SetPanelText sets the panel title, description and optional title URL.
func (s *Store) SetPanelText(guildID, title, description, url string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.config(guildID)
	cfg.Panel.Title = title
	cfg.Panel.Description = description
	cfg.Panel.URL = url
}

// SetPanelVisuals sets the panel image, embed color and top-right image.
func (s *Store) SetPanelVisuals(guildID string, image entities.ImageRef, color int, topRight entities.ImageRef) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.config(guildID)
	cfg.Panel.Image = image
	cfg.Panel.Color = color
	cfg.Panel.TopRightImage = topRight
}

// SetOpenEmbed sets the title, description and color of the embed posted
// into a new ticket channel.
func (s *Store) SetOpenEmbed(guildID, title, description string, color int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.config(guildID)
	cfg.OpenEmbed.Title = title
	cfg.OpenEmbed.Description = description
	cfg.OpenEmbed.Color = color
}

// SetEmbedImages sets the images shown on the open and close embeds.
func (s *Store) SetEmbedImages(guildID string, open, closeImage entities.ImageRef) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.config(guildID)
	cfg.OpenEmbed.Image = open
	cfg.Close.Image = closeImage
}

// SetCloseMessages sets the DM message and the re-create link sent when a
// ticket is closed. An empty DM message disables the notification.
func (s *Store) SetCloseMessages(guildID, dmMessage, link string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.config(guildID)
	cfg.Close.DMMessage = dmMessage
	cfg.Close.Link = link
}

// SetDeveloperInfo sets the developer credit shown in the panel footer.
func (s *Store) SetDeveloperInfo(guildID string, info entities.DeveloperInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.config(guildID).Developer = info
}

// SetAllowedRoles sets the roles granted access to every ticket channel
// in the guild.
func (s *Store) SetAllowedRoles(guildID string, roleIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.config(guildID).AllowedRoleIDs = append([]string(nil), roleIDs...)
}
