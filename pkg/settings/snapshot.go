package settings

import (
	"github.com/NefyAD/madoguchi/pkg/entities"
)

// Snapshot is the wire representation of the store. Top-level keys are
// configuration field names, second-level keys are guild IDs. Colors
// serialize as integers and images as resolved URL strings, which is why
// old snapshots stay loadable: keys absent from a snapshot are simply
// left at their pre-load values.
type Snapshot struct {
	Buttons          map[string][]entities.ButtonDef        `json:"ticket,omitempty"`
	StaffRole        map[string]string                      `json:"staff_role,omitempty"`
	PanelTitle       map[string]string                      `json:"panel_title,omitempty"`
	PanelDescription map[string]string                      `json:"panel_description,omitempty"`
	PanelURL         map[string]string                      `json:"panel_url,omitempty"`
	PanelColor       map[string]int                         `json:"panel_color,omitempty"`
	PanelImage       map[string]entities.ImageRef           `json:"panel_image,omitempty"`
	TopRightImage    map[string]entities.ImageRef           `json:"top_right_image,omitempty"`
	DevelopedInfo    map[string]entities.DeveloperInfo      `json:"developed_info,omitempty"`
	DMMessage        map[string]string                      `json:"dm_message,omitempty"`
	Link             map[string]string                      `json:"link,omitempty"`
	EmbedTitle       map[string]string                      `json:"embed_title,omitempty"`
	EmbedDescription map[string]string                      `json:"embed_description,omitempty"`
	EmbedColor       map[string]int                         `json:"embed_color,omitempty"`
	OpenImage        map[string]entities.ImageRef           `json:"open_image,omitempty"`
	CloseImage       map[string]entities.ImageRef           `json:"close_image,omitempty"`
	AllowedRoles     map[string][]string                    `json:"allowed_roles,omitempty"`
}

// Export returns a snapshot of every value an operator has set. Defaults
// are not exported; they are re-applied on read after a load.
func (s *Store) Export() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &Snapshot{
		Buttons:          make(map[string][]entities.ButtonDef),
		StaffRole:        make(map[string]string),
		PanelTitle:       make(map[string]string),
		PanelDescription: make(map[string]string),
		PanelURL:         make(map[string]string),
		PanelColor:       make(map[string]int),
		PanelImage:       make(map[string]entities.ImageRef),
		TopRightImage:    make(map[string]entities.ImageRef),
		DevelopedInfo:    make(map[string]entities.DeveloperInfo),
		DMMessage:        make(map[string]string),
		Link:             make(map[string]string),
		EmbedTitle:       make(map[string]string),
		EmbedDescription: make(map[string]string),
		EmbedColor:       make(map[string]int),
		OpenImage:        make(map[string]entities.ImageRef),
		CloseImage:       make(map[string]entities.ImageRef),
		AllowedRoles:     make(map[string][]string),
	}

	for guildID, cfg := range s.configs {
		if len(cfg.Buttons) > 0 {
			snap.Buttons[guildID] = append([]entities.ButtonDef(nil), cfg.Buttons...)
		}
		if cfg.StaffRoleID != "" {
			snap.StaffRole[guildID] = cfg.StaffRoleID
		}
		if cfg.Panel.Title != "" {
			snap.PanelTitle[guildID] = cfg.Panel.Title
		}
		if cfg.Panel.Description != "" {
			snap.PanelDescription[guildID] = cfg.Panel.Description
		}
		if cfg.Panel.URL != "" {
			snap.PanelURL[guildID] = cfg.Panel.URL
		}
		if cfg.Panel.Color != 0 {
			snap.PanelColor[guildID] = cfg.Panel.Color
		}
		if !cfg.Panel.Image.IsZero() {
			snap.PanelImage[guildID] = cfg.Panel.Image
		}
		if !cfg.Panel.TopRightImage.IsZero() {
			snap.TopRightImage[guildID] = cfg.Panel.TopRightImage
		}
		if cfg.Developer != (entities.DeveloperInfo{}) {
			snap.DevelopedInfo[guildID] = cfg.Developer
		}
		if cfg.Close.DMMessage != "" {
			snap.DMMessage[guildID] = cfg.Close.DMMessage
		}
		if cfg.Close.Link != "" {
			snap.Link[guildID] = cfg.Close.Link
		}
		if !cfg.Close.Image.IsZero() {
			snap.CloseImage[guildID] = cfg.Close.Image
		}
		if cfg.OpenEmbed.Title != "" {
			snap.EmbedTitle[guildID] = cfg.OpenEmbed.Title
		}
		if cfg.OpenEmbed.Description != "" {
			snap.EmbedDescription[guildID] = cfg.OpenEmbed.Description
		}
		if cfg.OpenEmbed.Color != 0 {
			snap.EmbedColor[guildID] = cfg.OpenEmbed.Color
		}
		if !cfg.OpenEmbed.Image.IsZero() {
			snap.OpenImage[guildID] = cfg.OpenEmbed.Image
		}
		if len(cfg.AllowedRoleIDs) > 0 {
			snap.AllowedRoles[guildID] = append([]string(nil), cfg.AllowedRoleIDs...)
		}
	}

	return snap
}

// Import merges a snapshot into the store. Every top-level key present in
// the snapshot replaces the per-guild values it lists; fields absent from
// the snapshot are left untouched. This is a merge, not a full replace,
// which keeps snapshots loadable across schema versions.
func (s *Store) Import(snap *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for guildID, buttons := range snap.Buttons {
		s.config(guildID).Buttons = append([]entities.ButtonDef(nil), buttons...)
	}
	for guildID, role := range snap.StaffRole {
		s.config(guildID).StaffRoleID = role
	}
	for guildID, title := range snap.PanelTitle {
		s.config(guildID).Panel.Title = title
	}
	for guildID, description := range snap.PanelDescription {
		s.config(guildID).Panel.Description = description
	}
	for guildID, url := range snap.PanelURL {
		s.config(guildID).Panel.URL = url
	}
	for guildID, color := range snap.PanelColor {
		s.config(guildID).Panel.Color = color
	}
	for guildID, image := range snap.PanelImage {
		s.config(guildID).Panel.Image = image
	}
	for guildID, image := range snap.TopRightImage {
		s.config(guildID).Panel.TopRightImage = image
	}
	for guildID, info := range snap.DevelopedInfo {
		s.config(guildID).Developer = info
	}
	for guildID, msg := range snap.DMMessage {
		s.config(guildID).Close.DMMessage = msg
	}
	for guildID, link := range snap.Link {
		s.config(guildID).Close.Link = link
	}
	for guildID, image := range snap.CloseImage {
		s.config(guildID).Close.Image = image
	}
	for guildID, title := range snap.EmbedTitle {
		s.config(guildID).OpenEmbed.Title = title
	}
	for guildID, description := range snap.EmbedDescription {
		s.config(guildID).OpenEmbed.Description = description
	}
	for guildID, color := range snap.EmbedColor {
		s.config(guildID).OpenEmbed.Color = color
	}
	for guildID, image := range snap.OpenImage {
		s.config(guildID).OpenEmbed.Image = image
	}
	for guildID, roles := range snap.AllowedRoles {
		s.config(guildID).AllowedRoleIDs = append([]string(nil), roles...)
	}
}
