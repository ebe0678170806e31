package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// ButtonDef is a single entry in the ticket panel selection menu.
type ButtonDef struct {
	// CategoryID is the ID of the category that tickets for this button
	// are created under.
	CategoryID string `json:"category"`

	// Emoji is the emoji shown next to the entry.
	Emoji string `json:"emoji"`

	// Name is the display name of the entry.
	Name string `json:"name"`

	// Description is the description of the entry.
	Description string `json:"description"`

	// TicketRoleID is the optional role granted read access to tickets
	// created through this button.
	TicketRoleID string `json:"ticket_role,omitempty"`
}

// MenuValue returns the selection menu value for the button at the given
// position. The position is the append order of the button, not a stable
// identity across edits.
func (b ButtonDef) MenuValue(position int) string {
	return fmt.Sprintf("%s_%d", b.CategoryID, position)
}

// ParseMenuValue splits a selection menu value back into the category ID
// and the button position.
func ParseMenuValue(value string) (categoryID string, position int, err error) {
	idx := strings.LastIndex(value, "_")
	if idx < 0 {
		return "", 0, fmt.Errorf("invalid menu value %q", value)
	}

	position, err = strconv.Atoi(value[idx+1:])
	if err != nil {
		return "", 0, fmt.Errorf("invalid menu value %q: %w", value, err)
	}

	return value[:idx], position, nil
}
