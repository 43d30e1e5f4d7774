package domain

import (
	"time"

	"github.com/google/uuid"
)

// Page types.
const (
	PageTypePage     = "page"
	PageTypeDatabase = "database"
)

type Page struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Type    string    `json:"type"`
	Icon    string    `json:"icon"`

	WorkspaceID uuid.UUID  `json:"workspace_id"`
	ParentID    *uuid.UUID `json:"parent_id"`
	CreatedBy   uuid.UUID  `json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Data is an open attribute map. Database pages keep their column
	// schema under data["fields"].
	Data       map[string]any `json:"data"`
	IsFavorite bool           `json:"is_favorite"`
}
