package domain

import (
	"time"

	"github.com/google/uuid"
)

// Record is one row attached to a database-type page. Data is not validated
// against the page's declared fields.
type Record struct {
	ID         uuid.UUID      `json:"id"`
	DatabaseID uuid.UUID      `json:"database_id"`
	Data       map[string]any `json:"data"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
