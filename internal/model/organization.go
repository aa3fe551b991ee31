package model

import (
	"time"

	"github.com/fhuszti/videos-ms-go/internal/db"
)

type Organization struct {
	ID          db.UUID   `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
