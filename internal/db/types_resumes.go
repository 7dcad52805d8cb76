package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/types"
)

// Resume represents a stored resume owned by one user
type Resume struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToAPI converts the record to its API representation.
func (r *Resume) ToAPI() types.Resume {
	return types.Resume{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		OwnerID:   r.OwnerID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
