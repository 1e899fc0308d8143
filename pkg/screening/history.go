package screening

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Record is a stored screening run, scoped to the user who uploaded the resume.
type Record struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"-"`
	Filename   string    `json:"filename"`
	Role       string    `json:"primary_role"`
	Confidence float64   `json:"primary_confidence"`
	Result     Result    `json:"result"`
	CreatedAt  time.Time `json:"created_at"`
}

// Repository persists screening history.
type Repository interface {
	Create(ctx context.Context, rec Record) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Record, error)
	GetByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (Record, error)
}
