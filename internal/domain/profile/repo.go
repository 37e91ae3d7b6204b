package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no profile exists for a patient ID.
var ErrNotFound = errors.New("profile not found")

// Repository reads patient risk profiles from the record store. The engine
// never writes; profile maintenance belongs to the surrounding system.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	List(ctx context.Context, limit, offset int) ([]*Profile, int, error)
}
