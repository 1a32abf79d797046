package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrNotFound covers both a missing id and a row the caller may not
	// read. Collapsing the two keeps the existence of another owner's
	// record from leaking.
	ErrNotFound = errors.New("job not found")

	// ErrForbidden is returned when a mutation names a row the caller does
	// not own. The message is deliberately generic.
	ErrForbidden = errors.New("job not owned by caller")
)

type Repository interface {
	// List returns postings matching the filter, newest posted first.
	List(ctx context.Context, f Filter) ([]Job, error)
	Get(ctx context.Context, id uuid.UUID) (Job, error)
	Create(ctx context.Context, in PostInput, ownerID uuid.UUID) (Job, error)
	Update(ctx context.Context, id uuid.UUID, in PostInput, ownerID uuid.UUID) (Job, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
}
