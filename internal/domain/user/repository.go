package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Confirm clears the confirmation token and stamps confirmed_at for the
	// account holding the token. ErrNotFound when no account holds it.
	Confirm(ctx context.Context, token uuid.UUID) (User, error)
}
