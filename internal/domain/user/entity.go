package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                uuid.UUID
	Email             string
	Name              string
	PasswordHash      string
	ConfirmationToken *uuid.UUID
	ConfirmedAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (u User) Confirmed() bool {
	return u.ConfirmedAt != nil
}
