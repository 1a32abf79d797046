package job

import (
	"time"

	"github.com/google/uuid"
)

// Job is a single posting. OwnerID is the authenticated identity that
// created it and the only party allowed to mutate or delete it; that rule is
// enforced by the repository, not by handler code.
type Job struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Title          string
	Company        string
	Location       string
	Type           Type
	Description    string
	Requirements   []string
	SalaryMin      *int64
	SalaryMax      *int64
	ApplicationURL string
	ContactEmail   string
	PostedAt       time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PostInput carries the fields an owner supplies when creating or updating a
// posting. Timestamps are never part of the input; the store computes them.
type PostInput struct {
	Title          string
	Company        string
	Location       string
	Type           Type
	Description    string
	Requirements   []string
	SalaryMin      *int64
	SalaryMax      *int64
	ApplicationURL string
	ContactEmail   string
}
