package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobboard/internal/domain/job"
)

const listingCacheTTL = 60 * time.Second

type JobsUsecase interface {
	List(ctx context.Context, f job.Filter) ([]job.Job, error)
	Get(ctx context.Context, id uuid.UUID) (job.Job, error)
	Create(ctx context.Context, in job.PostInput, ownerID *uuid.UUID) (job.Job, error)
	Update(ctx context.Context, id uuid.UUID, in job.PostInput, ownerID *uuid.UUID) (job.Job, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) error
}

// Jobs wraps the posting repository with listing cache maintenance, input
// validation and the jobs-updated notification.
type Jobs struct {
	repo   job.Repository
	cache  ListingCache
	notify func()
	logger *log.Logger
}

func NewJobs(repo job.Repository, cache ListingCache, notify func(), logger *log.Logger) *Jobs {
	return &Jobs{repo: repo, cache: cache, notify: notify, logger: logger}
}

func (u *Jobs) List(ctx context.Context, f job.Filter) ([]job.Job, error) {
	key := ""
	if u.cache != nil {
		key = listingCacheKey(f)
		var cached []job.Job
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	jobs, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, ErrStore
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, jobs, listingCacheTTL)
	}
	return jobs, nil
}

// Get collapses not-found and access failures into ErrNotFound so callers
// cannot distinguish a missing posting from one they may not see.
func (u *Jobs) Get(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := u.repo.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, job.ErrNotFound) && u.logger != nil {
			u.logger.Printf("[Jobs] get failed | id=%s err=%v", id, err)
		}
		return job.Job{}, ErrNotFound
	}
	return j, nil
}

func (u *Jobs) Create(ctx context.Context, in job.PostInput, ownerID *uuid.UUID) (job.Job, error) {
	if ownerID == nil || *ownerID == uuid.Nil {
		return job.Job{}, ErrAuthRequired
	}
	if err := ValidatePost(&in); err != nil {
		return job.Job{}, err
	}

	created, err := u.repo.Create(ctx, in, *ownerID)
	if err != nil {
		return job.Job{}, ErrStore
	}

	u.invalidateListings(ctx)
	u.notifyUpdated()
	return created, nil
}

func (u *Jobs) Update(ctx context.Context, id uuid.UUID, in job.PostInput, ownerID *uuid.UUID) (job.Job, error) {
	if ownerID == nil || *ownerID == uuid.Nil {
		return job.Job{}, ErrAuthRequired
	}
	if err := ValidatePost(&in); err != nil {
		return job.Job{}, err
	}

	updated, err := u.repo.Update(ctx, id, in, *ownerID)
	if err != nil {
		if errors.Is(err, job.ErrForbidden) {
			return job.Job{}, ErrForbidden
		}
		return job.Job{}, ErrStore
	}

	u.invalidateListings(ctx)
	u.notifyUpdated()
	return updated, nil
}

// Delete is permanent; there is no soft-delete state to recover from.
func (u *Jobs) Delete(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) error {
	if ownerID == nil || *ownerID == uuid.Nil {
		return ErrAuthRequired
	}

	if err := u.repo.Delete(ctx, id, *ownerID); err != nil {
		if errors.Is(err, job.ErrForbidden) {
			return ErrForbidden
		}
		return ErrStore
	}

	u.invalidateListings(ctx)
	u.notifyUpdated()
	return nil
}

// ValidatePost normalizes and checks a posting input. Text fields must be
// non-empty after trimming; when both salary bounds are present the minimum
// must not exceed the maximum. The store does not enforce either rule.
func ValidatePost(in *job.PostInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Company = strings.TrimSpace(in.Company)
	in.Location = strings.TrimSpace(in.Location)
	in.Description = strings.TrimSpace(in.Description)
	in.ApplicationURL = strings.TrimSpace(in.ApplicationURL)
	in.ContactEmail = strings.TrimSpace(in.ContactEmail)

	if in.Title == "" || in.Company == "" || in.Location == "" || in.Description == "" {
		return fmt.Errorf("%w: please fill in all required fields", ErrInvalidInput)
	}
	if !in.Type.Valid() {
		return fmt.Errorf("%w: unknown job type", ErrInvalidInput)
	}
	if in.SalaryMin != nil && in.SalaryMax != nil && *in.SalaryMin > *in.SalaryMax {
		return fmt.Errorf("%w: minimum salary cannot be greater than maximum salary", ErrInvalidInput)
	}
	return nil
}

func (u *Jobs) invalidateListings(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, listingCachePrefix+"*"); err != nil && u.logger != nil {
		u.logger.Printf("[Jobs] listing cache invalidation failed | err=%v", err)
	}
}

func (u *Jobs) notifyUpdated() {
	if u.notify != nil {
		u.notify()
	}
}
