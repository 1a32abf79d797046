package usecase

import (
	"context"
	"sync"

	"jobboard/internal/domain/job"
)

// JobLister is the query surface a browse session needs.
type JobLister interface {
	List(ctx context.Context, f job.Filter) ([]job.Job, error)
}

// Browse holds one visitor's filter criteria and the listing derived from
// them. Every filter change issues a fresh query tagged with a monotonic
// sequence number; a response is applied only while its tag is still the
// latest issued, so out-of-order completions can never leave the view
// showing results for a superseded filter.
type Browse struct {
	lister JobLister

	mu     sync.Mutex
	filter job.Filter
	seq    uint64
	jobs   []job.Job
}

func NewBrowse(lister JobLister) *Browse {
	return &Browse{lister: lister}
}

func (b *Browse) Filter() job.Filter {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.filter
}

// Jobs returns the currently displayed listing.
func (b *Browse) Jobs() []job.Job {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]job.Job, len(b.jobs))
	copy(out, b.jobs)
	return out
}

func (b *Browse) SetSearch(ctx context.Context, text string) error {
	return b.change(ctx, func(f *job.Filter) { f.Search = text })
}

func (b *Browse) SetLocation(ctx context.Context, text string) error {
	return b.change(ctx, func(f *job.Filter) { f.Location = text })
}

// ToggleType selects the category, or clears it when it is already selected.
func (b *Browse) ToggleType(ctx context.Context, t job.Type) error {
	return b.change(ctx, func(f *job.Filter) { *f = f.WithTypeToggled(t) })
}

func (b *Browse) SetSalaryMin(ctx context.Context, min *int64) error {
	return b.change(ctx, func(f *job.Filter) { f.SalaryMin = min })
}

func (b *Browse) ClearFilters(ctx context.Context) error {
	return b.change(ctx, func(f *job.Filter) { *f = job.Filter{} })
}

// Refresh re-runs the current filter without changing it.
func (b *Browse) Refresh(ctx context.Context) error {
	return b.change(ctx, func(*job.Filter) {})
}

func (b *Browse) change(ctx context.Context, mut func(*job.Filter)) error {
	b.mu.Lock()
	mut(&b.filter)
	f := b.filter
	b.seq++
	seq := b.seq
	b.mu.Unlock()

	jobs, err := b.lister.List(ctx, f)
	if err != nil {
		return err
	}

	b.mu.Lock()
	if seq == b.seq {
		b.jobs = jobs
	}
	b.mu.Unlock()
	return nil
}
