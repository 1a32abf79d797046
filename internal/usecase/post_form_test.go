package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"jobboard/internal/domain/job"
)

type mockCreator struct {
	calls int
	in    job.PostInput
	out   job.Job
	err   error
}

func (m *mockCreator) Create(_ context.Context, in job.PostInput, _ *uuid.UUID) (job.Job, error) {
	m.calls++
	m.in = in
	return m.out, m.err
}

func filledInput() PostFormInput {
	return PostFormInput{
		Title:            "Backend Engineer",
		Company:          "Acme",
		Location:         "Berlin",
		Type:             job.TypeFullTime,
		Description:      "Build APIs",
		RequirementsText: "Go\n\n  PostgreSQL  \nDocker",
	}
}

func TestPostForm_DefaultsToFullTime(t *testing.T) {
	f := NewPostForm(&mockCreator{})
	if f.State() != FormEditing {
		t.Fatalf("expected editing state")
	}
	if f.Input().Type != job.TypeFullTime {
		t.Fatalf("expected full-time default, got %q", f.Input().Type)
	}
}

func TestPostForm_GuardBlocksBlankFields(t *testing.T) {
	creator := &mockCreator{}
	f := NewPostForm(creator)

	in := filledInput()
	in.Title = "   "
	f.SetInput(in)

	owner := uuid.New()
	f.Submit(context.Background(), &owner)

	if creator.calls != 0 {
		t.Fatalf("expected no create call on local validation failure")
	}
	if f.State() != FormEditing {
		t.Fatalf("expected form back in editing")
	}
	if f.Err() == "" {
		t.Fatalf("expected user-visible message")
	}
	if f.Input().Title != "   " {
		t.Fatalf("expected input preserved verbatim")
	}
}

func TestPostForm_GuardBlocksInvertedSalary(t *testing.T) {
	creator := &mockCreator{}
	f := NewPostForm(creator)

	in := filledInput()
	min, max := int64(80000), int64(60000)
	in.SalaryMin, in.SalaryMax = &min, &max
	f.SetInput(in)

	owner := uuid.New()
	f.Submit(context.Background(), &owner)

	if creator.calls != 0 {
		t.Fatalf("expected no create call when salary bounds are inverted")
	}
	if f.Err() != "Minimum salary cannot be greater than maximum salary" {
		t.Fatalf("unexpected message %q", f.Err())
	}
}

func TestPostForm_SubmitSuccess(t *testing.T) {
	created := job.Job{ID: uuid.New(), Title: "Backend Engineer"}
	creator := &mockCreator{out: created}
	f := NewPostForm(creator)
	f.SetInput(filledInput())

	owner := uuid.New()
	f.Submit(context.Background(), &owner)

	if f.State() != FormSuccess {
		t.Fatalf("expected success state, got %v", f.State())
	}
	if f.Created().ID != created.ID {
		t.Fatalf("expected created posting recorded")
	}
	want := []string{"Go", "PostgreSQL", "Docker"}
	if !reflect.DeepEqual(creator.in.Requirements, want) {
		t.Fatalf("expected requirements %v, got %v", want, creator.in.Requirements)
	}
}

func TestPostForm_SubmitFailureKeepsInput(t *testing.T) {
	creator := &mockCreator{err: ErrAuthRequired}
	f := NewPostForm(creator)
	in := filledInput()
	f.SetInput(in)

	f.Submit(context.Background(), nil)

	if f.State() != FormEditing {
		t.Fatalf("expected form back in editing after remote failure")
	}
	if f.Err() != "You must be logged in to post a job" {
		t.Fatalf("unexpected message %q", f.Err())
	}
	if !reflect.DeepEqual(f.Input(), in) {
		t.Fatalf("expected input preserved across failed submission")
	}

	// A second attempt is allowed once back in editing.
	creator.err = nil
	owner := uuid.New()
	f.Submit(context.Background(), &owner)
	if f.State() != FormSuccess {
		t.Fatalf("expected retry to succeed")
	}
}

func TestPostForm_SetInputIgnoredAfterSuccess(t *testing.T) {
	creator := &mockCreator{}
	f := NewPostForm(creator)
	f.SetInput(filledInput())
	owner := uuid.New()
	f.Submit(context.Background(), &owner)

	f.SetInput(PostFormInput{Title: "late edit"})
	if f.Input().Title != "Backend Engineer" {
		t.Fatalf("expected input frozen outside editing state")
	}
}

func TestPostForm_SubmitErrorMessageWrapsInvalidInput(t *testing.T) {
	cause := errors.New("minimum salary cannot be greater than maximum salary")
	creator := &mockCreator{err: errors.Join(ErrInvalidInput, cause)}
	f := NewPostForm(creator)
	f.SetInput(filledInput())

	owner := uuid.New()
	f.Submit(context.Background(), &owner)

	if f.State() != FormEditing {
		t.Fatalf("expected editing state")
	}
	if f.Err() == "" || f.Err() == "Failed to post job" {
		t.Fatalf("expected the validation detail surfaced, got %q", f.Err())
	}
}

func TestSplitRequirements(t *testing.T) {
	got := SplitRequirements(" Go \n\n\tPostgreSQL\t\nDocker\n")
	want := []string{"Go", "PostgreSQL", "Docker"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if n := len(SplitRequirements("  \n \n")); n != 0 {
		t.Fatalf("expected empty list, got %d entries", n)
	}
}
