package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"jobboard/internal/domain/job"
)

type FormState int

const (
	FormEditing FormState = iota
	FormSubmitting
	FormSuccess
)

// JobCreator is the submission boundary the form talks to.
type JobCreator interface {
	Create(ctx context.Context, in job.PostInput, ownerID *uuid.UUID) (job.Job, error)
}

// PostFormInput is the raw field state as the user typed it. It is kept
// verbatim across failed submissions so nothing the user entered is lost.
type PostFormInput struct {
	Title            string
	Company          string
	Location         string
	Type             job.Type
	Description      string
	RequirementsText string
	SalaryMin        *int64
	SalaryMax        *int64
	ApplicationURL   string
	ContactEmail     string
}

// PostForm drives the job-post submission state machine:
// editing -> submitting -> success, or back to editing with an error. Local
// validation failures never reach the creator.
type PostForm struct {
	creator JobCreator

	state   FormState
	input   PostFormInput
	errMsg  string
	created job.Job
}

func NewPostForm(creator JobCreator) *PostForm {
	return &PostForm{creator: creator, state: FormEditing, input: PostFormInput{Type: job.TypeFullTime}}
}

func (f *PostForm) State() FormState     { return f.state }
func (f *PostForm) Input() PostFormInput { return f.input }
func (f *PostForm) Err() string          { return f.errMsg }
func (f *PostForm) Created() job.Job     { return f.created }

func (f *PostForm) SetInput(in PostFormInput) {
	if f.state == FormEditing {
		f.input = in
	}
}

// Submit runs the guard validation and, when it passes, the create call.
// On any failure the form returns to editing with the input preserved and a
// user-visible message set.
func (f *PostForm) Submit(ctx context.Context, ownerID *uuid.UUID) {
	if f.state != FormEditing {
		return
	}
	f.errMsg = ""

	if msg, ok := f.validate(); !ok {
		f.errMsg = msg
		return
	}

	f.state = FormSubmitting

	created, err := f.creator.Create(ctx, job.PostInput{
		Title:          f.input.Title,
		Company:        f.input.Company,
		Location:       f.input.Location,
		Type:           f.input.Type,
		Description:    f.input.Description,
		Requirements:   SplitRequirements(f.input.RequirementsText),
		SalaryMin:      f.input.SalaryMin,
		SalaryMax:      f.input.SalaryMax,
		ApplicationURL: f.input.ApplicationURL,
		ContactEmail:   f.input.ContactEmail,
	}, ownerID)
	if err != nil {
		f.state = FormEditing
		f.errMsg = submitErrorMessage(err)
		return
	}

	f.state = FormSuccess
	f.created = created
}

func (f *PostForm) validate() (string, bool) {
	if strings.TrimSpace(f.input.Title) == "" ||
		strings.TrimSpace(f.input.Company) == "" ||
		strings.TrimSpace(f.input.Location) == "" ||
		strings.TrimSpace(f.input.Description) == "" {
		return "Please fill in all required fields", false
	}
	if f.input.SalaryMin != nil && f.input.SalaryMax != nil && *f.input.SalaryMin > *f.input.SalaryMax {
		return "Minimum salary cannot be greater than maximum salary", false
	}
	return "", true
}

func submitErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrAuthRequired):
		return "You must be logged in to post a job"
	case errors.Is(err, ErrInvalidInput):
		return err.Error()
	default:
		return "Failed to post job"
	}
}

// SplitRequirements turns the multi-line requirements field into an ordered
// list: one entry per non-empty trimmed line, in the order typed.
func SplitRequirements(text string) []string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
