package dto

import (
	"time"

	"github.com/google/uuid"

	"jobboard/internal/domain/job"
)

type JobRequest struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Type             string   `json:"type" validate:"required,oneof=full-time part-time contract internship"`
	Description      string   `json:"description"`
	Requirements     []string `json:"requirements"`
	RequirementsText string   `json:"requirements_text"`
	SalaryMin        *int64   `json:"salary_min"`
	SalaryMax        *int64   `json:"salary_max"`
	ApplicationURL   string   `json:"application_url" validate:"omitempty,url"`
	ContactEmail     string   `json:"contact_email" validate:"omitempty,email"`
}

type JobResponse struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        uuid.UUID `json:"owner_id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	Type           string    `json:"type"`
	Description    string    `json:"description"`
	Requirements   []string  `json:"requirements"`
	SalaryMin      *int64    `json:"salary_min,omitempty"`
	SalaryMax      *int64    `json:"salary_max,omitempty"`
	ApplicationURL string    `json:"application_url,omitempty"`
	ContactEmail   string    `json:"contact_email,omitempty"`
	PostedDate     string    `json:"posted_date"`
	UpdatedAt      string    `json:"updated_at"`
}

func FromJob(j job.Job) JobResponse {
	return JobResponse{
		ID:             j.ID,
		OwnerID:        j.OwnerID,
		Title:          j.Title,
		Company:        j.Company,
		Location:       j.Location,
		Type:           j.Type.String(),
		Description:    j.Description,
		Requirements:   j.Requirements,
		SalaryMin:      j.SalaryMin,
		SalaryMax:      j.SalaryMax,
		ApplicationURL: j.ApplicationURL,
		ContactEmail:   j.ContactEmail,
		PostedDate:     j.PostedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      j.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func FromJobs(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}
