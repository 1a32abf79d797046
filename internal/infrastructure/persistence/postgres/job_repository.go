package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"jobboard/internal/database"
	"jobboard/internal/domain/job"
)

const jobColumns = `id, owner_id, title, company, location, type, description, requirements,
	salary_min, salary_max, COALESCE(application_url, ''), COALESCE(contact_email, ''),
	posted_at, created_at, updated_at`

// JobRepository is the single place ownership is enforced: every mutation is
// scoped by id AND owner_id in SQL, so a handler-level check being bypassed
// changes nothing.
type JobRepository struct {
	db database.DB
}

func NewJobRepository(db database.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) List(ctx context.Context, f job.Filter) ([]job.Job, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if s := strings.TrimSpace(f.Search); s != "" {
		p := arg("%" + s + "%")
		where = append(where, fmt.Sprintf("(title ILIKE %s OR company ILIKE %s OR description ILIKE %s)", p, p, p))
	}
	if l := strings.TrimSpace(f.Location); l != "" {
		where = append(where, fmt.Sprintf("location ILIKE %s", arg("%"+l+"%")))
	}
	if f.Type != nil {
		where = append(where, fmt.Sprintf("type = %s", arg(string(*f.Type))))
	}
	if f.SalaryMin != nil {
		where = append(where, fmt.Sprintf("salary_min >= %s", arg(*f.SalaryMin)))
	}

	q := `SELECT ` + jobColumns + ` FROM jobs`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY posted_at DESC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *JobRepository) Get(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *JobRepository) Create(ctx context.Context, in job.PostInput, ownerID uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO jobs (id, owner_id, title, company, location, type, description, requirements,
			salary_min, salary_max, application_url, contact_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''), NULLIF($12, ''))
		RETURNING `+jobColumns,
		uuid.New(), ownerID, in.Title, in.Company, in.Location, string(in.Type),
		in.Description, in.Requirements, in.SalaryMin, in.SalaryMax,
		in.ApplicationURL, in.ContactEmail,
	)
	return scanJob(row)
}

func (r *JobRepository) Update(ctx context.Context, id uuid.UUID, in job.PostInput, ownerID uuid.UUID) (job.Job, error) {
	// updated_at is recomputed here; callers never supply it.
	row := r.db.QueryRow(ctx, `
		UPDATE jobs
		SET title = $3, company = $4, location = $5, type = $6, description = $7,
			requirements = $8, salary_min = $9, salary_max = $10,
			application_url = NULLIF($11, ''), contact_email = NULLIF($12, ''),
			updated_at = now()
		WHERE id = $1 AND owner_id = $2
		RETURNING `+jobColumns,
		id, ownerID, in.Title, in.Company, in.Location, string(in.Type),
		in.Description, in.Requirements, in.SalaryMin, in.SalaryMax,
		in.ApplicationURL, in.ContactEmail,
	)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrForbidden
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *JobRepository) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrForbidden
	}
	return nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	var typ string
	err := row.Scan(
		&j.ID, &j.OwnerID, &j.Title, &j.Company, &j.Location, &typ,
		&j.Description, &j.Requirements, &j.SalaryMin, &j.SalaryMax,
		&j.ApplicationURL, &j.ContactEmail,
		&j.PostedAt, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return job.Job{}, err
	}
	j.Type = job.Type(typ)
	return j, nil
}
