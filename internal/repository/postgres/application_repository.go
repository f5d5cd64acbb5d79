package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"jobboard/internal/common"
	"jobboard/internal/domain/application"
)

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationColumns = `id, applicant_id, job_id, status, applied_at, resume_path, cover_letter, phone, linkedin`

func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	app.ID = common.NewUUID()
	app.AppliedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO applications (id, applicant_id, job_id, status, applied_at, resume_path, cover_letter, phone, linkedin)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		app.ID, app.ApplicantID, app.JobID, app.Status, app.AppliedAt, app.ResumePath, app.CoverLetter, app.Phone, app.LinkedIn)
	if err != nil {
		// Concurrent submissions for the same pair resolve here through the
		// unique constraint rather than an application-level lock.
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "You have already applied for this job", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	return scanApplication(row)
}

func (r *ApplicationRepository) FindByApplicantAndJob(ctx context.Context, applicantID, jobID common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE applicant_id = $1 AND job_id = $2`, applicantID, jobID)
	return scanApplication(row)
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID common.UUID) ([]application.Detail, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT a.id, a.applicant_id, a.job_id, a.status, a.applied_at, a.resume_path, a.cover_letter, a.phone, a.linkedin,
			j.id, j.title, j.company, j.location, j.salary_range, j.about, j.posted_at
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.applicant_id = $1
		ORDER BY a.applied_at, a.id`, applicantID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applicant applications", err)
	}
	defer rows.Close()
	var items []application.Detail
	for rows.Next() {
		var d application.Detail
		if err := rows.Scan(&d.ID, &d.ApplicantID, &d.JobID, &d.Status, &d.AppliedAt, &d.ResumePath, &d.CoverLetter, &d.Phone, &d.LinkedIn,
			&d.Job.ID, &d.Job.Title, &d.Job.Company, &d.Job.Location, &d.Job.SalaryRange, &d.Job.About, &d.Job.PostedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, d)
	}
	return items, nil
}

func (r *ApplicationRepository) ListAll(ctx context.Context) ([]application.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+` FROM applications ORDER BY applied_at, id`)
}

func (r *ApplicationRepository) ListByJobOwner(ctx context.Context, ownerID common.UUID) ([]application.Application, error) {
	return r.list(ctx, `SELECT a.id, a.applicant_id, a.job_id, a.status, a.applied_at, a.resume_path, a.cover_letter, a.phone, a.linkedin
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.created_by = $1
		ORDER BY a.applied_at, a.id`, ownerID)
}

func (r *ApplicationRepository) list(ctx context.Context, query string, args ...any) ([]application.Application, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	defer rows.Close()
	var items []application.Application
	for rows.Next() {
		var app application.Application
		if err := rows.Scan(&app.ID, &app.ApplicantID, &app.JobID, &app.Status, &app.AppliedAt, &app.ResumePath, &app.CoverLetter, &app.Phone, &app.LinkedIn); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, app)
	}
	return items, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE applications SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update application", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

func (r *ApplicationRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete application", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
	}
	return nil
}

func scanApplication(row *sql.Row) (*application.Application, error) {
	var app application.Application
	if err := row.Scan(&app.ID, &app.ApplicantID, &app.JobID, &app.Status, &app.AppliedAt, &app.ResumePath, &app.CoverLetter, &app.Phone, &app.LinkedIn); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return &app, nil
}
