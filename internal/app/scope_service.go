package app

import (
	"context"

	"jobboard/internal/common"
	"jobboard/internal/domain/application"
	"jobboard/internal/domain/job"
)

// ScopeService is the single place where principal-based visibility and
// mutation rules are decided. Every admin read and write path goes through it.
type ScopeService struct {
	jobs         job.Repository
	applications application.Repository
}

func NewScopeService(jobs job.Repository, applications application.Repository) *ScopeService {
	return &ScopeService{jobs: jobs, applications: applications}
}

// Jobs returns the postings the principal may administer: everything for a
// superuser, own postings for a company administrator.
func (s *ScopeService) Jobs(ctx context.Context, p Principal) ([]job.Job, error) {
	switch {
	case p.IsSuperuser():
		return s.jobs.List(ctx)
	case p.IsCompany():
		return s.jobs.ListByOwner(ctx, p.ID)
	default:
		return nil, common.NewError(common.CodeForbidden, "insufficient role", nil)
	}
}

// Applications returns the applications the principal may administer.
func (s *ScopeService) Applications(ctx context.Context, p Principal) ([]application.Application, error) {
	switch {
	case p.IsSuperuser():
		return s.applications.ListAll(ctx)
	case p.IsCompany():
		return s.applications.ListByJobOwner(ctx, p.ID)
	default:
		return nil, common.NewError(common.CodeForbidden, "insufficient role", nil)
	}
}

// CanCreateJob allows company administrators and superusers.
func (s *ScopeService) CanCreateJob(p Principal) error {
	if p.IsSuperuser() || p.IsCompany() {
		return nil
	}
	return common.NewError(common.CodeForbidden, "insufficient role", nil)
}

// CanManageJob allows the posting owner or a superuser.
func (s *ScopeService) CanManageJob(p Principal, j *job.Job) error {
	if p.IsSuperuser() {
		return nil
	}
	if p.IsCompany() && j.CreatedBy == p.ID {
		return nil
	}
	return common.NewError(common.CodeForbidden, "job belongs to another company", nil)
}

// CanManageApplication allows status mutation by the owning posting's company
// administrator or a superuser.
func (s *ScopeService) CanManageApplication(ctx context.Context, p Principal, app *application.Application) error {
	if p.IsSuperuser() {
		return nil
	}
	if !p.IsCompany() {
		return common.NewError(common.CodeForbidden, "insufficient role", nil)
	}
	j, err := s.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		return err
	}
	if j.CreatedBy != p.ID {
		return common.NewError(common.CodeForbidden, "application belongs to another company", nil)
	}
	return nil
}

// CanDeleteApplication is a fixed rule: only superusers delete applications,
// company administrators never do.
func (s *ScopeService) CanDeleteApplication(p Principal) error {
	if p.IsSuperuser() {
		return nil
	}
	return common.NewError(common.CodeForbidden, "only a superuser may delete applications", nil)
}
