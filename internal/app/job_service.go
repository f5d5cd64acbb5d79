package app

import (
	"context"
	"strings"

	"jobboard/internal/common"
	"jobboard/internal/domain/job"
)

type JobService struct {
	jobs  job.Repository
	scope *ScopeService
}

func NewJobService(jobs job.Repository, scope *ScopeService) *JobService {
	return &JobService{jobs: jobs, scope: scope}
}

// List returns every posting, public and unfiltered, in creation order.
func (s *JobService) List(ctx context.Context) ([]job.Job, error) {
	return s.jobs.List(ctx)
}

func (s *JobService) Get(ctx context.Context, id common.UUID) (*job.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

// ListScoped returns the postings visible to the principal as administrator.
func (s *JobService) ListScoped(ctx context.Context, p Principal) ([]job.Job, error) {
	return s.scope.Jobs(ctx, p)
}

type CreateJobInput struct {
	Title       string
	About       string
	Description string
	SalaryRange string
	Company     string
	Location    string
}

func (s *JobService) Create(ctx context.Context, p Principal, input CreateJobInput) (*job.Job, error) {
	if err := s.scope.CanCreateJob(p); err != nil {
		return nil, err
	}
	fields := map[string]string{}
	if strings.TrimSpace(input.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(input.Description) == "" {
		fields["description"] = "description is required"
	}
	if strings.TrimSpace(input.Company) == "" {
		fields["company"] = "company is required"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid job", fields)
	}
	return s.jobs.Create(ctx, job.Job{
		Title:       strings.TrimSpace(input.Title),
		About:       input.About,
		Description: input.Description,
		SalaryRange: input.SalaryRange,
		Company:     strings.TrimSpace(input.Company),
		Location:    input.Location,
		CreatedBy:   p.ID,
	})
}

// Delete removes a posting if the principal owns it or is a superuser.
func (s *JobService) Delete(ctx context.Context, p Principal, id common.UUID) error {
	j, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.scope.CanManageJob(p, j); err != nil {
		return err
	}
	return s.jobs.Delete(ctx, id)
}
