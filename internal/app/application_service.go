package app

import (
	"context"
	"io"
	"path"
	"strings"

	"jobboard/internal/common"
	"jobboard/internal/domain/application"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/user"
	"jobboard/internal/storage"
)

type ApplicationService struct {
	repo  application.Repository
	jobs  job.Repository
	users user.Repository
	files storage.FileStore
	scope *ScopeService
}

func NewApplicationService(repo application.Repository, jobs job.Repository, users user.Repository, files storage.FileStore, scope *ScopeService) *ApplicationService {
	return &ApplicationService{repo: repo, jobs: jobs, users: users, files: files, scope: scope}
}

type ResumeUpload struct {
	Filename string
	Content  io.Reader
}

type SubmitInput struct {
	ApplicantID common.UUID
	JobID       common.UUID
	CoverLetter string
	Phone       string
	LinkedIn    string
	Resume      *ResumeUpload
}

// Submit validates in a fixed order (applicant, job, duplicate) and persists
// a pending application. The resume blob is written before the metadata row
// and removed again if the insert fails.
func (s *ApplicationService) Submit(ctx context.Context, input SubmitInput) (*application.Application, error) {
	if _, err := s.users.GetByID(ctx, input.ApplicantID); err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeNotFound, "User not found", nil)
		}
		return nil, err
	}
	if _, err := s.jobs.GetByID(ctx, input.JobID); err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeNotFound, "Job not found", nil)
		}
		return nil, err
	}
	if _, err := s.repo.FindByApplicantAndJob(ctx, input.ApplicantID, input.JobID); err == nil {
		return nil, common.NewError(common.CodeConflict, "You have already applied for this job", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}

	resumePath := ""
	if input.Resume != nil {
		resumePath = path.Join("resumes", input.ApplicantID.String(), input.JobID.String(), storage.SanitizeFilename(input.Resume.Filename))
		if err := s.files.Save(resumePath, input.Resume.Content); err != nil {
			return nil, err
		}
	}

	created, err := s.repo.Create(ctx, application.Application{
		ApplicantID: input.ApplicantID,
		JobID:       input.JobID,
		Status:      application.StatusPending,
		ResumePath:  resumePath,
		CoverLetter: input.CoverLetter,
		Phone:       input.Phone,
		LinkedIn:    input.LinkedIn,
	})
	if err != nil {
		if resumePath != "" {
			_ = s.files.Remove(resumePath)
		}
		return nil, err
	}
	return created, nil
}

// ListByApplicant returns the given applicant's submissions with the posting
// summary inlined. The caller's identity is not checked against applicantID.
func (s *ApplicationService) ListByApplicant(ctx context.Context, applicantID common.UUID) ([]application.Detail, error) {
	return s.repo.ListByApplicant(ctx, applicantID)
}

// ListScoped returns the applications visible to the principal as
// administrator.
func (s *ApplicationService) ListScoped(ctx context.Context, p Principal) ([]application.Application, error) {
	return s.scope.Applications(ctx, p)
}

func (s *ApplicationService) Get(ctx context.Context, id common.UUID) (*application.Application, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus sets any of the four recognized statuses; no transition
// ordering is enforced between them.
func (s *ApplicationService) UpdateStatus(ctx context.Context, p Principal, id common.UUID, status application.Status) (*application.Application, error) {
	next := application.Status(strings.ToLower(strings.TrimSpace(string(status))))
	if !application.KnownStatus(next) {
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "status must be pending, shortlisted, rejected, or accepted"})
	}
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.scope.CanManageApplication(ctx, p, app); err != nil {
		return nil, err
	}
	return s.repo.UpdateStatus(ctx, id, next)
}

func (s *ApplicationService) Delete(ctx context.Context, p Principal, id common.UUID) error {
	if err := s.scope.CanDeleteApplication(p); err != nil {
		return err
	}
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if app.ResumePath != "" {
		_ = s.files.Remove(app.ResumePath)
	}
	return nil
}
