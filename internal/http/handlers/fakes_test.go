package handlers

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"jobboard/internal/app"
	"jobboard/internal/common"
	"jobboard/internal/domain/application"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/user"
	"jobboard/internal/http/middleware"
)

type memUserRepo struct {
	mu   sync.Mutex
	byID map[common.UUID]*user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: make(map[common.UUID]*user.User)}
}

func (r *memUserRepo) Create(ctx context.Context, u user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Username == u.Username {
			return nil, common.NewError(common.CodeConflict, "username already taken", nil)
		}
	}
	u.ID = common.NewUUID()
	u.CreatedAt = time.Now().UTC()
	r.byID[u.ID] = &u
	copied := u
	return &copied, nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id common.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	copied := *u
	return &copied, nil
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "user not found", nil)
}

type memJobRepo struct {
	mu    sync.Mutex
	items []job.Job
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{}
}

func (r *memJobRepo) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j.ID = common.NewUUID()
	j.PostedAt = time.Now().UTC()
	r.items = append(r.items, j)
	copied := j
	return &copied, nil
}

func (r *memJobRepo) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, j := range r.items {
		if j.ID == id {
			copied := j
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "job not found", nil)
}

func (r *memJobRepo) List(ctx context.Context) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]job.Job(nil), r.items...), nil
}

func (r *memJobRepo) ListByOwner(ctx context.Context, ownerID common.UUID) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []job.Job
	for _, j := range r.items {
		if j.CreatedBy == ownerID {
			items = append(items, j)
		}
	}
	return items, nil
}

func (r *memJobRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, j := range r.items {
		if j.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "job not found", nil)
}

type memApplicationRepo struct {
	mu    sync.Mutex
	items []application.Application
	jobs  *memJobRepo
}

func newMemApplicationRepo(jobs *memJobRepo) *memApplicationRepo {
	return &memApplicationRepo{jobs: jobs}
}

func (r *memApplicationRepo) Create(ctx context.Context, a application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.ApplicantID == a.ApplicantID && existing.JobID == a.JobID {
			return nil, common.NewError(common.CodeConflict, "You have already applied for this job", nil)
		}
	}
	a.ID = common.NewUUID()
	a.AppliedAt = time.Now().UTC()
	r.items = append(r.items, a)
	copied := a
	return &copied, nil
}

func (r *memApplicationRepo) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.items {
		if a.ID == id {
			copied := a
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}

func (r *memApplicationRepo) FindByApplicantAndJob(ctx context.Context, applicantID, jobID common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.items {
		if a.ApplicantID == applicantID && a.JobID == jobID {
			copied := a
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}

func (r *memApplicationRepo) ListByApplicant(ctx context.Context, applicantID common.UUID) ([]application.Detail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Detail
	for _, a := range r.items {
		if a.ApplicantID != applicantID {
			continue
		}
		j, err := r.jobs.GetByID(ctx, a.JobID)
		if err != nil {
			return nil, err
		}
		items = append(items, application.Detail{Application: a, Job: j.Summary()})
	}
	return items, nil
}

func (r *memApplicationRepo) ListAll(ctx context.Context) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]application.Application(nil), r.items...), nil
}

func (r *memApplicationRepo) ListByJobOwner(ctx context.Context, ownerID common.UUID) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Application
	for _, a := range r.items {
		j, err := r.jobs.GetByID(ctx, a.JobID)
		if err != nil {
			continue
		}
		if j.CreatedBy == ownerID {
			items = append(items, a)
		}
	}
	return items, nil
}

func (r *memApplicationRepo) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Status = status
			copied := r.items[i]
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}

func (r *memApplicationRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.items {
		if a.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "application not found", nil)
}

type memFileStore struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newMemFileStore() *memFileStore {
	return &memFileStore{files: make(map[string][]byte)}
}

func (s *memFileStore) Save(relPath string, r io.Reader) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	content, err := io.ReadAll(r)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to read upload", err)
	}
	s.files[relPath] = content
	return nil
}

func (s *memFileStore) Remove(relPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, relPath)
	return nil
}

type denyAllLimiter struct{}

func (denyAllLimiter) Allow(key string, limit int, window time.Duration) bool { return false }

func jobFixture(title, company string, owner common.UUID) job.Job {
	return job.Job{Title: title, Description: "desc", Company: company, CreatedBy: owner}
}

// authenticate stamps the principal into the request context the way the
// auth middleware would after verifying a token.
func authenticate(r *http.Request, id common.UUID, role user.Role) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.ContextUserIDKey, id)
	ctx = context.WithValue(ctx, middleware.ContextRoleKey, role)
	return r.WithContext(ctx)
}

type handlerFixture struct {
	users        *memUserRepo
	jobs         *memJobRepo
	applications *memApplicationRepo
	files        *memFileStore

	jobService         *app.JobService
	applicationService *app.ApplicationService
}

func newHandlerFixture() *handlerFixture {
	users := newMemUserRepo()
	jobs := newMemJobRepo()
	applications := newMemApplicationRepo(jobs)
	files := newMemFileStore()
	scope := app.NewScopeService(jobs, applications)
	return &handlerFixture{
		users:              users,
		jobs:               jobs,
		applications:       applications,
		files:              files,
		jobService:         app.NewJobService(jobs, scope),
		applicationService: app.NewApplicationService(applications, jobs, users, files, scope),
	}
}
