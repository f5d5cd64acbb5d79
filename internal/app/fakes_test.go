package app

import (
	"context"
	"io"
	"sync"
	"time"

	"jobboard/internal/common"
	"jobboard/internal/domain/application"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/user"
)

type fakeUserRepo struct {
	mu   sync.Mutex
	byID map[common.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[common.UUID]*user.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, u user.User) (*user.User, error) {
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

func (r *fakeUserRepo) GetByID(ctx context.Context, id common.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
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

type fakeJobRepo struct {
	mu    sync.Mutex
	items []job.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{}
}

func (r *fakeJobRepo) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j.ID = common.NewUUID()
	j.PostedAt = time.Now().UTC()
	r.items = append(r.items, j)
	copied := j
	return &copied, nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
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

func (r *fakeJobRepo) List(ctx context.Context) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]job.Job(nil), r.items...), nil
}

func (r *fakeJobRepo) ListByOwner(ctx context.Context, ownerID common.UUID) ([]job.Job, error) {
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

func (r *fakeJobRepo) Delete(ctx context.Context, id common.UUID) error {
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

type fakeApplicationRepo struct {
	mu         sync.Mutex
	items      []application.Application
	jobs       *fakeJobRepo
	failCreate bool
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{jobs: jobs}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate {
		return nil, common.NewError(common.CodeInternal, "failed to create application", nil)
	}
	// Mirrors the unique (applicant_id, job_id) constraint.
	for _, existing := range r.items {
		if existing.ApplicantID == app.ApplicantID && existing.JobID == app.JobID {
			return nil, common.NewError(common.CodeConflict, "You have already applied for this job", nil)
		}
	}
	app.ID = common.NewUUID()
	app.AppliedAt = time.Now().UTC()
	r.items = append(r.items, app)
	copied := app
	return &copied, nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, app := range r.items {
		if app.ID == id {
			copied := app
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}

func (r *fakeApplicationRepo) FindByApplicantAndJob(ctx context.Context, applicantID, jobID common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, app := range r.items {
		if app.ApplicantID == applicantID && app.JobID == jobID {
			copied := app
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}

func (r *fakeApplicationRepo) ListByApplicant(ctx context.Context, applicantID common.UUID) ([]application.Detail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Detail
	for _, app := range r.items {
		if app.ApplicantID != applicantID {
			continue
		}
		j, err := r.jobs.GetByID(ctx, app.JobID)
		if err != nil {
			return nil, err
		}
		items = append(items, application.Detail{Application: app, Job: j.Summary()})
	}
	return items, nil
}

func (r *fakeApplicationRepo) ListAll(ctx context.Context) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]application.Application(nil), r.items...), nil
}

func (r *fakeApplicationRepo) ListByJobOwner(ctx context.Context, ownerID common.UUID) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Application
	for _, app := range r.items {
		j, err := r.jobs.GetByID(ctx, app.JobID)
		if err != nil {
			continue
		}
		if j.CreatedBy == ownerID {
			items = append(items, app)
		}
	}
	return items, nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
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

func (r *fakeApplicationRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, app := range r.items {
		if app.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "application not found", nil)
}

type fakeFileStore struct {
	mu       sync.Mutex
	files    map[string][]byte
	failSave bool
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{files: make(map[string][]byte)}
}

func (s *fakeFileStore) Save(relPath string, r io.Reader) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSave {
		return common.NewError(common.CodeInternal, "failed to write upload file", nil)
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to read upload", err)
	}
	s.files[relPath] = content
	return nil
}

func (s *fakeFileStore) Remove(relPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, relPath)
	return nil
}
