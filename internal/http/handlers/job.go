package handlers

import (
	"net/http"

	"jobboard/internal/app"
	"jobboard/internal/common"
	"jobboard/internal/domain/job"
	"jobboard/internal/http/response"
)

type JobHandler struct {
	jobs *app.JobService
}

func NewJobHandler(jobs *app.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

type jobListResponse struct {
	Data []job.Job `json:"data"`
}

// List is public and unfiltered.
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.jobs.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	if items == nil {
		items = []job.Job{}
	}
	response.JSON(w, http.StatusOK, jobListResponse{Data: items})
}

// Get returns one posting bare, or 404.
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, common.NewError(common.CodeNotFound, "Job not found", nil))
		return
	}
	j, err := h.jobs.Get(r.Context(), id)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			response.Error(w, common.NewError(common.CodeNotFound, "Job not found", nil))
			return
		}
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, j)
}

// AdminList returns the postings the caller administers.
func (h *JobHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFromRequest(r)
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.jobs.ListScoped(r.Context(), p)
	if err != nil {
		response.Error(w, err)
		return
	}
	if items == nil {
		items = []job.Job{}
	}
	response.JSON(w, http.StatusOK, jobListResponse{Data: items})
}

type createJobRequest struct {
	Title       string `json:"title"`
	About       string `json:"about"`
	Description string `json:"description"`
	SalaryRange string `json:"salary_range"`
	Company     string `json:"company"`
	Location    string `json:"location"`
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFromRequest(r)
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req createJobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.jobs.Create(r.Context(), p, app.CreateJobInput{
		Title:       req.Title,
		About:       req.About,
		Description: req.Description,
		SalaryRange: req.SalaryRange,
		Company:     req.Company,
		Location:    req.Location,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFromRequest(r)
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.Delete(r.Context(), p, id); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "Job deleted successfully"})
}
