package handlers

import (
	"errors"
	"net/http"
	"time"

	"jobboard/internal/app"
	"jobboard/internal/common"
	"jobboard/internal/domain/application"
	"jobboard/internal/domain/job"
	"jobboard/internal/http/middleware"
	"jobboard/internal/http/response"
)

const maxResumeMemory = 10 << 20

type ApplicationHandler struct {
	applications *app.ApplicationService
	limiter      middleware.Limiter
	baseURL      string
}

func NewApplicationHandler(applications *app.ApplicationService, limiter middleware.Limiter, baseURL string) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, limiter: limiter, baseURL: baseURL}
}

type applyResponse struct {
	Data    *application.Application `json:"data"`
	Message string                   `json:"message"`
}

// Apply handles the multipart submission: form fields applicant, job,
// cover_letter, phone, linkedin and an optional resume file.
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	if err := r.ParseMultipartForm(maxResumeMemory); err != nil {
		response.Error(w, common.NewError(common.CodeValidation, "invalid multipart form", err))
		return
	}

	fields := map[string]string{}
	applicantID, err := common.ParseUUID(r.FormValue("applicant"))
	if err != nil {
		fields["applicant"] = "invalid applicant id"
	}
	jobID, err := common.ParseUUID(r.FormValue("job"))
	if err != nil {
		fields["job"] = "invalid job id"
	}
	if len(fields) > 0 {
		response.Error(w, common.NewValidationError("invalid request", fields))
		return
	}

	if h.limiter != nil {
		key := "apply:" + callerID.String()
		if !h.limiter.Allow(key, 5, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "apply rate limit exceeded", nil))
			return
		}
	}

	input := app.SubmitInput{
		ApplicantID: applicantID,
		JobID:       jobID,
		CoverLetter: r.FormValue("cover_letter"),
		Phone:       r.FormValue("phone"),
		LinkedIn:    r.FormValue("linkedin"),
	}
	file, header, err := r.FormFile("resume")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		response.Error(w, common.NewError(common.CodeValidation, "invalid resume upload", err))
		return
	}
	if err == nil {
		defer file.Close()
		input.Resume = &app.ResumeUpload{Filename: header.Filename, Content: file}
	}

	created, err := h.applications.Submit(r.Context(), input)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, applyResponse{Data: created, Message: "Application submitted successfully"})
}

type applicationEntry struct {
	ID          common.UUID        `json:"id"`
	Status      application.Status `json:"status"`
	AppliedAt   time.Time          `json:"applied_at"`
	Resume      *string            `json:"resume"`
	CoverLetter string             `json:"cover_letter,omitempty"`
	Phone       string             `json:"phone,omitempty"`
	LinkedIn    string             `json:"linkedin,omitempty"`
	Job         job.Summary        `json:"job"`
}

// ListForUser returns the given applicant's submissions with the posting
// inlined and resume links resolved to absolute URLs.
//
// TODO: require the authenticated caller to match the requested user_id;
// today any authenticated user can read any applicant's list.
func (h *ApplicationHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		response.Error(w, errUnauthorized())
		return
	}
	applicantID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.applications.ListByApplicant(r.Context(), applicantID)
	if err != nil {
		response.Error(w, err)
		return
	}
	entries := make([]applicationEntry, 0, len(items))
	for _, item := range items {
		entry := applicationEntry{
			ID:          item.ID,
			Status:      item.Status,
			AppliedAt:   item.AppliedAt,
			CoverLetter: item.CoverLetter,
			Phone:       item.Phone,
			LinkedIn:    item.LinkedIn,
			Job:         item.Job,
		}
		if item.ResumePath != "" {
			url := h.mediaURL(r, item.ResumePath)
			entry.Resume = &url
		}
		entries = append(entries, entry)
	}
	response.JSON(w, http.StatusOK, entries)
}

type applicationListResponse struct {
	Data []application.Application `json:"data"`
}

// AdminList returns the applications the caller administers.
func (h *ApplicationHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFromRequest(r)
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.applications.ListScoped(r.Context(), p)
	if err != nil {
		response.Error(w, err)
		return
	}
	if items == nil {
		items = []application.Application{}
	}
	response.JSON(w, http.StatusOK, applicationListResponse{Data: items})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFromRequest(r)
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	applicationID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if req.Status == "" {
		response.Error(w, common.NewError(common.CodeValidation, "status is required", nil))
		return
	}
	updated, err := h.applications.UpdateStatus(r.Context(), p, applicationID, application.Status(req.Status))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFromRequest(r)
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	applicationID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.applications.Delete(r.Context(), p, applicationID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "Application deleted successfully"})
}

// mediaURL resolves a stored relative path to an absolute URL, preferring the
// configured public base URL over the request host.
func (h *ApplicationHandler) mediaURL(r *http.Request, relPath string) string {
	base := h.baseURL
	if base == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + r.Host
	}
	return base + "/media/" + relPath
}
