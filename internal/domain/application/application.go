package application

import (
	"time"

	"jobboard/internal/common"
	"jobboard/internal/domain/job"
)

type Status string

const (
	StatusPending     Status = "pending"
	StatusShortlisted Status = "shortlisted"
	StatusRejected    Status = "rejected"
	StatusAccepted    Status = "accepted"
)

// KnownStatus reports whether status is one of the four recognized values.
// No transition ordering is enforced between them.
func KnownStatus(status Status) bool {
	switch status {
	case StatusPending, StatusShortlisted, StatusRejected, StatusAccepted:
		return true
	default:
		return false
	}
}

// Application links an applicant to a posting. Everything except Status is
// immutable after creation; Status is mutated only by the posting owner's
// administrator or a superuser.
type Application struct {
	ID          common.UUID `json:"id"`
	ApplicantID common.UUID `json:"applicant"`
	JobID       common.UUID `json:"job"`
	Status      Status      `json:"status"`
	AppliedAt   time.Time   `json:"applied_at"`
	ResumePath  string      `json:"resume,omitempty"`
	CoverLetter string      `json:"cover_letter,omitempty"`
	Phone       string      `json:"phone,omitempty"`
	LinkedIn    string      `json:"linkedin,omitempty"`
}

// Detail is an application joined with a summary of its posting.
type Detail struct {
	Application
	Job job.Summary `json:"job"`
}
