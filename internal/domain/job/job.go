package job

import (
	"time"

	"jobboard/internal/common"
)

// Job is a posting created by a company administrator. PostedAt is set once
// at creation and never changes.
type Job struct {
	ID          common.UUID `json:"id"`
	Title       string      `json:"title"`
	About       string      `json:"about,omitempty"`
	Description string      `json:"description"`
	SalaryRange string      `json:"salary_range,omitempty"`
	Company     string      `json:"company"`
	Location    string      `json:"location,omitempty"`
	PostedAt    time.Time   `json:"posted_at"`
	CreatedBy   common.UUID `json:"created_by"`
}

// Summary is the posting slice embedded in an applicant's application list.
type Summary struct {
	ID          common.UUID `json:"id"`
	Title       string      `json:"title"`
	Company     string      `json:"company"`
	Location    string      `json:"location,omitempty"`
	SalaryRange string      `json:"salary_range,omitempty"`
	About       string      `json:"about,omitempty"`
	PostedAt    time.Time   `json:"posted_at"`
}

func (j Job) Summary() Summary {
	return Summary{
		ID:          j.ID,
		Title:       j.Title,
		Company:     j.Company,
		Location:    j.Location,
		SalaryRange: j.SalaryRange,
		About:       j.About,
		PostedAt:    j.PostedAt,
	}
}
