package applicant

import (
	"time"

	"opsdash/internal/common"
)

type Status string

const (
	StatusNew         Status = "new"
	StatusReviewed    Status = "reviewed"
	StatusShortlisted Status = "shortlisted"
	StatusRejected    Status = "rejected"
	StatusInterviewed Status = "interviewed"
)

type Applicant struct {
	ID          common.UUID `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Job         string      `json:"job"`
	Status      Status      `json:"status"`
	CoverLetter string      `json:"cover_letter"`
	ResumePDF   string      `json:"resume_pdf"`
	CreatedAt   time.Time   `json:"created_at"`
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusReviewed, StatusShortlisted, StatusRejected, StatusInterviewed:
		return true
	default:
		return false
	}
}
