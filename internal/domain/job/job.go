package job

import (
	"time"

	"opsdash/internal/common"
)

type Type string

const (
	TypeFullTime   Type = "full-time"
	TypePartTime   Type = "part-time"
	TypeFreelance  Type = "freelance"
	TypeInternship Type = "internship"
	TypeContract   Type = "contract"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

type Job struct {
	ID           common.UUID `json:"id"`
	Title        string      `json:"title"`
	Location     string      `json:"location"`
	Type         Type        `json:"type"`
	Status       Status      `json:"status"`
	Description  string      `json:"description"`
	Skills       []string    `json:"skills"`
	Requirements []string    `json:"requirements"`
	Compensation string      `json:"compensation"`
	AuthorID     common.UUID `json:"author_id"`
	CreatedAt    time.Time   `json:"created_at"`
}

func ValidType(t Type) bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeFreelance, TypeInternship, TypeContract:
		return true
	default:
		return false
	}
}

func ValidStatus(s Status) bool {
	return s == StatusOpen || s == StatusClosed
}
