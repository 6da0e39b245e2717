package blog

import (
	"time"

	"opsdash/internal/common"
)

type Status string

const (
	StatusDraft     Status = "Draft"
	StatusPublished Status = "Published"
	StatusScheduled Status = "Scheduled"
)

// TrustedHTML marks server-supplied markup that is rendered verbatim. The
// authoring path is responsible for sanitizing it; wrapping a string in this
// type is a deliberate opt-in, never a default.
type TrustedHTML string

type Blog struct {
	ID             common.UUID `json:"id"`
	Title          string      `json:"title"`
	ShortDesc      string      `json:"short_desc"`
	Slug           string      `json:"slug"`
	FeaturedImage  string      `json:"featured_image"`
	Content        TrustedHTML `json:"content"`
	Status         Status      `json:"status"`
	ScheduledTime  *time.Time  `json:"scheduled_time,omitempty"`
	Category       string      `json:"category"`
	Tags           []string    `json:"tags"`
	SEOTitle       string      `json:"seo_title"`
	SEODescription string      `json:"seo_description"`
	SEOKeywords    []string    `json:"seo_keywords"`
	IsFeatured     bool        `json:"is_featured"`
	IsPinned       bool        `json:"is_pinned"`
	AuthorID       common.UUID `json:"author_id"`
	CreatedAt      time.Time   `json:"created_at"`
}

type Category struct {
	ID   common.UUID `json:"id"`
	Name string      `json:"name"`
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusDraft, StatusPublished, StatusScheduled:
		return true
	default:
		return false
	}
}
