package lead

import (
	"time"

	"opsdash/internal/common"
)

// Lead is read-only from the dashboard; the upstream ebook funnel owns it.
type Lead struct {
	ID        common.UUID `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Book      Book        `json:"book"`
	CreatedAt time.Time   `json:"createdAt"`
}

type Book struct {
	ID    common.UUID `json:"id"`
	Title string      `json:"title"`
	Image string      `json:"image"`
}
