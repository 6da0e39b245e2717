package subscriber

import (
	"time"

	"opsdash/internal/common"
)

type Subscriber struct {
	ID           common.UUID `json:"id"`
	Email        string      `json:"email"`
	SubscribedAt time.Time   `json:"subscribed_at"`
}
