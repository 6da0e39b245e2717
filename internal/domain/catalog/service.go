package catalog

import "opsdash/internal/common"

// Service is one entry of the service catalog with its ordered sub-services.
type Service struct {
	ID          common.UUID `json:"id"`
	Title       string      `json:"title"`
	SubServices []string    `json:"sub_services"`
}
