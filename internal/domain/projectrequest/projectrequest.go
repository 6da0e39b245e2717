package projectrequest

import (
	"time"

	"opsdash/internal/common"
)

// ProjectRequest is read/filter only; submissions arrive via the public site.
type ProjectRequest struct {
	ID                     common.UUID         `json:"id"`
	Username               string              `json:"username"`
	Email                  string              `json:"email"`
	Phone                  string              `json:"phone"`
	Address                string              `json:"address"`
	SelectedServices       []string            `json:"selectedservices"`
	SelectedSubServices    map[string][]string `json:"selectedsubservices"`
	BudgetRange            float64             `json:"budgetrange"`
	ProjectTimeline        string              `json:"projecttimeline"`
	AdditionalRequirements string              `json:"additionalrequirements"`
	KeepUpdated            bool                `json:"keepupdated"`
	SubmittedAt            time.Time           `json:"submittedat"`
}
