package app

import (
	"context"

	"opsdash/internal/domain/projectrequest"
	"opsdash/internal/listview"
)

type ProjectRequestsService struct {
	api    ProjectRequestsAPI
	logger Logger
}

func NewProjectRequestsService(api ProjectRequestsAPI, logger Logger) *ProjectRequestsService {
	return &ProjectRequestsService{api: api, logger: logger}
}

type ProjectRequestListView struct {
	Requests   []projectrequest.ProjectRequest `json:"requests"`
	Page       int                             `json:"page"`
	TotalPages int                             `json:"total_pages"`
	Filtered   int                             `json:"filtered"`
	Total      int                             `json:"total"`
}

func projectRequestSearchFields(r projectrequest.ProjectRequest) []string {
	return []string{r.Username, r.Email, r.Phone}
}

// projectRequestHasService matches when any of the request's selected
// services equals the filter value.
func projectRequestHasService(r projectrequest.ProjectRequest, value string) bool {
	for _, svc := range r.SelectedServices {
		if svc == value {
			return true
		}
	}
	return false
}

func (s *ProjectRequestsService) Overview(ctx context.Context, q listview.Query) (*ProjectRequestListView, error) {
	raw, err := s.api.List(ctx)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	page := listview.Apply(raw, q, projectRequestSearchFields, projectRequestHasService)
	return &ProjectRequestListView{
		Requests:   page.Items,
		Page:       page.Page,
		TotalPages: page.TotalPages,
		Filtered:   page.FilteredTotal,
		Total:      len(raw),
	}, nil
}
