package app

import (
	"context"

	"opsdash/internal/common"
	"opsdash/internal/domain/catalog"
	"opsdash/internal/forms"
	"opsdash/internal/listview"
)

type CatalogService struct {
	api    CatalogAPI
	logger Logger
}

func NewCatalogService(api CatalogAPI, logger Logger) *CatalogService {
	return &CatalogService{api: api, logger: logger}
}

type CatalogListView struct {
	Services   []catalog.Service `json:"services"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
	Filtered   int               `json:"filtered"`
	Total      int               `json:"total"`
}

func serviceSearchFields(s catalog.Service) []string {
	fields := append([]string{s.Title}, s.SubServices...)
	return fields
}

func (s *CatalogService) Overview(ctx context.Context, q listview.Query) (*CatalogListView, error) {
	raw, err := s.api.List(ctx)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	page := listview.Apply(raw, q, serviceSearchFields, nil)
	return &CatalogListView{
		Services:   page.Items,
		Page:       page.Page,
		TotalPages: page.TotalPages,
		Filtered:   page.FilteredTotal,
		Total:      len(raw),
	}, nil
}

func validateService(draft catalog.Service) error {
	if draft.Title == "" {
		return common.NewValidationError("invalid service", map[string]string{"title": "title is required"})
	}
	return nil
}

func (s *CatalogService) Create(ctx context.Context, draft catalog.Service) (*Mutation[catalog.Service], error) {
	if err := validateService(draft); err != nil {
		return nil, err
	}
	current, err := s.api.List(ctx)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	created, err := s.api.Create(ctx, draft)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	return &Mutation[catalog.Service]{Item: created, Collection: forms.MergeCreated(current, *created)}, nil
}

func (s *CatalogService) Update(ctx context.Context, id common.UUID, draft catalog.Service) (*Mutation[catalog.Service], error) {
	if id == "" {
		return nil, common.NewValidationError("invalid service", map[string]string{"id": "id is required"})
	}
	if err := validateService(draft); err != nil {
		return nil, err
	}
	current, err := s.api.List(ctx)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	updated, err := s.api.Update(ctx, id, draft)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	merged := forms.MergeUpdated(current, *updated, func(c catalog.Service) string { return c.ID.String() })
	return &Mutation[catalog.Service]{Item: updated, Collection: merged}, nil
}

func (s *CatalogService) Delete(ctx context.Context, id common.UUID) ([]catalog.Service, error) {
	current, err := s.api.List(ctx)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	if err := s.api.Delete(ctx, id); err != nil {
		return nil, wrapUpstream(err)
	}
	return forms.RemoveByID(current, id.String(), func(c catalog.Service) string { return c.ID.String() }), nil
}
