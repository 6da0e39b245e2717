package upstream

import (
	"context"

	"opsdash/internal/common"
	"opsdash/internal/domain/catalog"
)

type Catalog struct {
	c *Client
}

func NewCatalog(c *Client) *Catalog {
	return &Catalog{c: c}
}

func (s *Catalog) List(ctx context.Context) ([]catalog.Service, error) {
	var items []catalog.Service
	if err := s.c.getJSON(ctx, "/services/get-all", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Catalog) Create(ctx context.Context, payload catalog.Service) (*catalog.Service, error) {
	var created catalog.Service
	if err := s.c.sendJSON(ctx, "POST", "/services/save", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Catalog) Update(ctx context.Context, id common.UUID, payload catalog.Service) (*catalog.Service, error) {
	var updated catalog.Service
	if err := s.c.sendJSON(ctx, "PUT", "/services/update/"+id.String(), payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Catalog) Delete(ctx context.Context, id common.UUID) error {
	return s.c.send(ctx, "DELETE", "/services/delete/"+id.String(), "", nil, nil)
}
