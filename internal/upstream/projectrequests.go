package upstream

import (
	"context"

	"opsdash/internal/domain/projectrequest"
)

type ProjectRequests struct {
	c *Client
}

func NewProjectRequests(c *Client) *ProjectRequests {
	return &ProjectRequests{c: c}
}

func (p *ProjectRequests) List(ctx context.Context) ([]projectrequest.ProjectRequest, error) {
	var items []projectrequest.ProjectRequest
	if err := p.c.getJSON(ctx, "/project-requirements/get-all", &items); err != nil {
		return nil, err
	}
	return items, nil
}
