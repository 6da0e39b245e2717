package upstream

import (
	"context"
	"io"

	"opsdash/internal/common"
	"opsdash/internal/domain/ebook"
	"opsdash/internal/domain/lead"
)

// Ebooks covers the ebook catalog and its lead funnel. Ebook create/update
// are always multipart (image and pdf attachments).
type Ebooks struct {
	c *Client
}

func NewEbooks(c *Client) *Ebooks {
	return &Ebooks{c: c}
}

func (e *Ebooks) List(ctx context.Context) ([]ebook.Ebook, error) {
	var items []ebook.Ebook
	if err := e.c.getJSON(ctx, "/ebook/get", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (e *Ebooks) Create(ctx context.Context, contentType string, body io.Reader) (*ebook.Ebook, error) {
	var created ebook.Ebook
	if err := e.c.send(ctx, "POST", "/ebook/save", contentType, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (e *Ebooks) Update(ctx context.Context, id common.UUID, contentType string, body io.Reader) (*ebook.Ebook, error) {
	var updated ebook.Ebook
	if err := e.c.send(ctx, "PUT", "/ebook/update/"+id.String(), contentType, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (e *Ebooks) Delete(ctx context.Context, id common.UUID) error {
	return e.c.send(ctx, "DELETE", "/ebook/delete/"+id.String(), "", nil, nil)
}

func (e *Ebooks) Leads(ctx context.Context) ([]lead.Lead, error) {
	var items []lead.Lead
	if err := e.c.getJSON(ctx, "/ebook/lead/get", &items); err != nil {
		return nil, err
	}
	return items, nil
}
