package upstream

import (
	"context"
	"io"

	"opsdash/internal/common"
	"opsdash/internal/domain/blog"
)

// Blogs covers posts, categories, and the upstream publishing metrics. Blog
// create is always multipart (featured image attachment).
type Blogs struct {
	c *Client
}

func NewBlogs(c *Client) *Blogs {
	return &Blogs{c: c}
}

func (b *Blogs) Get(ctx context.Context, id common.UUID) (*blog.Blog, error) {
	var item blog.Blog
	if err := b.c.getJSON(ctx, "/api/blogs/"+id.String(), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (b *Blogs) Create(ctx context.Context, contentType string, body io.Reader) (*blog.Blog, error) {
	var created blog.Blog
	if err := b.c.send(ctx, "POST", "/api/blogs", contentType, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (b *Blogs) Categories(ctx context.Context) ([]blog.Category, error) {
	var items []blog.Category
	if err := b.c.getJSON(ctx, "/api/categories", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (b *Blogs) CreateCategory(ctx context.Context, name string) (*blog.Category, error) {
	var created blog.Category
	if err := b.c.sendJSON(ctx, "POST", "/api/categories", map[string]string{"name": name}, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Metrics returns the upstream publishing metrics document as-is; the
// dashboard renders it without reshaping.
func (b *Blogs) Metrics(ctx context.Context) (map[string]any, error) {
	var metrics map[string]any
	if err := b.c.getJSON(ctx, "/api/metrics", &metrics); err != nil {
		return nil, err
	}
	return metrics, nil
}
