package app

import (
	"context"

	"opsdash/internal/common"
	"opsdash/internal/domain/ebook"
	"opsdash/internal/forms"
	"opsdash/internal/listview"
)

type EbooksService struct {
	api    EbooksAPI
	logger Logger
}

func NewEbooksService(api EbooksAPI, logger Logger) *EbooksService {
	return &EbooksService{api: api, logger: logger}
}

type EbookListView struct {
	Ebooks     []ebook.Ebook `json:"ebooks"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	Filtered   int           `json:"filtered"`
	Total      int           `json:"total"`
}

func ebookSearchFields(e ebook.Ebook) []string {
	return []string{e.Title, e.Description}
}

func (s *EbooksService) Overview(ctx context.Context, q listview.Query) (*EbookListView, error) {
	raw, err := s.api.List(ctx)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	page := listview.Apply(raw, q, ebookSearchFields, nil)
	return &EbookListView{
		Ebooks:     page.Items,
		Page:       page.Page,
		TotalPages: page.TotalPages,
		Filtered:   page.FilteredTotal,
		Total:      len(raw),
	}, nil
}

// EbookForm carries the editable fields plus the optionally re-selected
// attachments. Highlights arrive already deduplicated by the scratch-field
// helpers; the form is always submitted as multipart.
type EbookForm struct {
	Title       string
	Description string
	Highlights  []string
	Image       forms.FilePart
	PDF         forms.FilePart
}

func (f EbookForm) encode() (*forms.Multipart, error) {
	if f.Title == "" {
		return nil, common.NewValidationError("invalid ebook", map[string]string{"title": "title is required"})
	}
	return forms.NewMultipart().
		Field("title", f.Title).
		Field("description", f.Description).
		Repeated("highlights", f.Highlights).
		File(f.Image).
		File(f.PDF), nil
}

func (s *EbooksService) Create(ctx context.Context, form EbookForm) (*Mutation[ebook.Ebook], error) {
	encoded, err := form.encode()
	if err != nil {
		return nil, err
	}
	body, contentType, err := encoded.Encode()
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to build upload", err)
	}
	current, err := s.api.List(ctx)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	created, err := s.api.Create(ctx, contentType, body)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	return &Mutation[ebook.Ebook]{Item: created, Collection: forms.MergeCreated(current, *created)}, nil
}

func (s *EbooksService) Update(ctx context.Context, id common.UUID, form EbookForm) (*Mutation[ebook.Ebook], error) {
	if id == "" {
		return nil, common.NewValidationError("invalid ebook", map[string]string{"id": "id is required"})
	}
	encoded, err := form.encode()
	if err != nil {
		return nil, err
	}
	body, contentType, err := encoded.Encode()
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to build upload", err)
	}
	current, err := s.api.List(ctx)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	updated, err := s.api.Update(ctx, id, contentType, body)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	merged := forms.MergeUpdated(current, *updated, func(e ebook.Ebook) string { return e.ID.String() })
	return &Mutation[ebook.Ebook]{Item: updated, Collection: merged}, nil
}

func (s *EbooksService) Delete(ctx context.Context, id common.UUID) ([]ebook.Ebook, error) {
	current, err := s.api.List(ctx)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	if err := s.api.Delete(ctx, id); err != nil {
		return nil, wrapUpstream(err)
	}
	return forms.RemoveByID(current, id.String(), func(e ebook.Ebook) string { return e.ID.String() }), nil
}
