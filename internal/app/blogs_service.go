package app

import (
	"context"
	"strconv"
	"time"

	"opsdash/internal/common"
	"opsdash/internal/domain/blog"
	"opsdash/internal/draftstore"
	"opsdash/internal/forms"
)

type BlogsService struct {
	api    BlogsAPI
	drafts DraftStore
	logger Logger
}

func NewBlogsService(api BlogsAPI, drafts DraftStore, logger Logger) *BlogsService {
	return &BlogsService{api: api, drafts: drafts, logger: logger}
}

func (s *BlogsService) Get(ctx context.Context, id common.UUID) (*blog.Blog, error) {
	if id == "" {
		return nil, common.NewValidationError("invalid blog", map[string]string{"id": "id is required"})
	}
	found, err := s.api.Get(ctx, id)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	return found, nil
}

// BlogForm is the full authoring payload. Content is accepted as markup from
// the editor and forwarded untouched; scheduling requires an explicit time.
type BlogForm struct {
	Title          string
	ShortDesc      string
	Slug           string
	Content        blog.TrustedHTML
	Status         blog.Status
	ScheduledTime  *time.Time
	Category       string
	Tags           []string
	SEOTitle       string
	SEODescription string
	SEOKeywords    []string
	IsFeatured     bool
	IsPinned       bool
	FeaturedImage  forms.FilePart
}

func (f BlogForm) validate() error {
	fields := map[string]string{}
	if f.Title == "" {
		fields["title"] = "title is required"
	}
	if f.Content == "" {
		fields["content"] = "content is required"
	}
	if !blog.ValidStatus(f.Status) {
		fields["status"] = "status must be Draft, Published, or Scheduled"
	}
	if f.Status == blog.StatusScheduled && f.ScheduledTime == nil {
		fields["scheduled_time"] = "a schedule time is required for scheduled posts"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid blog", fields)
	}
	return nil
}

func (f BlogForm) encode() *forms.Multipart {
	m := forms.NewMultipart().
		Field("title", f.Title).
		Field("short_desc", f.ShortDesc).
		Field("slug", f.Slug).
		Field("content", string(f.Content)).
		Field("status", string(f.Status)).
		Field("category", f.Category).
		Repeated("tags", f.Tags).
		Field("seo_title", f.SEOTitle).
		Field("seo_description", f.SEODescription).
		Repeated("seo_keywords", f.SEOKeywords).
		Field("is_featured", strconv.FormatBool(f.IsFeatured)).
		Field("is_pinned", strconv.FormatBool(f.IsPinned)).
		File(f.FeaturedImage)
	if f.ScheduledTime != nil {
		m = m.Field("scheduled_time", f.ScheduledTime.Format(time.RFC3339))
	}
	return m
}

// Create publishes the post and, on success, discards the author's recovery
// draft so a later visit does not offer stale content.
func (s *BlogsService) Create(ctx context.Context, authorEmail string, form BlogForm) (*blog.Blog, error) {
	if err := form.validate(); err != nil {
		return nil, err
	}
	body, contentType, err := form.encode().Encode()
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to build upload", err)
	}
	created, err := s.api.Create(ctx, contentType, body)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	if s.drafts != nil && authorEmail != "" {
		if err := s.drafts.Delete(ctx, authorEmail); err != nil && s.logger != nil {
			s.logger.Error("failed to discard draft after publish: " + err.Error())
		}
	}
	return created, nil
}

func (s *BlogsService) Categories(ctx context.Context) ([]blog.Category, error) {
	categories, err := s.api.Categories(ctx)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	return categories, nil
}

func (s *BlogsService) CreateCategory(ctx context.Context, name string) (*Mutation[blog.Category], error) {
	if name == "" {
		return nil, common.NewValidationError("invalid category", map[string]string{"name": "name is required"})
	}
	current, err := s.api.Categories(ctx)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	created, err := s.api.CreateCategory(ctx, name)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	return &Mutation[blog.Category]{Item: created, Collection: forms.MergeCreated(current, *created)}, nil
}

func (s *BlogsService) Metrics(ctx context.Context) (map[string]any, error) {
	metrics, err := s.api.Metrics(ctx)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	return metrics, nil
}

// SaveDraft stores work in progress locally, keyed by the author. The payload
// is opaque to the server; the editor round-trips whatever it saved.
func (s *BlogsService) SaveDraft(ctx context.Context, email, payload string) error {
	if email == "" {
		return common.NewValidationError("invalid draft", map[string]string{"email": "a signed-in author is required"})
	}
	if payload == "" {
		return common.NewValidationError("invalid draft", map[string]string{"payload": "payload is required"})
	}
	if err := s.drafts.Save(ctx, email, payload); err != nil {
		return common.NewError(common.CodeInternal, "Could not save draft.", err)
	}
	return nil
}

func (s *BlogsService) Draft(ctx context.Context, email string) (*draftstore.Draft, error) {
	if email == "" {
		return nil, common.NewValidationError("invalid draft", map[string]string{"email": "a signed-in author is required"})
	}
	return s.drafts.Get(ctx, email)
}

func (s *BlogsService) DiscardDraft(ctx context.Context, email string) error {
	if email == "" {
		return common.NewValidationError("invalid draft", map[string]string{"email": "a signed-in author is required"})
	}
	if err := s.drafts.Delete(ctx, email); err != nil {
		return common.NewError(common.CodeInternal, "Could not discard draft.", err)
	}
	return nil
}
