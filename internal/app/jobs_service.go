package app

import (
	"context"
	"time"

	"opsdash/internal/common"
	"opsdash/internal/domain/job"
	"opsdash/internal/forms"
	"opsdash/internal/listview"
)

type JobsService struct {
	api    JobsAPI
	logger Logger
}

func NewJobsService(api JobsAPI, logger Logger) *JobsService {
	return &JobsService{api: api, logger: logger}
}

// JobStats is derived from the raw collection and never changes with the
// active search or filter.
type JobStats struct {
	Total  int            `json:"total"`
	Open   int            `json:"open"`
	Closed int            `json:"closed"`
	ByType map[string]int `json:"by_type"`
}

type JobListView struct {
	Jobs       []job.Job `json:"jobs"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
	Filtered   int       `json:"filtered"`
	Stats      JobStats  `json:"stats"`
}

func jobSearchFields(j job.Job) []string {
	return []string{j.Title, j.Location, string(j.Type)}
}

func jobTypeIs(j job.Job, value string) bool {
	return string(j.Type) == value
}

func jobStats(raw []job.Job) JobStats {
	byStatus := listview.CountBy(raw, func(j job.Job) string { return string(j.Status) })
	return JobStats{
		Total:  len(raw),
		Open:   byStatus[string(job.StatusOpen)],
		Closed: byStatus[string(job.StatusClosed)],
		ByType: listview.CountBy(raw, func(j job.Job) string { return string(j.Type) }),
	}
}

func (s *JobsService) Overview(ctx context.Context, q listview.Query) (*JobListView, error) {
	raw, err := s.api.List(ctx)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	page := listview.Apply(raw, q, jobSearchFields, jobTypeIs)
	return &JobListView{
		Jobs:       page.Items,
		Page:       page.Page,
		TotalPages: page.TotalPages,
		Filtered:   page.FilteredTotal,
		Stats:      jobStats(raw),
	}, nil
}

// Recent returns the newest postings for the dashboard preview.
func (s *JobsService) Recent(ctx context.Context, limit int) ([]job.Job, JobStats, error) {
	raw, err := s.api.List(ctx)
	if err != nil {
		return nil, JobStats{}, wrapUpstream(err)
	}
	recent := listview.RecentFirst(raw, func(j job.Job) time.Time { return j.CreatedAt }, limit)
	return recent, jobStats(raw), nil
}

func validateJob(draft job.Job) error {
	fields := map[string]string{}
	if draft.Title == "" {
		fields["title"] = "title is required"
	}
	if draft.Location == "" {
		fields["location"] = "location is required"
	}
	if !job.ValidType(draft.Type) {
		fields["type"] = "type must be full-time, part-time, freelance, internship, or contract"
	}
	if draft.Description == "" {
		fields["description"] = "description is required"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid job", fields)
	}
	return nil
}

// Create persists the draft and splices the acknowledged record into the
// collection the page was showing. The splice happens only after the
// upstream confirms; there is no optimistic update.
func (s *JobsService) Create(ctx context.Context, draft job.Job) (*Mutation[job.Job], error) {
	if err := validateJob(draft); err != nil {
		return nil, err
	}
	if draft.Status == "" {
		draft.Status = job.StatusOpen
	}
	if !job.ValidStatus(draft.Status) {
		return nil, common.NewValidationError("invalid job", map[string]string{"status": "status must be open or closed"})
	}
	current, err := s.api.List(ctx)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	created, err := s.api.Create(ctx, draft)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	return &Mutation[job.Job]{Item: created, Collection: forms.MergeCreated(current, *created)}, nil
}

func (s *JobsService) Update(ctx context.Context, id common.UUID, draft job.Job) (*Mutation[job.Job], error) {
	if id == "" {
		return nil, common.NewValidationError("invalid job", map[string]string{"id": "id is required"})
	}
	if err := validateJob(draft); err != nil {
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
	merged := forms.MergeUpdated(current, *updated, func(j job.Job) string { return j.ID.String() })
	return &Mutation[job.Job]{Item: updated, Collection: merged}, nil
}

func (s *JobsService) UpdateStatus(ctx context.Context, id common.UUID, status job.Status) (*Mutation[job.Job], error) {
	if !job.ValidStatus(status) {
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "status must be open or closed"})
	}
	current, err := s.api.List(ctx)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	updated, err := s.api.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	merged := forms.MergeUpdated(current, *updated, func(j job.Job) string { return j.ID.String() })
	return &Mutation[job.Job]{Item: updated, Collection: merged}, nil
}

func (s *JobsService) Delete(ctx context.Context, id common.UUID) ([]job.Job, error) {
	current, err := s.api.List(ctx)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	if err := s.api.Delete(ctx, id); err != nil {
		return nil, wrapUpstream(err)
	}
	return forms.RemoveByID(current, id.String(), func(j job.Job) string { return j.ID.String() }), nil
}
