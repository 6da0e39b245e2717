package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"opsdash/internal/common"
	"opsdash/internal/domain/job"
	"opsdash/internal/listview"
	"opsdash/internal/upstream"
)

type fakeJobsAPI struct {
	mu      sync.Mutex
	jobs    []job.Job
	listErr error
	created []job.Job
	deleted []common.UUID
}

func (f *fakeJobsAPI) List(ctx context.Context) ([]job.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]job.Job, len(f.jobs))
	copy(out, f.jobs)
	return out, nil
}

func (f *fakeJobsAPI) Create(ctx context.Context, payload job.Job) (*job.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payload.ID = common.UUID("created-id")
	f.created = append(f.created, payload)
	return &payload, nil
}

func (f *fakeJobsAPI) Update(ctx context.Context, id common.UUID, payload job.Job) (*job.Job, error) {
	payload.ID = id
	return &payload, nil
}

func (f *fakeJobsAPI) UpdateStatus(ctx context.Context, id common.UUID, status job.Status) (*job.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, j := range f.jobs {
		if j.ID == id {
			j.Status = status
			return &j, nil
		}
	}
	return nil, &upstream.Error{Status: 404, Message: "job not found"}
}

func (f *fakeJobsAPI) Delete(ctx context.Context, id common.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

func sampleJobs() []job.Job {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []job.Job{
		{ID: "1", Title: "Backend Engineer", Location: "Remote", Type: job.TypeFullTime, Status: job.StatusOpen, Description: "d", CreatedAt: now},
		{ID: "2", Title: "Frontend Engineer", Location: "Pune", Type: job.TypeFullTime, Status: job.StatusClosed, Description: "d", CreatedAt: now.Add(time.Hour)},
		{ID: "3", Title: "Design Intern", Location: "Remote", Type: job.TypeInternship, Status: job.StatusOpen, Description: "d", CreatedAt: now.Add(2 * time.Hour)},
	}
}

func TestJobsOverviewStatsIgnoreFilter(t *testing.T) {
	api := &fakeJobsAPI{jobs: sampleJobs()}
	svc := NewJobsService(api, nil)

	view, err := svc.Overview(context.Background(), listview.Query{Search: "engineer", Filter: string(job.TypeFullTime), Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Jobs) != 2 {
		t.Fatalf("expected 2 jobs after search+filter, got %d", len(view.Jobs))
	}
	if view.Filtered != 2 {
		t.Fatalf("expected filtered total 2, got %d", view.Filtered)
	}
	if view.Stats.Total != 3 || view.Stats.Open != 2 || view.Stats.Closed != 1 {
		t.Fatalf("expected stats from raw collection, got %+v", view.Stats)
	}
	if view.Stats.ByType[string(job.TypeInternship)] != 1 {
		t.Fatalf("expected 1 internship in stats, got %+v", view.Stats.ByType)
	}
}

func TestJobsOverviewPageClamped(t *testing.T) {
	api := &fakeJobsAPI{jobs: sampleJobs()}
	svc := NewJobsService(api, nil)

	view, err := svc.Overview(context.Background(), listview.Query{Page: 99, PageSize: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Page != view.TotalPages {
		t.Fatalf("expected page clamped to %d, got %d", view.TotalPages, view.Page)
	}
}

func TestJobsCreatePrependsAcknowledgedRecord(t *testing.T) {
	api := &fakeJobsAPI{jobs: sampleJobs()}
	svc := NewJobsService(api, nil)

	draft := job.Job{Title: "DevOps Engineer", Location: "Remote", Type: job.TypeContract, Description: "d"}
	result, err := svc.Create(context.Background(), draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Item.ID != "created-id" {
		t.Fatalf("expected acknowledged id, got %q", result.Item.ID)
	}
	if result.Item.Status != job.StatusOpen {
		t.Fatalf("expected default open status, got %q", result.Item.Status)
	}
	if len(result.Collection) != 4 {
		t.Fatalf("expected 4 jobs after create, got %d", len(result.Collection))
	}
	if result.Collection[0].ID != "created-id" {
		t.Fatalf("expected new job prepended, got %q first", result.Collection[0].ID)
	}
}

func TestJobsCreateValidation(t *testing.T) {
	api := &fakeJobsAPI{}
	svc := NewJobsService(api, nil)

	_, err := svc.Create(context.Background(), job.Job{Type: "weekly"})
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(api.created) != 0 {
		t.Fatalf("expected no upstream call on invalid draft")
	}
}

func TestJobsUpdateReplacesInPlace(t *testing.T) {
	api := &fakeJobsAPI{jobs: sampleJobs()}
	svc := NewJobsService(api, nil)

	draft := job.Job{Title: "Senior Frontend Engineer", Location: "Pune", Type: job.TypeFullTime, Status: job.StatusOpen, Description: "d"}
	result, err := svc.Update(context.Background(), "2", draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Collection) != 3 {
		t.Fatalf("expected collection length unchanged, got %d", len(result.Collection))
	}
	if result.Collection[1].Title != "Senior Frontend Engineer" {
		t.Fatalf("expected update in place, got %q", result.Collection[1].Title)
	}
}

func TestJobsUpdateStatusRejectsUnknown(t *testing.T) {
	svc := NewJobsService(&fakeJobsAPI{jobs: sampleJobs()}, nil)

	_, err := svc.UpdateStatus(context.Background(), "1", "archived")
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestJobsDeleteRemovesFromCollection(t *testing.T) {
	api := &fakeJobsAPI{jobs: sampleJobs()}
	svc := NewJobsService(api, nil)

	remaining, err := svc.Delete(context.Background(), "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(remaining) != 2 {
		t.Fatalf("expected 2 jobs left, got %d", len(remaining))
	}
	for _, j := range remaining {
		if j.ID == "2" {
			t.Fatalf("expected job 2 removed")
		}
	}
	if len(api.deleted) != 1 || api.deleted[0] != "2" {
		t.Fatalf("expected delete forwarded upstream, got %v", api.deleted)
	}
}

func TestJobsRecentNewestFirst(t *testing.T) {
	svc := NewJobsService(&fakeJobsAPI{jobs: sampleJobs()}, nil)

	recent, stats, err := svc.Recent(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent jobs, got %d", len(recent))
	}
	if recent[0].ID != "3" || recent[1].ID != "2" {
		t.Fatalf("expected newest first, got %q then %q", recent[0].ID, recent[1].ID)
	}
	if stats.Total != 3 {
		t.Fatalf("expected stats over all jobs, got %d", stats.Total)
	}
}
