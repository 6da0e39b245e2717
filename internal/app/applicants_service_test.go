package app

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"opsdash/internal/common"
	"opsdash/internal/domain/applicant"
	"opsdash/internal/forms"
	"opsdash/internal/listview"
)

type fakeApplicantsAPI struct {
	mu         sync.Mutex
	applicants []applicant.Applicant
	statusSets []common.UUID
	savedJob   common.UUID
	savedBody  string
}

func (f *fakeApplicantsAPI) List(ctx context.Context) ([]applicant.Applicant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]applicant.Applicant, len(f.applicants))
	copy(out, f.applicants)
	return out, nil
}

func (f *fakeApplicantsAPI) Save(ctx context.Context, jobID common.UUID, contentType string, body io.Reader) (*applicant.Applicant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	f.savedJob = jobID
	f.savedBody = string(raw)
	return &applicant.Applicant{ID: "new-applicant", Status: applicant.StatusNew}, nil
}

func (f *fakeApplicantsAPI) UpdateStatus(ctx context.Context, id common.UUID, status applicant.Status) (*applicant.Applicant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusSets = append(f.statusSets, id)
	return &applicant.Applicant{ID: id, Status: status}, nil
}

func (f *fakeApplicantsAPI) DownloadResume(ctx context.Context, filename string) ([]byte, string, error) {
	return []byte("%PDF-1.4"), "application/pdf", nil
}

func sampleApplicants() []applicant.Applicant {
	return []applicant.Applicant{
		{ID: "a1", Name: "Asha Patel", Email: "asha@example.com", Job: "Backend Engineer", Status: applicant.StatusNew},
		{ID: "a2", Name: "Rohan Mehta", Email: "rohan@example.com", Job: "Backend Engineer", Status: applicant.StatusShortlisted},
		{ID: "a3", Name: "Meera Iyer", Email: "meera@example.com", Job: "Design Intern", Status: applicant.StatusNew},
	}
}

func TestApplicantsOverviewStatusFilter(t *testing.T) {
	svc := NewApplicantsService(&fakeApplicantsAPI{applicants: sampleApplicants()}, nil)

	view, err := svc.Overview(context.Background(), listview.Query{Filter: string(applicant.StatusNew), Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Applicants) != 2 {
		t.Fatalf("expected 2 new applicants, got %d", len(view.Applicants))
	}
	if view.Stats.Total != 3 || view.Stats.ByStatus[string(applicant.StatusShortlisted)] != 1 {
		t.Fatalf("expected stats from raw collection, got %+v", view.Stats)
	}
}

func TestApplicantsUpdateStatusValidatesValue(t *testing.T) {
	api := &fakeApplicantsAPI{applicants: sampleApplicants()}
	svc := NewApplicantsService(api, nil)

	_, err := svc.UpdateStatus(context.Background(), "a1", "hired")
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(api.statusSets) != 0 {
		t.Fatalf("expected no upstream call on invalid status")
	}

	updated, err := svc.UpdateStatus(context.Background(), "a1", applicant.StatusReviewed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != applicant.StatusReviewed {
		t.Fatalf("expected reviewed, got %q", updated.Status)
	}
}

func TestResumeRejectsStoredPathNames(t *testing.T) {
	applicants := sampleApplicants()
	applicants[0].ResumePDF = "../etc/passwd"
	applicants[1].ResumePDF = "resume.pdf"
	svc := NewApplicantsService(&fakeApplicantsAPI{applicants: applicants}, nil)

	if _, _, _, err := svc.Resume(context.Background(), "a1"); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error for path-like filename, got %v", err)
	}
	if _, _, _, err := svc.Resume(context.Background(), "missing"); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found for unknown applicant, got %v", err)
	}

	contents, contentType, filename, err := svc.Resume(context.Background(), "a2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contents) == 0 || contentType != "application/pdf" || filename != "resume.pdf" {
		t.Fatalf("unexpected download result %q %q %q", contents, contentType, filename)
	}
}

func TestApplicantsCreateRequiresResume(t *testing.T) {
	api := &fakeApplicantsAPI{applicants: sampleApplicants()}
	svc := NewApplicantsService(api, nil)

	form := ApplicantForm{Name: "Dev Kumar", Email: "dev@example.com"}
	_, err := svc.Create(context.Background(), "job-1", form)
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error without resume, got %v", err)
	}

	form.Resume = forms.FilePart{Field: "resume_pdf", Name: "dev.pdf", Contents: strings.NewReader("%PDF-1.4")}
	result, err := svc.Create(context.Background(), "job-1", form)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.savedJob != "job-1" {
		t.Fatalf("expected save against job-1, got %q", api.savedJob)
	}
	if !strings.Contains(api.savedBody, "dev@example.com") || !strings.Contains(api.savedBody, "dev.pdf") {
		t.Fatalf("expected multipart body with email and resume")
	}
	if len(result.Collection) != 4 || result.Collection[0].ID != "new-applicant" {
		t.Fatalf("expected new applicant prepended, got %+v", result.Collection)
	}
}

func TestDashboardOverviewComposesStats(t *testing.T) {
	jobs := NewJobsService(&fakeJobsAPI{jobs: sampleJobs()}, nil)
	applicants := NewApplicantsService(&fakeApplicantsAPI{applicants: sampleApplicants()}, nil)
	svc := NewDashboardService(jobs, applicants, nil)

	view, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.RecentJobs) != 3 {
		t.Fatalf("expected all 3 jobs in the preview, got %d", len(view.RecentJobs))
	}
	if view.RecentJobs[0].ID != "3" {
		t.Fatalf("expected newest posting first, got %q", view.RecentJobs[0].ID)
	}
	if view.JobStats.Open != 2 || view.ApplicantStats.Total != 3 {
		t.Fatalf("unexpected stats %+v %+v", view.JobStats, view.ApplicantStats)
	}
}
