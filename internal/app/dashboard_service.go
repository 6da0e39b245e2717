package app

import (
	"context"

	"opsdash/internal/domain/job"
)

// recentJobsLimit bounds the dashboard preview.
const recentJobsLimit = 5

type DashboardService struct {
	jobs       *JobsService
	applicants *ApplicantsService
	logger     Logger
}

func NewDashboardService(jobs *JobsService, applicants *ApplicantsService, logger Logger) *DashboardService {
	return &DashboardService{jobs: jobs, applicants: applicants, logger: logger}
}

type DashboardView struct {
	RecentJobs     []job.Job      `json:"recent_jobs"`
	JobStats       JobStats       `json:"job_stats"`
	ApplicantStats ApplicantStats `json:"applicant_stats"`
}

// Overview fetches the two collections sequentially; a failure of either one
// fails the whole dashboard rather than rendering a partial view.
func (s *DashboardService) Overview(ctx context.Context) (*DashboardView, error) {
	recent, jobStats, err := s.jobs.Recent(ctx, recentJobsLimit)
	if err != nil {
		return nil, err
	}
	applicants, err := s.applicants.api.List(ctx)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	return &DashboardView{
		RecentJobs:     recent,
		JobStats:       jobStats,
		ApplicantStats: applicantStats(applicants),
	}, nil
}
