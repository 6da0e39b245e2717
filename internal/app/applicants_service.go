package app

import (
	"context"
	"strings"

	"opsdash/internal/common"
	"opsdash/internal/domain/applicant"
	"opsdash/internal/forms"
	"opsdash/internal/listview"
)

type ApplicantsService struct {
	api    ApplicantsAPI
	logger Logger
}

func NewApplicantsService(api ApplicantsAPI, logger Logger) *ApplicantsService {
	return &ApplicantsService{api: api, logger: logger}
}

type ApplicantStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

type ApplicantListView struct {
	Applicants []applicant.Applicant `json:"applicants"`
	Page       int                   `json:"page"`
	TotalPages int                   `json:"total_pages"`
	Filtered   int                   `json:"filtered"`
	Stats      ApplicantStats        `json:"stats"`
}

func applicantSearchFields(a applicant.Applicant) []string {
	return []string{a.Name, a.Email, a.Job}
}

func applicantStatusIs(a applicant.Applicant, value string) bool {
	return string(a.Status) == value
}

func applicantStats(raw []applicant.Applicant) ApplicantStats {
	return ApplicantStats{
		Total:    len(raw),
		ByStatus: listview.CountBy(raw, func(a applicant.Applicant) string { return string(a.Status) }),
	}
}

func (s *ApplicantsService) Overview(ctx context.Context, q listview.Query) (*ApplicantListView, error) {
	raw, err := s.api.List(ctx)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	page := listview.Apply(raw, q, applicantSearchFields, applicantStatusIs)
	return &ApplicantListView{
		Applicants: page.Items,
		Page:       page.Page,
		TotalPages: page.TotalPages,
		Filtered:   page.FilteredTotal,
		Stats:      applicantStats(raw),
	}, nil
}

// ApplicantForm files an application manually against a job (walk-ins and
// email submissions). The resume is required; the review pipeline starts at
// its default status upstream.
type ApplicantForm struct {
	Name        string
	Email       string
	Phone       string
	CoverLetter string
	Resume      forms.FilePart
}

func (f ApplicantForm) validate() error {
	fields := map[string]string{}
	if f.Name == "" {
		fields["name"] = "name is required"
	}
	if !emailPattern.MatchString(f.Email) {
		fields["email"] = "a valid email is required"
	}
	if f.Resume.Name == "" {
		fields["resume_pdf"] = "a resume file is required"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid applicant", fields)
	}
	return nil
}

func (s *ApplicantsService) Create(ctx context.Context, jobID common.UUID, form ApplicantForm) (*Mutation[applicant.Applicant], error) {
	if jobID == "" {
		return nil, common.NewValidationError("invalid applicant", map[string]string{"job": "a job is required"})
	}
	if err := form.validate(); err != nil {
		return nil, err
	}
	body, contentType, err := forms.NewMultipart().
		Field("name", form.Name).
		Field("email", form.Email).
		Field("phone", form.Phone).
		Field("cover_letter", form.CoverLetter).
		File(form.Resume).
		Encode()
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to build upload", err)
	}
	current, err := s.api.List(ctx)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	created, err := s.api.Save(ctx, jobID, contentType, body)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	return &Mutation[applicant.Applicant]{Item: created, Collection: forms.MergeCreated(current, *created)}, nil
}

// UpdateStatus moves one applicant through the review pipeline independently
// of any other field.
func (s *ApplicantsService) UpdateStatus(ctx context.Context, id common.UUID, status applicant.Status) (*applicant.Applicant, error) {
	if !applicant.ValidStatus(status) {
		return nil, common.NewValidationError("invalid status", map[string]string{
			"status": "status must be new, reviewed, shortlisted, rejected, or interviewed",
		})
	}
	updated, err := s.api.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	return updated, nil
}

// Resume resolves the applicant's stored resume filename and streams the
// file through. The stored name is distrusted: anything resembling a path is
// rejected before it reaches the upstream URL.
func (s *ApplicantsService) Resume(ctx context.Context, id common.UUID) ([]byte, string, string, error) {
	applicants, err := s.api.List(ctx)
	if err != nil {
		return nil, "", "", wrapUpstream(err)
	}
	var filename string
	for _, a := range applicants {
		if a.ID == id {
			filename = strings.TrimSpace(a.ResumePDF)
			break
		}
	}
	if filename == "" {
		return nil, "", "", common.NewError(common.CodeNotFound, "No resume found for this applicant.", nil)
	}
	if strings.Contains(filename, "/") || strings.Contains(filename, "..") {
		return nil, "", "", common.NewValidationError("invalid filename", map[string]string{"filename": "filename is invalid"})
	}
	contents, contentType, err := s.api.DownloadResume(ctx, filename)
	if err != nil {
		return nil, "", "", wrapUpstream(err)
	}
	return contents, contentType, filename, nil
}
