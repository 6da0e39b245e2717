package upstream

import (
	"context"
	"io"

	"opsdash/internal/common"
	"opsdash/internal/domain/applicant"
)

type Applicants struct {
	c *Client
}

func NewApplicants(c *Client) *Applicants {
	return &Applicants{c: c}
}

func (a *Applicants) List(ctx context.Context) ([]applicant.Applicant, error) {
	var items []applicant.Applicant
	if err := a.c.getJSON(ctx, "/applicant/get", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Save files an application against a job; always multipart (resume
// attachment).
func (a *Applicants) Save(ctx context.Context, jobID common.UUID, contentType string, body io.Reader) (*applicant.Applicant, error) {
	var created applicant.Applicant
	if err := a.c.send(ctx, "POST", "/applicant/save/"+jobID.String(), contentType, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *Applicants) UpdateStatus(ctx context.Context, id common.UUID, status applicant.Status) (*applicant.Applicant, error) {
	var updated applicant.Applicant
	if err := a.c.sendJSON(ctx, "PATCH", "/applicant/update/"+id.String(), map[string]string{"status": string(status)}, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DownloadResume streams the stored resume through to the caller.
func (a *Applicants) DownloadResume(ctx context.Context, filename string) ([]byte, string, error) {
	return a.c.fetch(ctx, "/applicant/download/"+filename)
}
