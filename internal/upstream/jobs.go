package upstream

import (
	"context"

	"opsdash/internal/common"
	"opsdash/internal/domain/job"
)

type Jobs struct {
	c *Client
}

func NewJobs(c *Client) *Jobs {
	return &Jobs{c: c}
}

func (j *Jobs) List(ctx context.Context) ([]job.Job, error) {
	var items []job.Job
	if err := j.c.getJSON(ctx, "/job/get-all", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (j *Jobs) Create(ctx context.Context, payload job.Job) (*job.Job, error) {
	var created job.Job
	if err := j.c.sendJSON(ctx, "POST", "/job/save", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (j *Jobs) Update(ctx context.Context, id common.UUID, payload job.Job) (*job.Job, error) {
	var updated job.Job
	if err := j.c.sendJSON(ctx, "PUT", "/job/update/"+id.String(), payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (j *Jobs) UpdateStatus(ctx context.Context, id common.UUID, status job.Status) (*job.Job, error) {
	var updated job.Job
	if err := j.c.sendJSON(ctx, "PATCH", "/job/update/"+id.String()+"/status", map[string]string{"status": string(status)}, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (j *Jobs) Delete(ctx context.Context, id common.UUID) error {
	return j.c.send(ctx, "DELETE", "/job/delete/"+id.String(), "", nil, nil)
}
