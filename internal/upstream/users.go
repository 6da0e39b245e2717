package upstream

import (
	"context"
	"io"

	"opsdash/internal/common"
	"opsdash/internal/domain/subscriber"
	"opsdash/internal/domain/user"
)

// Users covers account management plus the newsletter subscriber list. User
// create/update are always multipart (profile picture attachment).
type Users struct {
	c *Client
}

func NewUsers(c *Client) *Users {
	return &Users{c: c}
}

func (u *Users) List(ctx context.Context) ([]user.User, error) {
	var items []user.User
	if err := u.c.getJSON(ctx, "/getAllUsers", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (u *Users) Create(ctx context.Context, contentType string, body io.Reader) (*user.User, error) {
	var created user.User
	if err := u.c.send(ctx, "POST", "/newUser", contentType, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (u *Users) Update(ctx context.Context, id common.UUID, contentType string, body io.Reader) (*user.User, error) {
	var updated user.User
	if err := u.c.send(ctx, "PUT", "/updateUser/"+id.String(), contentType, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (u *Users) Delete(ctx context.Context, id common.UUID) error {
	return u.c.send(ctx, "DELETE", "/deleteUser/"+id.String(), "", nil, nil)
}

func (u *Users) Subscribers(ctx context.Context) ([]subscriber.Subscriber, error) {
	var items []subscriber.Subscriber
	if err := u.c.getJSON(ctx, "/api/subscribers", &items); err != nil {
		return nil, err
	}
	return items, nil
}
