package app

import (
	"context"

	"opsdash/internal/common"
	"opsdash/internal/domain/subscriber"
	"opsdash/internal/domain/user"
	"opsdash/internal/forms"
	"opsdash/internal/listview"
)

type UsersService struct {
	api    UsersAPI
	logger Logger
}

func NewUsersService(api UsersAPI, logger Logger) *UsersService {
	return &UsersService{api: api, logger: logger}
}

type UserStats struct {
	Total  int            `json:"total"`
	ByRole map[string]int `json:"by_role"`
}

type UserListView struct {
	Users      []user.User `json:"users"`
	Page       int         `json:"page"`
	TotalPages int         `json:"total_pages"`
	Filtered   int         `json:"filtered"`
	Stats      UserStats   `json:"stats"`
}

func userSearchFields(u user.User) []string {
	return []string{u.FirstName, u.LastName, u.Email}
}

func userRoleIs(u user.User, value string) bool {
	return string(u.Role) == value
}

func userStats(raw []user.User) UserStats {
	return UserStats{
		Total:  len(raw),
		ByRole: listview.CountBy(raw, func(u user.User) string { return string(u.Role) }),
	}
}

func (s *UsersService) Overview(ctx context.Context, q listview.Query) (*UserListView, error) {
	raw, err := s.api.List(ctx)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	page := listview.Apply(raw, q, userSearchFields, userRoleIs)
	return &UserListView{
		Users:      page.Items,
		Page:       page.Page,
		TotalPages: page.TotalPages,
		Filtered:   page.FilteredTotal,
		Stats:      userStats(raw),
	}, nil
}

// UserForm carries the editable account fields. Password is required when
// creating and left blank to keep the current one when editing.
type UserForm struct {
	Email      string
	Password   string
	Phone      string
	FirstName  string
	LastName   string
	Role       user.Role
	Gender     string
	ProfilePic forms.FilePart
}

func (f UserForm) validate(creating bool) error {
	fields := map[string]string{}
	if f.FirstName == "" {
		fields["first_name"] = "first name is required"
	}
	if !emailPattern.MatchString(f.Email) {
		fields["email"] = "a valid email is required"
	}
	if creating && f.Password == "" {
		fields["password"] = "password is required"
	}
	if !user.ValidRole(f.Role) {
		fields["role"] = "role must be Admin, Owner, or Editor"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid user", fields)
	}
	return nil
}

func (f UserForm) encode() *forms.Multipart {
	m := forms.NewMultipart().
		Field("email", f.Email).
		Field("phone", f.Phone).
		Field("first_name", f.FirstName).
		Field("last_name", f.LastName).
		Field("role", string(f.Role)).
		Field("gender", f.Gender).
		File(f.ProfilePic)
	if f.Password != "" {
		m = m.Field("password", f.Password)
	}
	return m
}

func requireUserManager(actor user.User) error {
	if !actor.Role.CanManageUsers() {
		return common.NewError(common.CodeForbidden, "You do not have permission to manage users.", nil)
	}
	return nil
}

func (s *UsersService) Create(ctx context.Context, actor user.User, form UserForm) (*Mutation[user.User], error) {
	if err := requireUserManager(actor); err != nil {
		return nil, err
	}
	if err := form.validate(true); err != nil {
		return nil, err
	}
	body, contentType, err := form.encode().Encode()
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
	return &Mutation[user.User]{Item: created, Collection: forms.MergeCreated(current, *created)}, nil
}

func (s *UsersService) Update(ctx context.Context, actor user.User, id common.UUID, form UserForm) (*Mutation[user.User], error) {
	if err := requireUserManager(actor); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, common.NewValidationError("invalid user", map[string]string{"id": "id is required"})
	}
	if err := form.validate(false); err != nil {
		return nil, err
	}
	body, contentType, err := form.encode().Encode()
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
	merged := forms.MergeUpdated(current, *updated, func(u user.User) string { return u.ID.String() })
	return &Mutation[user.User]{Item: updated, Collection: merged}, nil
}

func (s *UsersService) Delete(ctx context.Context, actor user.User, id common.UUID) ([]user.User, error) {
	if err := requireUserManager(actor); err != nil {
		return nil, err
	}
	current, err := s.api.List(ctx)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	if err := s.api.Delete(ctx, id); err != nil {
		return nil, wrapUpstream(err)
	}
	return forms.RemoveByID(current, id.String(), func(u user.User) string { return u.ID.String() }), nil
}

// ExportRows returns every account shaped for the spreadsheet. Passwords are
// never included.
func (s *UsersService) ExportRows(ctx context.Context, q listview.Query) ([]string, [][]any, error) {
	raw, err := s.api.List(ctx)
	if err != nil {
		return nil, nil, wrapUpstream(err)
	}
	filtered := listview.Filtered(raw, q, userSearchFields, userRoleIs)
	headers := []string{"First Name", "Last Name", "Email", "Phone", "Role", "Gender"}
	rows := make([][]any, 0, len(filtered))
	for _, u := range filtered {
		rows = append(rows, []any{u.FirstName, u.LastName, u.Email, u.Phone, string(u.Role), u.Gender})
	}
	return headers, rows, nil
}

type SubscriberListView struct {
	Subscribers []subscriber.Subscriber `json:"subscribers"`
	Page        int                     `json:"page"`
	TotalPages  int                     `json:"total_pages"`
	Filtered    int                     `json:"filtered"`
	Total       int                     `json:"total"`
}

func subscriberSearchFields(sub subscriber.Subscriber) []string {
	return []string{sub.Email}
}

func (s *UsersService) Subscribers(ctx context.Context, q listview.Query) (*SubscriberListView, error) {
	raw, err := s.api.Subscribers(ctx)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	page := listview.Apply(raw, q, subscriberSearchFields, nil)
	return &SubscriberListView{
		Subscribers: page.Items,
		Page:        page.Page,
		TotalPages:  page.TotalPages,
		Filtered:    page.FilteredTotal,
		Total:       len(raw),
	}, nil
}

func (s *UsersService) SubscriberExportRows(ctx context.Context, q listview.Query) ([]string, [][]any, error) {
	raw, err := s.api.Subscribers(ctx)
	if err != nil {
		return nil, nil, wrapUpstream(err)
	}
	filtered := listview.Filtered(raw, q, subscriberSearchFields, nil)
	headers := []string{"Email", "Subscribed At"}
	rows := make([][]any, 0, len(filtered))
	for _, sub := range filtered {
		rows = append(rows, []any{sub.Email, sub.SubscribedAt.Format("2006-01-02 15:04:05")})
	}
	return headers, rows, nil
}
