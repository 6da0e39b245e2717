// Package session persists the logged-in admin's identity in a cookie. It is
// a faithful port of the dashboard's browser-storage session: a literal
// "true" flag plus a serialized user record, with no server-side expiry,
// refresh, or revocation. The flag is NOT a security boundary; anything
// holding a validly signed cookie is let through, and the design keeps that
// limitation rather than silently hardening it.
package session

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"

	"opsdash/internal/domain/user"
)

const (
	cookieName = "opsdash_session"

	keyLoggedIn = "is_logged_in"
	keyEmail    = "email"
	keyUser     = "user"

	loggedInLiteral = "true"
)

type Store struct {
	cookies *sessions.CookieStore
}

func NewStore(secret string) *Store {
	cookies := sessions.NewCookieStore([]byte(secret))
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookies: cookies}
}

// IsLoggedIn is true iff the persisted flag equals the literal "true".
func (s *Store) IsLoggedIn(r *http.Request) bool {
	session, _ := s.cookies.Get(r, cookieName)
	flag, _ := session.Values[keyLoggedIn].(string)
	return flag == loggedInLiteral
}

// User returns the persisted account, or a zero-value user when the session
// is absent or malformed. Callers render missing fields as empty rather than
// failing.
func (s *Store) User(r *http.Request) user.User {
	session, _ := s.cookies.Get(r, cookieName)
	raw, _ := session.Values[keyUser].(string)
	var account user.User
	if raw != "" {
		_ = json.Unmarshal([]byte(raw), &account)
	}
	return account
}

func (s *Store) Email(r *http.Request) string {
	session, _ := s.cookies.Get(r, cookieName)
	email, _ := session.Values[keyEmail].(string)
	return email
}

// SignIn persists the account. The write-only password field is dropped
// before serialization.
func (s *Store) SignIn(w http.ResponseWriter, r *http.Request, account user.User) error {
	account.Password = ""
	serialized, err := json.Marshal(account)
	if err != nil {
		return err
	}
	session, _ := s.cookies.Get(r, cookieName)
	session.Values[keyLoggedIn] = loggedInLiteral
	session.Values[keyEmail] = account.Email
	session.Values[keyUser] = string(serialized)
	return session.Save(r, w)
}

// Clear drops all session data.
func (s *Store) Clear(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.cookies.Get(r, cookieName)
	session.Values = map[any]any{}
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
