package middleware

import (
	"net/http"

	"opsdash/internal/session"
)

// Guard implements the two route-guard variants. Both consult the session
// store only: a synchronous cookie read, no upstream round-trip and no
// loading state.
type Guard struct {
	sessions *session.Store
}

func NewGuard(sessions *session.Store) *Guard {
	return &Guard{sessions: sessions}
}

// RequireLogin redirects anonymous requests to /login; logged-in requests
// pass through.
func (g *Guard) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.sessions.IsLoggedIn(r) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RedirectIfAuthed sends logged-in requests to /dashboard; the login and
// password-recovery screens sit behind it.
func (g *Guard) RedirectIfAuthed(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g.sessions.IsLoggedIn(r) {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
