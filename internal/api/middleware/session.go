package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/sessions"

	"Lattice/internal/core/authz"
	"Lattice/internal/core/users"
)

// Context keys for storing request identity
type contextKey string

const principalKey contextKey = "principal"

const sessionName = "lattice_session"

// SessionAuth resolves the request Principal from the session cookie.
// Authentication itself (login, credentials) lives outside this service;
// the middleware only reads the established user id and hydrates the
// actor from the user store.
type SessionAuth struct {
	store *sessions.CookieStore
	users users.Repository
}

// NewSessionAuth creates session middleware over the given cookie store
func NewSessionAuth(store *sessions.CookieStore, userRepo users.Repository) *SessionAuth {
	return &SessionAuth{store: store, users: userRepo}
}

// RequireAuth ensures the request carries a valid session for an existing
// user. If not, returns 401. On success the Principal is injected into the
// request context.
func (m *SessionAuth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := m.resolve(r)
		if !ok {
			writeAuthError(w, "Authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth loads the Principal if a session is present, but lets
// anonymous requests through. Useful for listings that render the same
// for everyone.
func (m *SessionAuth) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if principal, ok := m.resolve(r); ok {
			ctx := context.WithValue(r.Context(), principalKey, principal)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

func (m *SessionAuth) resolve(r *http.Request) (authz.Principal, bool) {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		// A cookie signed with a rotated key decodes as an error; treat
		// it the same as no session.
		return authz.Principal{}, false
	}

	userID, ok := session.Values["user_id"].(int)
	if !ok || userID == 0 {
		return authz.Principal{}, false
	}

	user, err := m.users.GetByID(r.Context(), userID)
	if err != nil {
		if !users.IsNotFound(err) {
			log.Printf("[AUTH_FAILURE] type=lookup_error ip=%s path=%s user=%d error=%v",
				r.RemoteAddr, r.URL.Path, userID, err)
		}
		return authz.Principal{}, false
	}
	if user.IsDeleted {
		return authz.Principal{}, false
	}

	return user.Principal(), true
}

// WithPrincipal returns a context carrying the given actor, the same way
// RequireAuth injects it. Handler tests use it in place of a real session.
func WithPrincipal(ctx context.Context, p authz.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// GetPrincipal returns the authenticated actor from the request context.
// The zero Principal with ok=false means the request is anonymous.
func GetPrincipal(r *http.Request) (authz.Principal, bool) {
	principal, ok := r.Context().Value(principalKey).(authz.Principal)
	return principal, ok
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"AuthRequired","message":"` + message + `"}`))
}
