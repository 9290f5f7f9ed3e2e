package auth

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"todo-backend/internal/httputil"
)

// ErrForbidden is returned when a valid token does not own the requested resource.
var ErrForbidden = errors.New("you do not have permission to access this resource")

// Authorize checks that the owner named in the request path matches the
// subject asserted by the verified token. Pure string comparison: it never
// confirms or denies that the path-named account exists, so a mismatch is
// always Forbidden, never NotFound.
func Authorize(pathOwnerID, subject string) error {
	if pathOwnerID != subject {
		return ErrForbidden
	}
	return nil
}

// RequireOwner is the route-level gate between "request carries a valid
// token" and "request may touch this owner's data". It must be mounted
// after RequireAuth on every /{owner_id} route. Handlers for single-task
// operations additionally re-check the fetched task's stored owner.
func RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, ok := GetSubjectFromContext(r.Context())
		if !ok {
			httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
			return
		}

		ownerID := chi.URLParam(r, "owner_id")
		if err := Authorize(ownerID, subject); err != nil {
			httputil.RespondErrorWithCode(w, ErrForbidden.Error(), httputil.CodeForbidden, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
