package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	t.Parallel()

	require.NoError(t, Authorize("42", "42"))
	assert.ErrorIs(t, Authorize("42", "43"), ErrForbidden)
	// The guard never checks that the path owner exists
	assert.ErrorIs(t, Authorize("no-such-user", "42"), ErrForbidden)
}

func ownerGuardRouter(next http.HandlerFunc) *chi.Mux {
	r := chi.NewRouter()
	r.Route("/{owner_id}", func(r chi.Router) {
		r.Use(RequireOwner)
		r.Get("/tasks", next)
	})
	return r
}

func TestRequireOwner_Match(t *testing.T) {
	t.Parallel()

	called := false
	router := ownerGuardRouter(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/42/tasks", nil)
	req = req.WithContext(context.WithValue(req.Context(), SubjectContextKey, "42"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireOwner_Mismatch(t *testing.T) {
	t.Parallel()

	router := ownerGuardRouter(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/42/tasks", nil)
	req = req.WithContext(context.WithValue(req.Context(), SubjectContextKey, "43"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireOwner_NoSubject(t *testing.T) {
	t.Parallel()

	router := ownerGuardRouter(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/42/tasks", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
