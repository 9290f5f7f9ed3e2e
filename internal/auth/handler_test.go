package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) (*chi.Mux, *JWTService) {
	t.Helper()

	jwtSvc := NewJWTService([]byte("test-secret"), time.Hour)
	handler := NewHandler(NewService(newFakeUserStore(), jwtSvc))

	r := chi.NewRouter()
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", handler.Signup)
		r.Post("/login", handler.Login)
	})
	return r, jwtSvc
}

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSignupHandler_Created(t *testing.T) {
	t.Parallel()

	router, jwtSvc := newAuthRouter(t)

	rec := postJSON(t, router, "/auth/signup", `{"email":"a@x.com","password":"password1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "a@x.com", resp.User.Email)
	require.NotEmpty(t, resp.Token)

	subject, err := jwtSvc.VerifyToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatInt(resp.User.ID, 10), subject)
}

func TestSignupHandler_DuplicateEmail(t *testing.T) {
	t.Parallel()

	router, _ := newAuthRouter(t)

	rec := postJSON(t, router, "/auth/signup", `{"email":"a@x.com","password":"password1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, router, "/auth/signup", `{"email":"a@x.com","password":"password1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already registered")
}

func TestSignupHandler_Validation(t *testing.T) {
	t.Parallel()

	router, _ := newAuthRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"short password", `{"email":"a@x.com","password":"short"}`},
		{"missing email", `{"password":"password1"}`},
		{"bad email", `{"email":"nope","password":"password1"}`},
		{"malformed json", `{`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := postJSON(t, router, "/auth/signup", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	router, _ := newAuthRouter(t)

	rec := postJSON(t, router, "/auth/signup", `{"email":"a@x.com","password":"password1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, router, "/auth/login", `{"email":"a@x.com","password":"password1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "a@x.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)

	rec = postJSON(t, router, "/auth/login", `{"email":"a@x.com","password":"wrong-password"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postJSON(t, router, "/auth/login", `{"email":"nobody@x.com","password":"password1"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
