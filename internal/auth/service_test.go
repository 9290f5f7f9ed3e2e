package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"todo-backend/internal/user"
)

// fakeUserStore is an in-memory UserStore for tests
type fakeUserStore struct {
	nextID  int64
	byEmail map[string]*user.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1, byEmail: make(map[string]*user.User)}
}

func (s *fakeUserStore) Create(_ context.Context, email, passwordHash string) (*user.User, error) {
	if _, exists := s.byEmail[email]; exists {
		return nil, user.ErrDuplicateEmail
	}
	u := &user.User{
		ID:           s.nextID,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	s.nextID++
	s.byEmail[email] = u
	return u, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func newTestService() (*Service, *JWTService) {
	jwtSvc := NewJWTService([]byte("test-secret"), time.Hour)
	return NewService(newFakeUserStore(), jwtSvc), jwtSvc
}

func TestSignup_Success(t *testing.T) {
	t.Parallel()

	svc, jwtSvc := newTestService()

	created, token, err := svc.Signup(context.Background(), "a@x.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", created.Email)
	assert.NotEmpty(t, created.ID)

	// Password hash must never equal the plaintext and must verify
	assert.NotEqual(t, "password1", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("password1")))

	// Token subject is the new user's id in string form
	subject, err := jwtSvc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, created.SubjectID(), subject)
}

func TestSignup_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"empty email", "", "password1", ErrEmailRequired},
		{"bad email", "not-an-email", "password1", ErrInvalidEmailFormat},
		{"empty password", "a@x.com", "", ErrPasswordRequired},
		{"short password", "a@x.com", "short", ErrPasswordTooShort},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := svc.Signup(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := NewService(store, NewJWTService([]byte("test-secret"), time.Hour))

	_, _, err := svc.Signup(context.Background(), "a@x.com", "password1")
	require.NoError(t, err)

	_, _, err = svc.Signup(context.Background(), "a@x.com", "password2")
	assert.ErrorIs(t, err, user.ErrDuplicateEmail)

	// No second record was created
	assert.Len(t, store.byEmail, 1)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	svc, jwtSvc := newTestService()

	created, _, err := svc.Signup(context.Background(), "a@x.com", "password1")
	require.NoError(t, err)

	existing, token, err := svc.Login(context.Background(), "a@x.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, existing.ID)

	subject, err := jwtSvc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, created.SubjectID(), subject)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	_, _, err := svc.Signup(context.Background(), "a@x.com", "password1")
	require.NoError(t, err)

	// Unknown email and wrong password must be indistinguishable
	_, _, err = svc.Login(context.Background(), "nobody@x.com", "password1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "a@x.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
