package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/salestrack-dev/salestrack/internal/entity"
	"github.com/salestrack-dev/salestrack/internal/usecase"
)

type stubVerifier struct {
	userID string
	err    error
}

func (s stubVerifier) Verify(token string) (string, error) {
	return s.userID, s.err
}

type stubUserRepo struct {
	user *entity.User
	err  error
}

func (s stubUserRepo) Insert(ctx context.Context, user *entity.User) error { return nil }
func (s stubUserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return s.user, s.err
}
func (s stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.user, s.err
}
func (s stubUserRepo) FindAll(ctx context.Context) ([]entity.User, error) { return nil, nil }
func (s stubUserRepo) UpdateByID(ctx context.Context, id string, set bson.M) (*entity.User, error) {
	return s.user, s.err
}
func (s stubUserRepo) DeleteByID(ctx context.Context, id string) error { return nil }

func okHandler(t *testing.T, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	a := NewAuthenticator(stubVerifier{}, stubUserRepo{})
	var called bool

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	rec := httptest.NewRecorder()
	a.RequireAuth(okHandler(t, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	a := NewAuthenticator(stubVerifier{userID: "u-1"}, stubUserRepo{})
	var called bool

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	a.RequireAuth(okHandler(t, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireAuth_DeactivatedUser(t *testing.T) {
	user := &entity.User{ID: "u-1", Role: entity.RoleSales, IsActive: false}
	a := NewAuthenticator(stubVerifier{userID: "u-1"}, stubUserRepo{user: user})
	var called bool

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	a.RequireAuth(okHandler(t, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireAuth_InjectsCaller(t *testing.T) {
	user := &entity.User{ID: "u-1", Role: entity.RoleAdmin, IsActive: true}
	a := NewAuthenticator(stubVerifier{userID: "u-1"}, stubUserRepo{user: user})

	var caller usecase.Caller
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, _ = CallerFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	a.RequireAuth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u-1", caller.ID)
	assert.Equal(t, entity.RoleAdmin, caller.Role)
}

func TestAdminOnly(t *testing.T) {
	var called bool
	handler := AdminOnly(okHandler(t, &called))

	// sales caller gets 403
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req = req.WithContext(WithCaller(req.Context(), usecase.Caller{ID: "u-1", Role: entity.RoleSales}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)

	// admin passes
	req = httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req = req.WithContext(WithCaller(req.Context(), usecase.Caller{ID: "a-1", Role: entity.RoleAdmin}))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestAdminOnly_NoCaller(t *testing.T) {
	var called bool
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	AdminOnly(okHandler(t, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("1.2.3.4"))
	}
	assert.False(t, rl.Allow("1.2.3.4"))

	// other clients are unaffected
	assert.True(t, rl.Allow("5.6.7.8"))
}

func TestRateLimiter_WindowResets(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))

	time.Sleep(20 * time.Millisecond)
	assert.True(t, rl.Allow("1.2.3.4"))
}

func TestRateLimiter_Handler(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	var called int
	handler := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called++
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	req.Header.Set("X-Forwarded-For", "9.9.9.9")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, 1, called)
}
