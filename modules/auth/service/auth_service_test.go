package service

import (
	"context"
	"testing"
	"time"

	"event-admin-api/core/config"
	"event-admin-api/core/constants"
	apperrors "event-admin-api/core/errors"
	"event-admin-api/core/utils"
	"event-admin-api/modules/auth/dto"
	"event-admin-api/modules/auth/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

type fakeAuthRepo struct {
	usersByEmail map[string]*entity.User
	usersByID    map[uuid.UUID]*entity.User
	oauthStates  map[string]time.Time
	createErr    error
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{
		usersByEmail: make(map[string]*entity.User),
		usersByID:    make(map[uuid.UUID]*entity.User),
		oauthStates:  make(map[string]time.Time),
	}
}

func (f *fakeAuthRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, ok := f.usersByEmail[email]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeAuthRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := f.usersByID[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeAuthRepo) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *user
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	f.usersByEmail[created.Email] = &created
	f.usersByID[created.ID] = &created
	return &created, nil
}

func (f *fakeAuthRepo) SaveOAuthState(ctx context.Context, state string, expiresAt time.Time) error {
	f.oauthStates[state] = expiresAt
	return nil
}

func (f *fakeAuthRepo) GetOAuthState(ctx context.Context, state string) (*entity.OAuthState, error) {
	expiresAt, ok := f.oauthStates[state]
	if !ok || expiresAt.Before(time.Now()) {
		return nil, nil
	}
	return &entity.OAuthState{State: state, ExpiresAt: expiresAt}, nil
}

func (f *fakeAuthRepo) DeleteOAuthState(ctx context.Context, state string) error {
	delete(f.oauthStates, state)
	return nil
}

func (f *fakeAuthRepo) CleanupExpiredOAuthStates(ctx context.Context) error {
	for state, expiresAt := range f.oauthStates {
		if expiresAt.Before(time.Now()) {
			delete(f.oauthStates, state)
		}
	}
	return nil
}

type fakeCache struct {
	blacklist map[string]bool
	attempts  map[string]int
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		blacklist: make(map[string]bool),
		attempts:  make(map[string]int),
	}
}

func (f *fakeCache) AddToTokenBlacklist(ctx context.Context, token string) error {
	f.blacklist[token] = true
	return nil
}

func (f *fakeCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	return f.blacklist[token], nil
}

func (f *fakeCache) IncrementLoginAttempt(ctx context.Context, key string) error {
	f.attempts[key]++
	return nil
}

func (f *fakeCache) IsLoginBlocked(ctx context.Context, key string) (bool, error) {
	return f.attempts[key] >= constants.MaxLoginAttempts, nil
}

func (f *fakeCache) Expire(ctx context.Context, key string, duration time.Duration) error {
	return nil
}

func (f *fakeCache) Del(ctx context.Context, key string) error {
	delete(f.attempts, key)
	return nil
}

func (f *fakeCache) Client() *redis.Client { return nil }

func loadTestConfig(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	if _, err := config.Load(); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	loadTestConfig(t)
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo, newFakeCache())

	tokens, appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "admin@example.com",
		Username: "admin",
		Password: "s3cret-pass",
	})
	if appErr != nil {
		t.Fatalf("Register returned error: %v", appErr)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatal("expected a token pair after registration")
	}

	tokens, appErr = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "s3cret-pass",
	})
	if appErr != nil {
		t.Fatalf("Login returned error: %v", appErr)
	}

	claims, err := utils.ValidateAndParseToken(tokens.AccessToken)
	if err != nil {
		t.Fatalf("access token does not validate: %v", err)
	}
	if claims.Scope != constants.ScopeTokenAccess {
		t.Errorf("expected access scope, got %q", claims.Scope)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	loadTestConfig(t)
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo, newFakeCache())

	req := &dto.RegisterRequest{Email: "dup@example.com", Password: "pass-one"}
	if _, appErr := svc.Register(context.Background(), req); appErr != nil {
		t.Fatalf("first Register returned error: %v", appErr)
	}

	_, appErr := svc.Register(context.Background(), req)
	if appErr == nil || appErr.Code != apperrors.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", appErr)
	}
}

func TestRegisterConcurrentDuplicateMapsToConflict(t *testing.T) {
	loadTestConfig(t)
	repo := newFakeAuthRepo()
	// A racing registration passes the pre-check and fails on the email
	// unique constraint at insert time.
	repo.createErr = &pq.Error{Code: "23505", Constraint: "users_email_key"}
	svc := NewAuthService(repo, newFakeCache())

	_, appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "race@example.com",
		Password: "pass-word",
	})
	if appErr == nil || appErr.Code != apperrors.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists for unique violation, got %v", appErr)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	loadTestConfig(t)
	repo := newFakeAuthRepo()
	cacheClient := newFakeCache()
	svc := NewAuthService(repo, cacheClient)

	if _, appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "user@example.com",
		Password: "right-pass",
	}); appErr != nil {
		t.Fatalf("Register returned error: %v", appErr)
	}

	_, appErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "wrong-pass",
	})
	if appErr == nil || appErr.Code != apperrors.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", appErr)
	}
	if cacheClient.attempts["login:user@example.com"] != 1 {
		t.Error("expected failed attempt recorded")
	}
}

func TestLoginThrottledAfterRepeatedFailures(t *testing.T) {
	loadTestConfig(t)
	repo := newFakeAuthRepo()
	cacheClient := newFakeCache()
	svc := NewAuthService(repo, cacheClient)

	if _, appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "target@example.com",
		Password: "right-pass",
	}); appErr != nil {
		t.Fatalf("Register returned error: %v", appErr)
	}

	for i := 0; i < constants.MaxLoginAttempts; i++ {
		svc.Login(context.Background(), &dto.LoginRequest{
			Email:    "target@example.com",
			Password: "wrong-pass",
		})
	}

	// Even the right password is refused while blocked.
	_, appErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "target@example.com",
		Password: "right-pass",
	})
	if appErr == nil || appErr.Code != apperrors.ErrUnauthorized {
		t.Fatalf("expected throttled login to fail, got %v", appErr)
	}
}

func TestLogoutBlacklistsToken(t *testing.T) {
	loadTestConfig(t)
	cacheClient := newFakeCache()
	svc := NewAuthService(newFakeAuthRepo(), cacheClient)

	if appErr := svc.Logout(context.Background(), "some-token"); appErr != nil {
		t.Fatalf("Logout returned error: %v", appErr)
	}
	if !cacheClient.blacklist["some-token"] {
		t.Error("token not blacklisted")
	}
}

func TestGetSessionRequiresActiveUser(t *testing.T) {
	loadTestConfig(t)
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo, newFakeCache())

	_, appErr := svc.GetSession(context.Background(), uuid.New())
	if appErr == nil || appErr.Code != apperrors.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for unknown user, got %v", appErr)
	}

	inactive, _ := repo.CreateUser(context.Background(), &entity.User{
		Email:    "ghost@example.com",
		IsActive: false,
	})
	_, appErr = svc.GetSession(context.Background(), inactive.ID)
	if appErr == nil || appErr.Code != apperrors.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for inactive user, got %v", appErr)
	}
}

func TestRefreshTokenRotates(t *testing.T) {
	loadTestConfig(t)
	repo := newFakeAuthRepo()
	cacheClient := newFakeCache()
	svc := NewAuthService(repo, cacheClient)

	tokens, appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "rotate@example.com",
		Password: "pass-word",
	})
	if appErr != nil {
		t.Fatalf("Register returned error: %v", appErr)
	}

	fresh, appErr := svc.RefreshToken(context.Background(), tokens.RefreshToken)
	if appErr != nil {
		t.Fatalf("RefreshToken returned error: %v", appErr)
	}
	if fresh.AccessToken == "" {
		t.Fatal("expected a new access token")
	}
	if !cacheClient.blacklist[tokens.RefreshToken] {
		t.Error("presented refresh token must be retired")
	}

	// The retired token is refused on replay.
	if _, appErr := svc.RefreshToken(context.Background(), tokens.RefreshToken); appErr == nil {
		t.Fatal("expected replayed refresh token to be rejected")
	}
}

func TestRefreshTokenRejectsAccessScope(t *testing.T) {
	loadTestConfig(t)
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo, newFakeCache())

	tokens, appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "scope@example.com",
		Password: "pass-word",
	})
	if appErr != nil {
		t.Fatalf("Register returned error: %v", appErr)
	}

	_, appErr = svc.RefreshToken(context.Background(), tokens.AccessToken)
	if appErr == nil || appErr.Code != apperrors.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for access-scope token, got %v", appErr)
	}
}

func TestGoogleCallbackRejectsUnknownState(t *testing.T) {
	loadTestConfig(t)
	svc := NewAuthService(newFakeAuthRepo(), newFakeCache())

	_, appErr := svc.HandleGoogleCallback(context.Background(), "code", "never-issued")
	if appErr == nil || appErr.Code != apperrors.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for unknown state token, got %v", appErr)
	}
}

func TestCleanupExpiredOAuthStates(t *testing.T) {
	loadTestConfig(t)
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo, newFakeCache())

	repo.oauthStates["stale"] = time.Now().Add(-time.Hour)
	repo.oauthStates["live"] = time.Now().Add(time.Hour)

	if err := svc.CleanupExpiredOAuthStates(context.Background()); err != nil {
		t.Fatalf("cleanup returned error: %v", err)
	}
	if _, ok := repo.oauthStates["stale"]; ok {
		t.Error("expired state not removed")
	}
	if _, ok := repo.oauthStates["live"]; !ok {
		t.Error("live state must survive cleanup")
	}
}
