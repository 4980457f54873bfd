package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"event-admin-api/core/cache"
	"event-admin-api/core/config"
	"event-admin-api/core/constants"
	"event-admin-api/core/database"
	"event-admin-api/core/errors"
	"event-admin-api/core/logger"
	"event-admin-api/core/utils"
	"event-admin-api/modules/auth/dto"
	"event-admin-api/modules/auth/entity"
	"event-admin-api/modules/auth/repository"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// AuthService implements sign-in, session resolution and session teardown.
type AuthService struct {
	repo  repository.AuthRepositoryInterface
	cache cache.Cache
}

// AuthServiceInterface defines the service contract.
type AuthServiceInterface interface {
	Register(ctx context.Context, requestData *dto.RegisterRequest) (*dto.AuthTokensResponse, *errors.AppError)
	Login(ctx context.Context, requestData *dto.LoginRequest) (*dto.AuthTokensResponse, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
	GetSession(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError)
	RefreshToken(ctx context.Context, token string) (*dto.AuthTokensResponse, *errors.AppError)

	GetGoogleAuthURL(ctx context.Context) (string, *errors.AppError)
	HandleGoogleCallback(ctx context.Context, code string, state string) (*dto.AuthTokensResponse, *errors.AppError)

	CleanupExpiredOAuthStates(ctx context.Context) error
}

func NewAuthService(repo repository.AuthRepositoryInterface, cache cache.Cache) AuthServiceInterface {
	return &AuthService{
		repo:  repo,
		cache: cache,
	}
}

// Register creates a new account and opens a session.
func (service *AuthService) Register(ctx context.Context, requestData *dto.RegisterRequest) (*dto.AuthTokensResponse, *errors.AppError) {
	existing, err := service.repo.GetUserByEmail(ctx, requestData.Email)
	if err != nil {
		logger.Error("AuthService:Register:GetUserByEmail:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check existing user", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "user with email already exists", nil)
	}

	hashedPassword, err := utils.HashPassword(requestData.Password)
	if err != nil {
		logger.Error("AuthService:Register:HashPassword:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	userEntity := &entity.User{
		Email:    requestData.Email,
		Password: hashedPassword,
		IsActive: true,
	}
	if requestData.Username != "" {
		userEntity.Username = &requestData.Username
	}

	createdUser, err := service.repo.CreateUser(ctx, userEntity)
	if err != nil {
		// A concurrent registration can slip past the pre-check and land on
		// the email unique constraint.
		if database.IsUniqueViolation(err) {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "user with email already exists", err)
		}
		logger.Error("AuthService:Register:CreateUser:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create user", err)
	}

	return service.issueTokens(createdUser)
}

// Login authenticates with email and password. Repeated failures are
// throttled through the cache, which also absorbs double-submits of the
// login form.
func (service *AuthService) Login(ctx context.Context, requestData *dto.LoginRequest) (*dto.AuthTokensResponse, *errors.AppError) {
	loginKey := fmt.Sprintf("login:%s", requestData.Email)

	blocked, err := service.cache.IsLoginBlocked(ctx, loginKey)
	if err != nil {
		logger.Error("AuthService:Login:IsLoginBlocked:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check login attempts", err)
	}
	if blocked {
		if errExpire := service.cache.Expire(ctx, loginKey, constants.BlockDuration); errExpire != nil {
			logger.Error("AuthService:Login:Expire:Error:", errExpire)
		}
		return nil, errors.NewAppError(errors.ErrUnauthorized, "too many failed attempts, try again later", nil)
	}

	user, err := service.repo.GetUserByEmail(ctx, requestData.Email)
	if err != nil {
		logger.Error("AuthService:Login:GetUserByEmail:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid email or password", nil)
	}

	if !user.IsActive {
		service.recordFailedLogin(ctx, loginKey)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "user not active", nil)
	}

	if !utils.ComparePassword(user.Password, requestData.Password) {
		service.recordFailedLogin(ctx, loginKey)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid email or password", nil)
	}

	if errDel := service.cache.Del(ctx, loginKey); errDel != nil {
		logger.Error("AuthService:Login:Del:Error:", errDel)
	}

	return service.issueTokens(user)
}

// Logout tears the session down by blacklisting the presented token.
func (service *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	if err := service.cache.AddToTokenBlacklist(ctx, token); err != nil {
		logger.Error("AuthService:Logout:AddToBlacklist:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to add token to blacklist", err)
	}
	return nil
}

// GetSession re-resolves the current user from the database. Record pages
// call this before every fetch rather than trusting any cached session state.
func (service *AuthService) GetSession(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultTimeout)
	defer cancel()

	user, err := service.repo.GetUserByID(ctx, userID)
	if err != nil {
		logger.Error("AuthService:GetSession:GetUserByID:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get user", err)
	}
	if user == nil || !user.IsActive {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "no active session", nil)
	}

	return dto.ToUserResponse(user), nil
}

// RefreshToken exchanges a refresh token for a new token pair, retiring the
// presented token.
func (service *AuthService) RefreshToken(ctx context.Context, token string) (*dto.AuthTokensResponse, *errors.AppError) {
	blacklisted, err := service.cache.IsTokenBlacklisted(ctx, token)
	if err != nil {
		logger.Error("AuthService:RefreshToken:IsTokenBlacklisted:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check token", err)
	}
	if blacklisted {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "token is blacklisted", nil)
	}

	claims, err := utils.ValidateAndParseToken(token)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid token", nil)
	}
	if claims.Scope != constants.ScopeTokenRefresh {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid token scope", nil)
	}

	user, err := service.repo.GetUserByID(ctx, claims.UserID)
	if err != nil || user == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "user not found", err)
	}

	if errAdd := service.cache.AddToTokenBlacklist(ctx, token); errAdd != nil {
		logger.Error("AuthService:RefreshToken:AddToBlacklist:Error:", errAdd)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to retire refresh token", errAdd)
	}

	return service.issueTokens(user)
}

func (service *AuthService) recordFailedLogin(ctx context.Context, loginKey string) {
	if err := service.cache.IncrementLoginAttempt(ctx, loginKey); err != nil {
		logger.Error("AuthService:recordFailedLogin:IncrementLoginAttempt:Error:", err)
	}
}

func (service *AuthService) issueTokens(user *entity.User) (*dto.AuthTokensResponse, *errors.AppError) {
	email := user.Email

	accessToken, err := utils.GenerateToken(user.ID, &email, constants.ScopeTokenAccess)
	if err != nil {
		logger.Error("AuthService:issueTokens:GenerateAccessToken:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate access token", err)
	}

	refreshToken, err := utils.GenerateToken(user.ID, &email, constants.ScopeTokenRefresh)
	if err != nil {
		logger.Error("AuthService:issueTokens:GenerateRefreshToken:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate refresh token", err)
	}

	return &dto.AuthTokensResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ===================== Federated sign-in =====================

type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}

func googleOAuthConfig(cfg *config.Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.GoogleAPI.ClientID,
		ClientSecret: cfg.GoogleAPI.ClientSecret,
		RedirectURL:  cfg.GoogleAPI.RedirectURI,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// GetGoogleAuthURL generates the Google OAuth authorization URL with a
// one-time CSRF state token.
func (service *AuthService) GetGoogleAuthURL(ctx context.Context) (string, *errors.AppError) {
	cfg, ok := config.GetSafe()
	if !ok {
		return "", errors.NewAppError(errors.ErrInternalServer, "config not initialized", nil)
	}
	if cfg.GoogleAPI.ClientID == "" || cfg.GoogleAPI.ClientSecret == "" || cfg.GoogleAPI.RedirectURI == "" {
		return "", errors.NewAppError(errors.ErrInternalServer, "Google OAuth configuration is missing", nil)
	}

	state := utils.GenerateRandomString(constants.OAuthStateLength)
	expiresAt := time.Now().Add(constants.OAuthStateExpiry)

	if err := service.repo.SaveOAuthState(ctx, state, expiresAt); err != nil {
		logger.Error("AuthService:GetGoogleAuthURL:SaveOAuthState:Error:", err)
		return "", errors.NewAppError(errors.ErrInternalServer, "failed to store state token", err)
	}

	authURL := googleOAuthConfig(cfg).AuthCodeURL(state, oauth2.AccessTypeOffline)
	return authURL, nil
}

// HandleGoogleCallback validates the state token, exchanges the authorization
// code, resolves the Google account to a local user and opens a session.
func (service *AuthService) HandleGoogleCallback(ctx context.Context, code string, state string) (*dto.AuthTokensResponse, *errors.AppError) {
	oauthState, err := service.repo.GetOAuthState(ctx, state)
	if err != nil {
		logger.Error("AuthService:HandleGoogleCallback:GetOAuthState:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to validate state token", err)
	}
	if oauthState == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid or expired state token", nil)
	}

	// One-time use
	if errDel := service.repo.DeleteOAuthState(ctx, state); errDel != nil {
		logger.Error("AuthService:HandleGoogleCallback:DeleteOAuthState:Error:", errDel)
	}

	cfg, ok := config.GetSafe()
	if !ok {
		return nil, errors.NewAppError(errors.ErrInternalServer, "config not initialized", nil)
	}

	token, err := googleOAuthConfig(cfg).Exchange(ctx, code)
	if err != nil {
		logger.Error("AuthService:HandleGoogleCallback:Exchange:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to exchange token", err)
	}

	userInfo, err := service.getGoogleUserInfo(ctx, token.AccessToken)
	if err != nil {
		logger.Error("AuthService:HandleGoogleCallback:GetGoogleUserInfo:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get user info", err)
	}

	user, err := service.repo.GetUserByEmail(ctx, userInfo.Email)
	if err != nil {
		logger.Error("AuthService:HandleGoogleCallback:GetUserByEmail:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get user", err)
	}

	if user == nil {
		// First federated sign-in: provision an account with an unguessable
		// local password.
		hashedPassword, _ := utils.HashPassword(utils.GenerateRandomString(32))
		username := userInfo.Name
		newUser := &entity.User{
			Email:    userInfo.Email,
			Username: &username,
			Password: hashedPassword,
			IsActive: true,
		}
		if userInfo.VerifiedEmail {
			now := time.Now()
			newUser.EmailVerifiedAt = &now
		}

		createdUser, errCreate := service.repo.CreateUser(ctx, newUser)
		if errCreate != nil {
			logger.Error("AuthService:HandleGoogleCallback:CreateUser:Error:", errCreate)
			return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create user", errCreate)
		}
		user = createdUser
	}

	return service.issueTokens(user)
}

// getGoogleUserInfo fetches user information from the Google API.
func (service *AuthService) getGoogleUserInfo(ctx context.Context, accessToken string) (*googleUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://www.googleapis.com/oauth2/v2/userinfo", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("google userinfo returned %d: %s", resp.StatusCode, string(body))
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}

	return &info, nil
}

// CleanupExpiredOAuthStates is run on a schedule by the jobs server.
func (service *AuthService) CleanupExpiredOAuthStates(ctx context.Context) error {
	return service.repo.CleanupExpiredOAuthStates(ctx)
}
