package controller

import (
	"net/http"

	"event-admin-api/core/constants"
	"event-admin-api/core/controller"
	"event-admin-api/core/errors"
	"event-admin-api/core/utils"
	"event-admin-api/modules/auth/dto"
	"event-admin-api/modules/auth/service"
	"event-admin-api/modules/auth/validator"

	"github.com/labstack/echo/v4"
)

// AuthController handles authentication HTTP requests.
type AuthController struct {
	controller.BaseController
	AuthService service.AuthServiceInterface
}

func NewAuthController(authService service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		AuthService:    authService,
	}
}

// Register handles POST /public/auth/register
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account details"
// @Success 200 {object} dto.AuthTokensResponse
// @Router /public/auth/register [post]
func (ctrl *AuthController) Register(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.RegisterRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateRegisterRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	registerResponse, err := ctrl.AuthService.Register(ctx, requestData)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, registerResponse, "Register success")
}

// Login handles POST /public/auth/login
// @Summary Password sign-in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthTokensResponse
// @Router /public/auth/login [post]
func (ctrl *AuthController) Login(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.LoginRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateLoginRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	loginResponse, err := ctrl.AuthService.Login(ctx, requestData)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, loginResponse, "Login success")
}

// Logout handles POST /private/auth/logout
// @Summary Sign out, invalidating the presented token
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Router /private/auth/logout [post]
func (ctrl *AuthController) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	token, err := utils.GetTokenFromHeader(c)
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	if errLogout := ctrl.AuthService.Logout(ctx, token); errLogout != nil {
		return ctrl.ErrorResponse(c, errLogout)
	}

	return ctrl.SuccessResponse(c, nil, "Logout success")
}

// GetSession handles GET /private/auth/session
// @Summary Current session user, re-resolved from storage
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Router /private/auth/session [get]
func (ctrl *AuthController) GetSession(c echo.Context) error {
	ctx := c.Request().Context()

	tokenData := c.Get(constants.ContextTokenData)
	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	sessionResponse, err := ctrl.AuthService.GetSession(ctx, claims.UserID)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, sessionResponse, "Success")
}

// RefreshToken handles POST /public/auth/refresh
// @Summary Exchange a refresh token for a new token pair
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.AuthTokensResponse
// @Router /public/auth/refresh [post]
func (ctrl *AuthController) RefreshToken(c echo.Context) error {
	ctx := c.Request().Context()

	token, err := utils.GetTokenFromHeader(c)
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid token", nil)
	}

	refreshResponse, errRefresh := ctrl.AuthService.RefreshToken(ctx, token)
	if errRefresh != nil {
		return ctrl.ErrorResponse(c, errRefresh)
	}

	return ctrl.SuccessResponse(c, refreshResponse, "Refresh token success")
}

// GoogleAuth handles GET /public/auth/google, redirecting to Google's consent
// page.
// @Summary Start federated sign-in
// @Tags Auth
// @Router /public/auth/google [get]
func (ctrl *AuthController) GoogleAuth(c echo.Context) error {
	ctx := c.Request().Context()

	authURL, err := ctrl.AuthService.GetGoogleAuthURL(ctx)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return c.Redirect(http.StatusFound, authURL)
}

// GoogleCallback handles GET /public/auth/google/callback
// @Summary Complete federated sign-in
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.AuthTokensResponse
// @Router /public/auth/google/callback [get]
func (ctrl *AuthController) GoogleCallback(c echo.Context) error {
	ctx := c.Request().Context()

	code := c.QueryParam("code")
	state := c.QueryParam("state")

	if errorParam := c.QueryParam("error"); errorParam != "" {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Google OAuth error: "+errorParam, nil)
	}
	if code == "" {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "authorization code is required", nil)
	}
	if state == "" {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "state parameter is required", nil)
	}

	loginResponse, err := ctrl.AuthService.HandleGoogleCallback(ctx, code, state)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, loginResponse, "Google login success")
}
