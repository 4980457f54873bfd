package controller

import (
	"event-admin-api/core/constants"
	"event-admin-api/core/controller"
	"event-admin-api/core/errors"
	"event-admin-api/core/utils"
	"event-admin-api/modules/attendee/dto"
	"event-admin-api/modules/attendee/service"
	"event-admin-api/modules/attendee/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AttendeeController handles attendee HTTP requests.
type AttendeeController struct {
	controller.BaseController
	AttendeeService service.AttendeeServiceInterface
}

func NewAttendeeController(svc service.AttendeeServiceInterface) *AttendeeController {
	return &AttendeeController{
		BaseController:  controller.NewBaseController(),
		AttendeeService: svc,
	}
}

func (c *AttendeeController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}

	return claims.UserID, nil
}

// List handles GET /attendees
// @Summary List the caller's attendees, name ascending
// @Tags Attendee
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.AttendeeResponse
// @Router /private/attendees [get]
func (c *AttendeeController) List(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.AttendeeService.List(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Get handles GET /attendees/:id
// @Summary Get one attendee
// @Tags Attendee
// @Security BearerAuth
// @Produce json
// @Param id path string true "Attendee ID"
// @Success 200 {object} dto.AttendeeResponse
// @Router /private/attendees/{id} [get]
func (c *AttendeeController) Get(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	attendeeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid attendee ID")
	}

	result, appErr := c.AttendeeService.Get(ctx.Request().Context(), userID, attendeeID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Create handles POST /attendees
// @Summary Create an attendee
// @Tags Attendee
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAttendeeRequest true "Attendee fields"
// @Success 200 {object} dto.AttendeeResponse
// @Router /private/attendees [post]
func (c *AttendeeController) Create(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateAttendeeRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	validationResult := validator.ValidateCreateAttendeeRequest(&req)
	if validationResult.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	result, appErr := c.AttendeeService.Create(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Attendee created successfully")
}

// Update handles PUT /attendees/:id
// @Summary Update an attendee in place
// @Tags Attendee
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Attendee ID"
// @Param request body dto.UpdateAttendeeRequest true "Attendee fields"
// @Success 200 {object} dto.AttendeeResponse
// @Router /private/attendees/{id} [put]
func (c *AttendeeController) Update(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	attendeeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid attendee ID")
	}

	var req dto.UpdateAttendeeRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	validationResult := validator.ValidateUpdateAttendeeRequest(&req)
	if validationResult.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	result, appErr := c.AttendeeService.Update(ctx.Request().Context(), userID, attendeeID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Attendee updated successfully")
}

// Delete handles DELETE /attendees/:id
// @Summary Delete an attendee, detaching referencing tasks
// @Tags Attendee
// @Security BearerAuth
// @Param id path string true "Attendee ID"
// @Router /private/attendees/{id} [delete]
func (c *AttendeeController) Delete(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	attendeeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid attendee ID")
	}

	if appErr := c.AttendeeService.Delete(ctx.Request().Context(), userID, attendeeID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Attendee deleted successfully")
}
