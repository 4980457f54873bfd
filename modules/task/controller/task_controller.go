package controller

import (
	"event-admin-api/core/constants"
	"event-admin-api/core/controller"
	"event-admin-api/core/errors"
	"event-admin-api/core/utils"
	"event-admin-api/modules/task/dto"
	"event-admin-api/modules/task/service"
	"event-admin-api/modules/task/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TaskController handles task HTTP requests.
type TaskController struct {
	controller.BaseController
	TaskService service.TaskServiceInterface
}

func NewTaskController(svc service.TaskServiceInterface) *TaskController {
	return &TaskController{
		BaseController: controller.NewBaseController(),
		TaskService:    svc,
	}
}

func (c *TaskController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
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

// List handles GET /tasks
// @Summary List the caller's tasks, deadline ascending, with event and attendee names
// @Tags Task
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.TaskResponse
// @Router /private/tasks [get]
func (c *TaskController) List(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.TaskService.List(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Create handles POST /tasks
// @Summary Create a task (status starts pending)
// @Tags Task
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Task fields"
// @Success 200 {object} dto.TaskResponse
// @Router /private/tasks [post]
func (c *TaskController) Create(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateTaskRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	validationResult := validator.ValidateCreateTaskRequest(&req)
	if validationResult.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	result, appErr := c.TaskService.Create(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Task created successfully")
}

// ToggleStatus handles PATCH /tasks/:id/toggle
// @Summary Flip a task between pending and completed
// @Tags Task
// @Security BearerAuth
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.TaskResponse
// @Router /private/tasks/{id}/toggle [patch]
func (c *TaskController) ToggleStatus(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid task ID")
	}

	result, appErr := c.TaskService.ToggleStatus(ctx.Request().Context(), userID, taskID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Task status updated")
}

// Delete handles DELETE /tasks/:id
// @Summary Delete a task
// @Tags Task
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Router /private/tasks/{id} [delete]
func (c *TaskController) Delete(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid task ID")
	}

	if appErr := c.TaskService.Delete(ctx.Request().Context(), userID, taskID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Task deleted successfully")
}
