package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/app/services"
	"github.com/yigit/campusconnect/internal/middleware"
	"github.com/yigit/campusconnect/internal/pkg/helpers"
)

// CallController handles simulated calls
type CallController struct {
	callService services.CallService
}

// NewCallController creates a new CallController
func NewCallController(callService services.CallService) *CallController {
	return &CallController{callService: callService}
}

// GetCalls pages through the caller's call history
// @Summary List my calls
// @Tags calls
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Param size query int false "Page size (default: 10, max: 100)" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /calls [get]
func (c *CallController) GetCalls(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	resp, err := c.callService.ListCalls(ctx.Request.Context(), middleware.CurrentActor(ctx), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// StartCall records a new call
// @Summary Start a call
// @Tags calls
// @Security BearerAuth
// @Param request body dto.StartCallRequest true "Call"
// @Router /calls [post]
func (c *CallController) StartCall(ctx *gin.Context) {
	var req dto.StartCallRequest
	if !bindJSON(ctx, &req) {
		return
	}

	call, err := c.callService.StartCall(ctx.Request.Context(), middleware.CurrentActor(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(call))
}

// UpdateCall changes a call's status
// @Summary Update call status
// @Tags calls
// @Security BearerAuth
// @Param id path string true "Call ID"
// @Param request body dto.UpdateCallRequest true "New status"
// @Router /calls/{id} [patch]
func (c *CallController) UpdateCall(ctx *gin.Context) {
	var req dto.UpdateCallRequest
	if !bindJSON(ctx, &req) {
		return
	}

	call, err := c.callService.UpdateStatus(ctx.Request.Context(), middleware.CurrentActor(ctx), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(call))
}
