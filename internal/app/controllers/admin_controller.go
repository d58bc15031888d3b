package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/app/services"
	"github.com/yigit/campusconnect/internal/middleware"
)

// AdminController serves the administrator overview screens
type AdminController struct {
	userService      services.UserService
	dashboardService services.DashboardService
}

// NewAdminController creates a new AdminController
func NewAdminController(userService services.UserService, dashboardService services.DashboardService) *AdminController {
	return &AdminController{
		userService:      userService,
		dashboardService: dashboardService,
	}
}

// GetStudents lists every registered student
// @Summary Student directory
// @Tags admin
// @Security BearerAuth
// @Router /admin/students [get]
func (c *AdminController) GetStudents(ctx *gin.Context) {
	students, err := c.userService.StudentDirectory(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students))
}

// GetDashboard returns the admin overview
// @Summary Admin dashboard
// @Tags admin
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (c *AdminController) GetDashboard(ctx *gin.Context) {
	overview, err := c.dashboardService.Overview(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(overview))
}
