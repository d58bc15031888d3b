package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/app/services"
	"github.com/yigit/campusconnect/internal/middleware"
)

// HomeController serves the student landing screens
type HomeController struct {
	userService      services.UserService
	dashboardService services.DashboardService
}

// NewHomeController creates a new HomeController
func NewHomeController(userService services.UserService, dashboardService services.DashboardService) *HomeController {
	return &HomeController{
		userService:      userService,
		dashboardService: dashboardService,
	}
}

// GetHome returns the caller's home summary
// @Summary Student home summary
// @Tags home
// @Security BearerAuth
// @Router /home [get]
func (c *HomeController) GetHome(ctx *gin.Context) {
	home, err := c.dashboardService.Home(ctx.Request.Context(), middleware.CurrentActor(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(home))
}

// GetContacts lists the people the caller can chat with or call
// @Summary Contact list
// @Tags home
// @Security BearerAuth
// @Router /students [get]
func (c *HomeController) GetContacts(ctx *gin.Context) {
	contacts, err := c.userService.Contacts(ctx.Request.Context(), middleware.CurrentActor(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(contacts))
}
