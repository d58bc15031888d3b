package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/app/services"
	"github.com/yigit/campusconnect/internal/middleware"
)

// ClubController handles clubs and join requests
type ClubController struct {
	clubService services.ClubService
}

// NewClubController creates a new ClubController
func NewClubController(clubService services.ClubService) *ClubController {
	return &ClubController{clubService: clubService}
}

// GetAllClubs lists every club
// @Summary List clubs
// @Tags clubs
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ClubResponse}
// @Router /clubs [get]
func (c *ClubController) GetAllClubs(ctx *gin.Context) {
	clubs, err := c.clubService.ListClubs(ctx.Request.Context(), middleware.CurrentActor(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(clubs))
}

// GetMyClubs lists the caller's clubs
// @Summary List my clubs
// @Tags clubs
// @Security BearerAuth
// @Router /clubs/mine [get]
func (c *ClubController) GetMyClubs(ctx *gin.Context) {
	clubs, err := c.clubService.MyClubs(ctx.Request.Context(), middleware.CurrentActor(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(clubs))
}

// GetClubByID returns one club
// @Summary Get club by ID
// @Tags clubs
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Failure 404 {object} dto.ErrorResponse "Club not found"
// @Router /clubs/{id} [get]
func (c *ClubController) GetClubByID(ctx *gin.Context) {
	club, err := c.clubService.GetClub(ctx.Request.Context(), middleware.CurrentActor(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(club))
}

// JoinClub files a join request. Repeating it is harmless; the response
// says whether a new request was recorded.
// @Summary Request to join a club
// @Tags clubs
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Success 200 {object} dto.APIResponse{data=dto.JoinClubResponse}
// @Router /clubs/{id}/join [post]
func (c *ClubController) JoinClub(ctx *gin.Context) {
	resp, err := c.clubService.RequestJoin(ctx.Request.Context(), middleware.CurrentActor(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := http.StatusOK
	message := "Already requested or a member"
	if resp.Requested {
		status = http.StatusCreated
		message = "Join request sent"
	}
	ctx.JSON(status, dto.NewSuccessMessage(resp, message))
}

// GetRequests lists join requests for administrators
// @Summary List club join requests
// @Tags club-requests
// @Security BearerAuth
// @Param status query string false "pending or approved"
// @Param clubId query string false "Filter by club"
// @Router /club-requests [get]
func (c *ClubController) GetRequests(ctx *gin.Context) {
	var filter dto.ClubRequestFilter
	if !bindQuery(ctx, &filter) {
		return
	}

	reqs, err := c.clubService.ListRequests(ctx.Request.Context(), &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(reqs))
}

// ApproveRequest admits a student into a club
// @Summary Approve a join request
// @Tags club-requests
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Router /club-requests/{id}/approve [post]
func (c *ClubController) ApproveRequest(ctx *gin.Context) {
	resp, err := c.clubService.ApproveRequest(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessMessage(resp, "Request approved"))
}
