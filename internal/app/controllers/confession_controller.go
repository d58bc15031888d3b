package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/app/services"
	"github.com/yigit/campusconnect/internal/middleware"
)

// ConfessionController handles the confession board and its moderation
type ConfessionController struct {
	confessionService services.ConfessionService
}

// NewConfessionController creates a new ConfessionController
func NewConfessionController(confessionService services.ConfessionService) *ConfessionController {
	return &ConfessionController{confessionService: confessionService}
}

// GetFeed returns approved confessions in the caller's projection
// @Summary Confession feed
// @Tags confessions
// @Security BearerAuth
// @Router /confessions [get]
func (c *ConfessionController) GetFeed(ctx *gin.Context) {
	feed, err := c.confessionService.Feed(ctx.Request.Context(), middleware.CurrentActor(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(feed))
}

// CreateConfession posts a confession
// @Summary Post a confession
// @Description Student confessions wait for moderation; administrator confessions are published immediately.
// @Tags confessions
// @Security BearerAuth
// @Param request body dto.CreateConfessionRequest true "Confession"
// @Router /confessions [post]
func (c *ConfessionController) CreateConfession(ctx *gin.Context) {
	var req dto.CreateConfessionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	actor := middleware.CurrentActor(ctx)
	confession, err := c.confessionService.Create(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "Confession submitted for review"
	if actor.IsAdmin() {
		message = "Confession published"
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessMessage(confession, message))
}

// LikeConfession likes a confession
// @Summary Like a confession
// @Tags confessions
// @Security BearerAuth
// @Param id path string true "Confession ID"
// @Router /confessions/{id}/likes [post]
func (c *ConfessionController) LikeConfession(ctx *gin.Context) {
	resp, err := c.confessionService.Like(ctx.Request.Context(), middleware.CurrentActor(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// CommentOnConfession adds a comment
// @Summary Comment on a confession
// @Tags confessions
// @Security BearerAuth
// @Param id path string true "Confession ID"
// @Param request body dto.CommentRequest true "Comment"
// @Router /confessions/{id}/comments [post]
func (c *ConfessionController) CommentOnConfession(ctx *gin.Context) {
	var req dto.CommentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	comments, err := c.confessionService.Comment(ctx.Request.Context(), middleware.CurrentActor(ctx), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(comments))
}

// GetModerationQueue returns every stored confession, authors included
// @Summary Moderation queue
// @Tags admin
// @Security BearerAuth
// @Router /admin/confessions [get]
func (c *ConfessionController) GetModerationQueue(ctx *gin.Context) {
	all, err := c.confessionService.ModerationQueue(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(all))
}

// ApproveConfession publishes a confession
// @Summary Approve a confession
// @Tags admin
// @Security BearerAuth
// @Router /admin/confessions/{id}/approve [post]
func (c *ConfessionController) ApproveConfession(ctx *gin.Context) {
	confession, err := c.confessionService.Approve(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessMessage(confession, "Confession approved"))
}

// RejectConfession removes an unapproved confession
// @Summary Reject a confession
// @Tags admin
// @Security BearerAuth
// @Router /admin/confessions/{id}/reject [post]
func (c *ConfessionController) RejectConfession(ctx *gin.Context) {
	if err := c.confessionService.Reject(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessMessage(nil, "Confession rejected"))
}

// DeleteConfession removes any confession
// @Summary Delete a confession
// @Tags admin
// @Security BearerAuth
// @Router /admin/confessions/{id} [delete]
func (c *ConfessionController) DeleteConfession(ctx *gin.Context) {
	if err := c.confessionService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessMessage(nil, "Confession deleted"))
}
