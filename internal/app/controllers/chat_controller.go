package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/app/services"
	"github.com/yigit/campusconnect/internal/middleware"
)

// ChatController handles direct messaging
type ChatController struct {
	chatService services.ChatService
}

// NewChatController creates a new ChatController
func NewChatController(chatService services.ChatService) *ChatController {
	return &ChatController{chatService: chatService}
}

// GetChats lists the caller's chats
// @Summary List my chats
// @Tags chats
// @Security BearerAuth
// @Router /chats [get]
func (c *ChatController) GetChats(ctx *gin.Context) {
	chats, err := c.chatService.ListChats(ctx.Request.Context(), middleware.CurrentActor(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(chats))
}

// CreateChat opens a chat with another user
// @Summary Start or reopen a chat
// @Tags chats
// @Security BearerAuth
// @Param request body dto.CreateChatRequest true "Other participant"
// @Router /chats [post]
func (c *ChatController) CreateChat(ctx *gin.Context) {
	var req dto.CreateChatRequest
	if !bindJSON(ctx, &req) {
		return
	}

	chat, err := c.chatService.CreateChat(ctx.Request.Context(), middleware.CurrentActor(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(chat))
}

// GetMessages returns a chat's messages
// @Summary List chat messages
// @Tags chats
// @Security BearerAuth
// @Param id path string true "Chat ID"
// @Router /chats/{id}/messages [get]
func (c *ChatController) GetMessages(ctx *gin.Context) {
	msgs, err := c.chatService.GetMessages(ctx.Request.Context(), middleware.CurrentActor(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(msgs))
}

// SendMessage posts a message into a chat
// @Summary Send a message
// @Tags chats
// @Security BearerAuth
// @Param id path string true "Chat ID"
// @Param request body dto.SendMessageRequest true "Message"
// @Router /chats/{id}/messages [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if !bindJSON(ctx, &req) {
		return
	}

	msg, err := c.chatService.SendMessage(ctx.Request.Context(), middleware.CurrentActor(ctx), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(msg))
}
