package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"annapurna/internal/models/request_models"
	"annapurna/internal/services"
	"annapurna/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// Message godoc
// @Summary Send a chat message
// @Description Returns wellness guidance; degrades to a canned responder when the AI provider fails
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.ChatMessageRequest true "Chat payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat/message [post]
func (ch *ChatController) Message(c *gin.Context) {
	var req request_models.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp := ch.chatService.Respond(c.Request.Context(), req.Message)
	utils.RespondSuccess(c, resp, "Message processed")
}
