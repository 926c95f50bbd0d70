package handlers

import (
	"net/http"

	"gigboard_backend/internal/services"
	"gigboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	*BaseHandler
	messageService services.MessageService
}

func NewMessageHandler(base *BaseHandler, messageService services.MessageService) *MessageHandler {
	return &MessageHandler{
		BaseHandler:    base,
		messageService: messageService,
	}
}

func (h *MessageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	messages := rg.Group("/messages")
	{
		messages.POST("", h.SendMessage)
		messages.GET("/:id", h.GetMessage)
		messages.GET("/conversation/:conversationId", h.GetConversationMessages)
		messages.GET("/conversations/:userId", h.GetUserConversations)
		messages.PUT("/:id/mark-read", h.MarkMessageAsRead)
		messages.PUT("/conversation/:conversationId/mark-read/:userId", h.MarkConversationAsRead)
		messages.DELETE("/:id", h.DeleteMessage)
	}
}

func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req dto.SendMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.messageService.SendMessage(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MessageHandler) GetMessage(c *gin.Context) {
	resp, err := h.messageService.GetMessage(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MessageHandler) GetConversationMessages(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	resp, err := h.messageService.GetConversationMessages(c.Param("conversationId"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MessageHandler) GetUserConversations(c *gin.Context) {
	resp, err := h.messageService.GetUserConversations(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MessageHandler) MarkMessageAsRead(c *gin.Context) {
	if err := h.messageService.MarkMessageAsRead(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MessageHandler) MarkConversationAsRead(c *gin.Context) {
	err := h.messageService.MarkConversationAsRead(c.Param("conversationId"), c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	if err := h.messageService.DeleteMessage(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
