package handler

import (
	"bookswap_server/internal/dto/request"
	"bookswap_server/internal/infrastructure/middleware"
	"bookswap_server/internal/service/message"

	"github.com/gin-gonic/gin"
)

// MessageHandler 私信接口
type MessageHandler struct {
	svc *message.Service
}

// NewMessageHandler 创建私信 Handler
func NewMessageHandler(svc *message.Service) *MessageHandler {
	return &MessageHandler{svc: svc}
}

// SendMessage POST /message/send
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req request.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		FailBind(c, err)
		return
	}
	data, err := h.svc.SendMessage(middleware.GetCurrentUserID(c), &req)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, data)
}

// GetConversation GET /message/conversation/:uuid
func (h *MessageHandler) GetConversation(c *gin.Context) {
	data, err := h.svc.GetConversation(middleware.GetCurrentUserID(c), c.Param("uuid"))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, data)
}

// GetInbox GET /message/inbox
func (h *MessageHandler) GetInbox(c *gin.Context) {
	data, err := h.svc.GetInbox(middleware.GetCurrentUserID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, data)
}

// MarkRead POST /message/read
func (h *MessageHandler) MarkRead(c *gin.Context) {
	var req request.MarkMessageReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		FailBind(c, err)
		return
	}
	if err := h.svc.MarkRead(middleware.GetCurrentUserID(c), &req); err != nil {
		Fail(c, err)
		return
	}
	Success(c, nil)
}

// DeleteMessage POST /message/delete
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	var req request.DeleteMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		FailBind(c, err)
		return
	}
	if err := h.svc.DeleteMessage(middleware.GetCurrentUserID(c), &req); err != nil {
		Fail(c, err)
		return
	}
	Success(c, nil)
}
