package handler

import (
	"strconv"

	"bookswap_server/internal/dto/request"
	"bookswap_server/internal/infrastructure/middleware"
	"bookswap_server/internal/service/exchange"
	"bookswap_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// ExchangeHandler 图书交换接口
type ExchangeHandler struct {
	svc *exchange.Service
}

// NewExchangeHandler 创建交换 Handler
func NewExchangeHandler(svc *exchange.Service) *ExchangeHandler {
	return &ExchangeHandler{svc: svc}
}

// CreateExchange POST /exchange/create
func (h *ExchangeHandler) CreateExchange(c *gin.Context) {
	var req request.CreateExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		FailBind(c, err)
		return
	}
	data, err := h.svc.CreateExchange(middleware.GetCurrentUserID(c), &req)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, data)
}

// Transition POST /exchange/transition
func (h *ExchangeHandler) Transition(c *gin.Context) {
	var req request.TransitionExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		FailBind(c, err)
		return
	}
	data, err := h.svc.Transition(middleware.GetCurrentUserID(c), &req)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, data)
}

// ListExchanges GET /exchange/list
func (h *ExchangeHandler) ListExchanges(c *gin.Context) {
	data, err := h.svc.ListExchanges(middleware.GetCurrentUserID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, data)
}

// GetExchange GET /exchange/:id
func (h *ExchangeHandler) GetExchange(c *gin.Context) {
	exchangeId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Fail(c, errorx.ErrInvalidParam)
		return
	}
	data, err := h.svc.GetExchange(middleware.GetCurrentUserID(c), exchangeId)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, data)
}
