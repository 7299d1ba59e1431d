package handler

import (
	"bookswap_server/internal/dto/request"
	"bookswap_server/internal/infrastructure/middleware"
	"bookswap_server/internal/service/book"

	"github.com/gin-gonic/gin"
)

// BookHandler 图书目录接口
type BookHandler struct {
	svc *book.Service
}

// NewBookHandler 创建图书 Handler
func NewBookHandler(svc *book.Service) *BookHandler {
	return &BookHandler{svc: svc}
}

// CreateBook POST /book/create
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req request.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		FailBind(c, err)
		return
	}
	data, err := h.svc.CreateBook(&req)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, data)
}

// GetBookList GET /book/list
func (h *BookHandler) GetBookList(c *gin.Context) {
	var req request.GetBookListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		FailBind(c, err)
		return
	}
	data, err := h.svc.GetBookList(&req)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, data)
}

// AddUserBook POST /book/shelf/add
func (h *BookHandler) AddUserBook(c *gin.Context) {
	var req request.AddUserBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		FailBind(c, err)
		return
	}
	data, err := h.svc.AddUserBook(middleware.GetCurrentUserID(c), &req)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, data)
}

// ListMyBooks GET /book/shelf
func (h *BookHandler) ListMyBooks(c *gin.Context) {
	actorId := middleware.GetCurrentUserID(c)
	data, err := h.svc.ListUserBooks(actorId, actorId)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, data)
}

// ListUserBooks GET /book/shelf/:uuid
// 查看他人书架，只返回可交换的藏书
func (h *BookHandler) ListUserBooks(c *gin.Context) {
	data, err := h.svc.ListUserBooks(middleware.GetCurrentUserID(c), c.Param("uuid"))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, data)
}

// UpdateUserBookStatus POST /book/shelf/status
func (h *BookHandler) UpdateUserBookStatus(c *gin.Context) {
	var req request.UpdateUserBookStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		FailBind(c, err)
		return
	}
	if err := h.svc.UpdateUserBookStatus(middleware.GetCurrentUserID(c), &req); err != nil {
		Fail(c, err)
		return
	}
	Success(c, nil)
}
