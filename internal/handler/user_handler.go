package handler

import (
	"bookswap_server/internal/dto/request"
	"bookswap_server/internal/infrastructure/middleware"
	"bookswap_server/internal/service/user"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户账号与资料接口
type UserHandler struct {
	svc *user.Service
}

// NewUserHandler 创建用户 Handler
func NewUserHandler(svc *user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register POST /user/register
func (h *UserHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		FailBind(c, err)
		return
	}
	data, err := h.svc.Register(&req)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, data)
}

// Login POST /user/login
func (h *UserHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		FailBind(c, err)
		return
	}
	data, err := h.svc.Login(&req)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, data)
}

// RefreshToken POST /user/refresh
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		FailBind(c, err)
		return
	}
	data, err := h.svc.RefreshToken(&req)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, data)
}

// GetUserInfo GET /user/:uuid
// 可匿名访问，登录用户按与目标的关系看到更多字段
func (h *UserHandler) GetUserInfo(c *gin.Context) {
	viewerId := middleware.GetCurrentUserID(c)
	data, err := h.svc.GetUserInfo(viewerId, c.Param("uuid"))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, data)
}

// GetMyInfo GET /user/me
func (h *UserHandler) GetMyInfo(c *gin.Context) {
	actorId := middleware.GetCurrentUserID(c)
	data, err := h.svc.GetUserInfo(actorId, actorId)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, data)
}

// UpdateUserInfo PUT /user/me
func (h *UserHandler) UpdateUserInfo(c *gin.Context) {
	var req request.UpdateUserInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		FailBind(c, err)
		return
	}
	data, err := h.svc.UpdateUserInfo(middleware.GetCurrentUserID(c), &req)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, data)
}

// DeleteUser DELETE /user/me
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.svc.DeleteUser(middleware.GetCurrentUserID(c)); err != nil {
		Fail(c, err)
		return
	}
	Success(c, nil)
}
