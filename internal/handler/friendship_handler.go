package handler

import (
	"bookswap_server/internal/dto/request"
	"bookswap_server/internal/infrastructure/middleware"
	"bookswap_server/internal/service/friendship"

	"github.com/gin-gonic/gin"
)

// FriendshipHandler 好友关系与邀请接口
type FriendshipHandler struct {
	svc *friendship.Service
}

// NewFriendshipHandler 创建好友关系 Handler
func NewFriendshipHandler(svc *friendship.Service) *FriendshipHandler {
	return &FriendshipHandler{svc: svc}
}

// RequestFriendship POST /friendship/request
func (h *FriendshipHandler) RequestFriendship(c *gin.Context) {
	var req request.RequestFriendshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		FailBind(c, err)
		return
	}
	if err := h.svc.RequestFriendship(middleware.GetCurrentUserID(c), &req); err != nil {
		Fail(c, err)
		return
	}
	Success(c, nil)
}

// RespondToRequest POST /friendship/respond
func (h *FriendshipHandler) RespondToRequest(c *gin.Context) {
	var req request.RespondFriendshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		FailBind(c, err)
		return
	}
	if err := h.svc.RespondToRequest(middleware.GetCurrentUserID(c), &req); err != nil {
		Fail(c, err)
		return
	}
	Success(c, nil)
}

// RemoveFriend POST /friendship/remove
func (h *FriendshipHandler) RemoveFriend(c *gin.Context) {
	var req request.RemoveFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		FailBind(c, err)
		return
	}
	if err := h.svc.RemoveFriend(middleware.GetCurrentUserID(c), &req); err != nil {
		Fail(c, err)
		return
	}
	Success(c, nil)
}

// ListFriends GET /friendship/list
func (h *FriendshipHandler) ListFriends(c *gin.Context) {
	data, err := h.svc.ListFriends(middleware.GetCurrentUserID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, data)
}

// ListPendingRequests GET /friendship/pending
func (h *FriendshipHandler) ListPendingRequests(c *gin.Context) {
	data, err := h.svc.ListPendingRequests(middleware.GetCurrentUserID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, data)
}

// FriendsOfFriends GET /friendship/friends_of_friends
func (h *FriendshipHandler) FriendsOfFriends(c *gin.Context) {
	data, err := h.svc.FriendsOfFriends(middleware.GetCurrentUserID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, data)
}

// BlockUser POST /friendship/block
func (h *FriendshipHandler) BlockUser(c *gin.Context) {
	var req request.BlockUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		FailBind(c, err)
		return
	}
	if err := h.svc.BlockUser(middleware.GetCurrentUserID(c), &req); err != nil {
		Fail(c, err)
		return
	}
	Success(c, nil)
}

// UnblockUser POST /friendship/unblock
func (h *FriendshipHandler) UnblockUser(c *gin.Context) {
	var req request.UnblockUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		FailBind(c, err)
		return
	}
	if err := h.svc.UnblockUser(middleware.GetCurrentUserID(c), &req); err != nil {
		Fail(c, err)
		return
	}
	Success(c, nil)
}

// CreateInvitation POST /invitation/create
func (h *FriendshipHandler) CreateInvitation(c *gin.Context) {
	var req request.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		FailBind(c, err)
		return
	}
	data, err := h.svc.CreateInvitation(middleware.GetCurrentUserID(c), &req)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, data)
}

// AcceptInvitation POST /invitation/accept
func (h *FriendshipHandler) AcceptInvitation(c *gin.Context) {
	var req request.AcceptInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		FailBind(c, err)
		return
	}
	if err := h.svc.AcceptInvitation(middleware.GetCurrentUserID(c), &req); err != nil {
		Fail(c, err)
		return
	}
	Success(c, nil)
}

// ListInvitations GET /invitation/list
func (h *FriendshipHandler) ListInvitations(c *gin.Context) {
	data, err := h.svc.ListInvitations(middleware.GetCurrentUserID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, data)
}
