package request

// RequestFriendshipRequest 发起好友申请
type RequestFriendshipRequest struct {
	TargetId string `json:"target_id" binding:"required"`
	Message  string `json:"message" binding:"max=500"`
}

// RespondFriendshipRequest 响应好友申请
// 待处理申请以发起方 uuid 标识，accept 为 false 时拒绝
type RespondFriendshipRequest struct {
	RequesterId string `json:"requester_id" binding:"required"`
	Accept      *bool  `json:"accept" binding:"required"`
}

// RemoveFriendRequest 解除好友关系
type RemoveFriendRequest struct {
	TargetId string `json:"target_id" binding:"required"`
}

// BlockUserRequest 拉黑用户
type BlockUserRequest struct {
	TargetId string `json:"target_id" binding:"required"`
	Reason   string `json:"reason" binding:"max=50"`
	Notes    string `json:"notes" binding:"max=500"`
}

// UnblockUserRequest 解除拉黑
type UnblockUserRequest struct {
	TargetId string `json:"target_id" binding:"required"`
}

// CreateInvitationRequest 发出站外邀请
type CreateInvitationRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"max=500"`
}

// AcceptInvitationRequest 凭邀请码接受邀请
type AcceptInvitationRequest struct {
	Code string `json:"code" binding:"required"`
}
