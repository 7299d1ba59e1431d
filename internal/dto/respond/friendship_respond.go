package respond

// FriendRespond 好友列表条目
type FriendRespond struct {
	Uuid        string `json:"uuid"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Location    string `json:"location,omitempty"`
	FriendsAt   string `json:"friends_at"` // 成为好友的时间
}

// PendingRequestRespond 待处理好友申请条目
type PendingRequestRespond struct {
	RequesterId string `json:"requester_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Message     string `json:"message,omitempty"`
	RequestedAt string `json:"requested_at"`
}

// FriendOfFriendRespond 二度好友条目
type FriendOfFriendRespond struct {
	Uuid        string `json:"uuid"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// InvitationRespond 站外邀请条目
type InvitationRespond struct {
	Email      string `json:"email"`
	Code       string `json:"code"`
	IsSent     bool   `json:"is_sent"`
	IsAccepted bool   `json:"is_accepted"`
	ExpiresAt  string `json:"expires_at"`
}
