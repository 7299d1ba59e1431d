package request

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Username        string `json:"username" binding:"required,min=3,max=30"`
	Password        string `json:"password" binding:"required,min=8,max=64"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	FirstName       string `json:"first_name" binding:"max=30"`
	LastName        string `json:"last_name" binding:"max=30"`
	InvitationCode  string `json:"invitation_code"`
}

// LoginRequest 登录请求，凭证为邮箱
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest 换发 access token 请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateUserInfoRequest 更新个人资料请求
// 指针字段为 nil 表示不修改该项
type UpdateUserInfoRequest struct {
	FirstName           *string  `json:"first_name" binding:"omitempty,max=30"`
	LastName            *string  `json:"last_name" binding:"omitempty,max=30"`
	Bio                 *string  `json:"bio" binding:"omitempty,max=500"`
	Location            *string  `json:"location" binding:"omitempty,max=100"`
	PhoneNumber         *string  `json:"phone_number" binding:"omitempty,max=20"`
	IsProfilePublic     *bool    `json:"is_profile_public"`
	AllowFriendRequests *bool    `json:"allow_friend_requests"`
	ShowLocation        *bool    `json:"show_location"`
	Latitude            *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude           *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
}
