package respond

// RegisterRespond 注册成功返回
type RegisterRespond struct {
	Uuid         string `json:"uuid"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginRespond 登录成功返回
type LoginRespond struct {
	Uuid         string `json:"uuid"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	DisplayName  string `json:"display_name"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshTokenRespond 换发凭证返回
type RefreshTokenRespond struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserInfoRespond 用户资料
// 对非本人请求按隐私设置裁剪字段
type UserInfoRespond struct {
	Uuid            string   `json:"uuid"`
	Username        string   `json:"username"`
	DisplayName     string   `json:"display_name"`
	Email           string   `json:"email,omitempty"`
	FirstName       string   `json:"first_name,omitempty"`
	LastName        string   `json:"last_name,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	Location        string   `json:"location,omitempty"`
	PhoneNumber     string   `json:"phone_number,omitempty"`
	IsProfilePublic bool     `json:"is_profile_public"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	CreatedAt       string   `json:"created_at"`
}
