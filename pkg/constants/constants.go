package constants

const (
	CHANNEL_SIZE               = 100 // 事件通道大小
	ACCESS_TOKEN_EXPIRY_MIN    = 60  // Access Token 默认有效期（分钟）
	REFRESH_TOKEN_EXPIRY_HOURS = 168 // Refresh Token 默认有效期（小时），168小时 = 7天
	INVITATION_EXPIRY_DAYS     = 14  // 好友邀请默认有效期（天）
	DEFAULT_PAGE_SIZE          = 20  // 列表接口默认分页大小
)
