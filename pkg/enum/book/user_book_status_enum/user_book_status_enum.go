package user_book_status_enum

// 用户藏书状态
const (
	OWNED     int8 = iota // 仅收藏
	AVAILABLE             // 可交换
	LENT_OUT              // 已借出
	EXCHANGED             // 已换出
)
