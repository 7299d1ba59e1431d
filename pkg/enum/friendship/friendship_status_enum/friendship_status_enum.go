package friendship_status_enum

// 好友关系状态
const (
	PENDING  int8 = iota // 申请中
	ACCEPTED             // 已接受
	DECLINED             // 已拒绝（终态）
)
