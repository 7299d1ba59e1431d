package exchange_status_enum

// 图书交换请求状态
const (
	REQUESTED  int8 = iota // 已发起
	ACCEPTED               // 图书所有者已接受
	DECLINED               // 图书所有者已拒绝（终态）
	CANCELLED              // 发起方已取消（终态）
	IN_TRANSIT             // 交付中
	COMPLETED              // 已完成（永久交换的终态）
	RETURNED               // 已归还（临时借阅的终态）
)
