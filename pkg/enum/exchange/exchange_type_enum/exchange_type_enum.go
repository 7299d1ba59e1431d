package exchange_type_enum

// 交换类型
const (
	PERMANENT int8 = iota // 永久交换
	TEMPORARY             // 临时借阅
)
