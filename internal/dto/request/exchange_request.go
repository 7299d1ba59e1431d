package request

// CreateExchangeRequest 发起交换请求
type CreateExchangeRequest struct {
	RequestedBookId  string `json:"requested_book_id" binding:"required"`
	OfferedBookId    string `json:"offered_book_id"`
	ExchangeType     int8   `json:"exchange_type" binding:"gte=0,lte=1"`
	Message          string `json:"message" binding:"max=1000"`
	LoanDurationDays int    `json:"loan_duration_days" binding:"gte=0,lte=365"`
}

// TransitionExchangeRequest 推进交换状态
// 雪花 ID 以字符串传输，避免前端 JSON 精度丢失
type TransitionExchangeRequest struct {
	ExchangeId int64  `json:"exchange_id,string" binding:"required"`
	Action     string `json:"action" binding:"required,oneof=accept decline cancel ship complete return"`
}

// SendMessageRequest 发送私信
type SendMessageRequest struct {
	RecipientId   string `json:"recipient_id" binding:"required"`
	Subject       string `json:"subject" binding:"max=200"`
	Content       string `json:"content" binding:"required,max=5000"`
	RelatedBookId string `json:"related_book_id"`
}

// MarkMessageReadRequest 标记私信已读
type MarkMessageReadRequest struct {
	MessageId int64 `json:"message_id,string" binding:"required"`
}

// DeleteMessageRequest 删除私信（仅从自己视角移除）
type DeleteMessageRequest struct {
	MessageId int64 `json:"message_id,string" binding:"required"`
}
