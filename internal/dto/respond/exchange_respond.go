package respond

// ExchangeRespond 交换请求条目
type ExchangeRespond struct {
	Uuid             int64  `json:"uuid,string"`
	RequesterId      string `json:"requester_id"`
	OwnerId          string `json:"owner_id"`
	RequestedBookId  string `json:"requested_book_id"`
	OfferedBookId    string `json:"offered_book_id,omitempty"`
	ExchangeType     int8   `json:"exchange_type"`
	Status           int8   `json:"status"`
	Message          string `json:"message,omitempty"`
	LoanDurationDays int    `json:"loan_duration_days,omitempty"`
	AcceptedAt       string `json:"accepted_at,omitempty"`
	CompletedAt      string `json:"completed_at,omitempty"`
	CreatedAt        string `json:"created_at"`
}

// MessageRespond 私信条目
type MessageRespond struct {
	Uuid          int64  `json:"uuid,string"`
	SenderId      string `json:"sender_id"`
	RecipientId   string `json:"recipient_id"`
	Subject       string `json:"subject,omitempty"`
	Content       string `json:"content"`
	RelatedBookId string `json:"related_book_id,omitempty"`
	IsRead        bool   `json:"is_read"`
	ReadAt        string `json:"read_at,omitempty"`
	SentAt        string `json:"sent_at"`
}
