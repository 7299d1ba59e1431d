package request

// CreateBookRequest 创建公共书目
type CreateBookRequest struct {
	Title       string `json:"title" binding:"required,max=300"`
	Subtitle    string `json:"subtitle" binding:"max=300"`
	AuthorNames string `json:"author_names" binding:"max=300"`
	Isbn13      string `json:"isbn_13" binding:"omitempty,len=13"`
	Publisher   string `json:"publisher" binding:"max=200"`
	Language    string `json:"language" binding:"max=10"`
	Pages       int    `json:"pages" binding:"gte=0"`
	Description string `json:"description"`
}

// AddUserBookRequest 把书目加入自己的藏书
type AddUserBookRequest struct {
	BookId       string `json:"book_id" binding:"required"`
	Status       int8   `json:"status" binding:"gte=0,lte=3"`
	Condition    string `json:"condition" binding:"max=20"`
	ExchangeType int8   `json:"exchange_type" binding:"gte=0,lte=1"`
	Notes        string `json:"notes" binding:"max=500"`
}

// UpdateUserBookStatusRequest 更新藏书状态
type UpdateUserBookStatusRequest struct {
	UserBookId string `json:"user_book_id" binding:"required"`
	Status     int8   `json:"status" binding:"gte=0,lte=3"`
}

// GetBookListRequest 分页获取书目列表
type GetBookListRequest struct {
	Page     int `json:"page" form:"page" binding:"gte=0"`
	PageSize int `json:"page_size" form:"page_size" binding:"gte=0,lte=100"`
}
