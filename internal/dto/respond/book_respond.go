package respond

// BookRespond 公共书目条目
type BookRespond struct {
	Uuid        string `json:"uuid"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	AuthorNames string `json:"author_names,omitempty"`
	Isbn13      string `json:"isbn_13,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
	Language    string `json:"language,omitempty"`
	Pages       int    `json:"pages,omitempty"`
	Description string `json:"description,omitempty"`
}

// BookListRespond 分页书目列表
type BookListRespond struct {
	Total int64         `json:"total"`
	Books []BookRespond `json:"books"`
}

// UserBookRespond 用户藏书条目
type UserBookRespond struct {
	Uuid         string      `json:"uuid"`
	OwnerId      string      `json:"owner_id"`
	Book         BookRespond `json:"book"`
	Status       int8        `json:"status"`
	Condition    string      `json:"condition"`
	ExchangeType int8        `json:"exchange_type"`
	Notes        string      `json:"notes,omitempty"`
}
