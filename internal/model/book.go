// 本文件定义图书目录模型：公共书目与用户藏书
package model

import (
	"bookswap_server/pkg/enum/book/user_book_status_enum"

	"gorm.io/gorm"
)

// Book 公共书目信息
// 对应数据库 book 表，多个用户的藏书可以指向同一条书目
type Book struct {
	gorm.Model

	// Uuid 书目唯一标识，格式：B + 17位时间戳随机字符串
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:书目唯一id"`

	Title    string `gorm:"column:title;type:varchar(300);not null;comment:书名"`
	Subtitle string `gorm:"column:subtitle;type:varchar(300);comment:副标题"`

	// AuthorNames 作者名（冗余为展示字符串，多作者逗号分隔）
	AuthorNames string `gorm:"column:author_names;type:varchar(300);comment:作者"`

	Isbn13    string `gorm:"column:isbn_13;type:char(13);index;comment:ISBN-13"`
	Publisher string `gorm:"column:publisher;type:varchar(200);comment:出版社"`
	Language  string `gorm:"column:language;type:varchar(10);default:en;comment:语言"`
	Pages     int    `gorm:"column:pages;comment:页数"`

	Description string `gorm:"column:description;type:TEXT;comment:简介"`
}

func (Book) TableName() string {
	return "book"
}

// UserBook 用户藏书（某用户持有的某本书的具体一册）
// 交换请求引用的目录条目是 UserBook 而非 Book
type UserBook struct {
	gorm.Model

	// Uuid 藏书唯一标识，格式：C + 17位时间戳随机字符串
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:藏书唯一id"`

	// OwnerId 所有者 uuid；BookId 指向公共书目 uuid
	// 同一用户对同一书目仅一条藏书记录
	OwnerId string `gorm:"column:owner_id;index;type:char(20);not null;uniqueIndex:idx_owner_book;comment:所有者uuid"`
	BookId  string `gorm:"column:book_id;index;type:char(20);not null;uniqueIndex:idx_owner_book;comment:书目uuid"`

	// Status 参见 user_book_status_enum：0.仅收藏，1.可交换，2.已借出，3.已换出
	Status int8 `gorm:"column:status;not null;comment:藏书状态"`

	// Condition 品相描述，如 "like_new"、"good"
	Condition string `gorm:"column:condition;type:varchar(20);default:good;comment:品相"`

	// ExchangeType 参见 exchange_type_enum：0.永久交换，1.临时借阅
	ExchangeType int8 `gorm:"column:exchange_type;comment:可接受的交换类型"`

	Notes string `gorm:"column:notes;type:varchar(500);comment:备注"`
}

func (UserBook) TableName() string {
	return "user_book"
}

// AvailableForExchange 该册图书当前是否可被发起交换
func (b *UserBook) AvailableForExchange() bool {
	return b.Status == user_book_status_enum.AVAILABLE
}
