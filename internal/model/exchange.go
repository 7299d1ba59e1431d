// 本文件定义图书交换请求模型
// 交换是账本式记录：创建后仅状态和时间戳字段追加更新
package model

import (
	"database/sql"

	"bookswap_server/pkg/errorx"

	"gorm.io/gorm"
)

// Exchange 两个用户之间围绕一册藏书的交换请求
type Exchange struct {
	gorm.Model

	// Uuid 交换请求唯一标识（雪花 ID）
	Uuid int64 `gorm:"column:uuid;uniqueIndex;type:bigint;not null;comment:交换雪花ID"`

	// RequesterId 发起方；OwnerId 被请求图书的所有者
	RequesterId string `gorm:"column:requester_id;index;type:char(20);not null;comment:发起方uuid"`
	OwnerId     string `gorm:"column:owner_id;index;type:char(20);not null;comment:所有者uuid"`

	// RequestedBookId 被请求的藏书 uuid；OfferedBookId 发起方提供交换的藏书 uuid（可为空）
	RequestedBookId string `gorm:"column:requested_book_id;index;type:char(20);not null;comment:被请求藏书uuid"`
	OfferedBookId   string `gorm:"column:offered_book_id;type:char(20);comment:交换藏书uuid"`

	// ExchangeType 参见 exchange_type_enum：0.永久交换，1.临时借阅
	ExchangeType int8 `gorm:"column:exchange_type;not null;comment:交换类型"`

	// Status 参见 exchange_status_enum
	Status int8 `gorm:"column:status;index;not null;comment:状态"`

	// Message 请求附言
	Message string `gorm:"column:message;type:varchar(1000);comment:附言"`

	// LoanDurationDays 临时借阅时长（天），永久交换为 0
	LoanDurationDays int `gorm:"column:loan_duration_days;comment:借阅时长"`

	// AcceptedAt / CompletedAt 各自仅在状态首次到达对应阶段时写入一次
	AcceptedAt  sql.NullTime `gorm:"column:accepted_at;comment:接受时间"`
	CompletedAt sql.NullTime `gorm:"column:completed_at;comment:完成时间"`
}

func (Exchange) TableName() string {
	return "exchange"
}

// BeforeCreate 拒绝向自己发起交换
func (e *Exchange) BeforeCreate(tx *gorm.DB) error {
	if e.RequesterId == e.OwnerId {
		return errorx.New(errorx.CodeSelfReference, "不能与自己交换图书")
	}
	return nil
}
