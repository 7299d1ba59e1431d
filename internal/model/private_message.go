// 本文件定义用户私信模型
package model

import (
	"database/sql"

	"gorm.io/gorm"
)

// PrivateMessage 用户间私信
// 创建后内容不可变，仅已读标记和双方删除标记可更新
type PrivateMessage struct {
	gorm.Model

	// Uuid 消息唯一标识（雪花 ID）
	Uuid int64 `gorm:"column:uuid;uniqueIndex;type:bigint;not null;comment:消息雪花ID"`

	SenderId    string `gorm:"column:sender_id;index;type:char(20);not null;comment:发送者uuid"`
	RecipientId string `gorm:"column:recipient_id;index;type:char(20);not null;comment:接收者uuid"`

	Subject string `gorm:"column:subject;type:varchar(200);comment:主题"`
	Content string `gorm:"column:content;type:TEXT;not null;comment:内容"`

	// RelatedBookId 可选关联的书目 uuid（围绕某本书展开的私信）
	RelatedBookId string `gorm:"column:related_book_id;type:char(20);comment:关联书目uuid"`

	// IsRead 已读标记；ReadAt 仅在首次标记已读时写入一次
	IsRead bool         `gorm:"column:is_read;default:false;comment:是否已读"`
	ReadAt sql.NullTime `gorm:"column:read_at;comment:已读时间"`

	// 双方各自的删除标记，双方都删除后记录才会被清理
	IsDeletedBySender    bool `gorm:"column:is_deleted_by_sender;default:false;comment:发送方已删除"`
	IsDeletedByRecipient bool `gorm:"column:is_deleted_by_recipient;default:false;comment:接收方已删除"`
}

func (PrivateMessage) TableName() string {
	return "private_message"
}
