package model

import (
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// Invitation 站外好友邀请
// 邀请人向某个邮箱发出邀请码，对方注册后凭邀请码接受邀请
type Invitation struct {
	gorm.Model
	InviterId string `gorm:"column:inviter_id;index;type:char(20);not null;uniqueIndex:idx_inviter_email;comment:邀请人uuid"`
	Email     string `gorm:"column:email;type:varchar(100);not null;uniqueIndex:idx_inviter_email;comment:被邀请邮箱"`
	Message   string `gorm:"column:message;type:varchar(500);comment:邀请附言"`

	// Code 邀请码，全局唯一
	Code string `gorm:"column:code;uniqueIndex;type:varchar(50);not null;comment:邀请码"`

	IsSent     bool   `gorm:"column:is_sent;default:false;comment:是否已发送"`
	IsAccepted bool   `gorm:"column:is_accepted;default:false;comment:是否已接受"`
	AcceptedBy string `gorm:"column:accepted_by;type:char(20);comment:接受者uuid"`

	SentAt     sql.NullTime `gorm:"column:sent_at;comment:发送时间"`
	AcceptedAt sql.NullTime `gorm:"column:accepted_at;comment:接受时间"`
	ExpiresAt  time.Time    `gorm:"column:expires_at;not null;comment:过期时间"`
}

func (Invitation) TableName() string {
	return "invitation"
}

// IsExpired 邀请是否已过期
func (i *Invitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// IsValid 派生有效性：未过期且未被接受
func (i *Invitation) IsValid(now time.Time) bool {
	return !i.IsExpired(now) && !i.IsAccepted
}
