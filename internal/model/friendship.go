// 本文件定义好友关系边模型
// 一条记录表示一对用户之间的（无序）好友关系及其状态
package model

import (
	"database/sql"

	"bookswap_server/pkg/errorx"

	"gorm.io/gorm"
)

// Friendship 好友关系边
// User1Id/User2Id 按申请时的方向存储，但关系本身是无序的：
// 同一对用户无论方向如何只允许存在一条边，由 PairKey 的唯一索引保证
type Friendship struct {
	gorm.Model

	User1Id string `gorm:"column:user1_id;index;type:char(20);not null;comment:申请方uuid"`
	User2Id string `gorm:"column:user2_id;index;type:char(20);not null;comment:被申请方uuid"`

	// PairKey 归一化的无序对键 "min(uuid):max(uuid)"
	// 在 BeforeCreate 中生成，唯一索引使"同一对用户仅一条边"由存储层原子保证
	PairKey string `gorm:"column:pair_key;uniqueIndex;type:char(41);not null;comment:无序对唯一键"`

	// Status 参见 friendship_status_enum：0.申请中，1.已接受，2.已拒绝
	Status int8 `gorm:"column:status;not null;comment:关系状态"`

	// InitiatorId 发起方 uuid（始终等于 User1Id，冗余存储便于审计）
	InitiatorId string `gorm:"column:initiator_id;type:char(20);not null;comment:发起方uuid"`

	// Message 申请附言
	Message string `gorm:"column:message;type:varchar(500);comment:申请附言"`

	// AcceptedAt 首次接受时间，仅在状态首次变为已接受时写入一次，此后不再变更
	AcceptedAt sql.NullTime `gorm:"column:accepted_at;comment:接受时间"`
}

// TableName 指定表名
func (Friendship) TableName() string {
	return "friendship"
}

// BeforeCreate GORM Hook：写入前校验并生成 PairKey
// 自环（user1 == user2）在此处拒绝，保证任何写入路径都无法产生自环边
func (f *Friendship) BeforeCreate(tx *gorm.DB) error {
	if f.User1Id == f.User2Id {
		return errorx.New(errorx.CodeSelfReference, "不能添加自己为好友")
	}
	f.PairKey = PairKey(f.User1Id, f.User2Id)
	return nil
}

// PairKey 计算无序用户对的归一化键
func PairKey(a, b string) string {
	if a < b {
		return a + ":" + b
	}
	return b + ":" + a
}

// OtherUser 以查询者视角返回边的另一端
// 这是纯函数式的方向解析，不在边上存储任何派生方向状态
// 查询者不在边上时返回空字符串
func (f *Friendship) OtherUser(uuid string) string {
	switch uuid {
	case f.User1Id:
		return f.User2Id
	case f.User2Id:
		return f.User1Id
	default:
		return ""
	}
}
