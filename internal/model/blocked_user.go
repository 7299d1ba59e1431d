package model

import (
	"bookswap_server/pkg/errorx"

	"gorm.io/gorm"
)

// BlockedUser 拉黑关系（有序对）
// A 拉黑 B 和 B 拉黑 A 是两条独立记录，解除时只删除自己方向的那条
type BlockedUser struct {
	gorm.Model
	BlockerId string `gorm:"column:blocker_id;index;type:char(20);not null;uniqueIndex:idx_block_pair;comment:拉黑方uuid"`
	BlockedId string `gorm:"column:blocked_id;index;type:char(20);not null;uniqueIndex:idx_block_pair;comment:被拉黑方uuid"`
	Reason    string `gorm:"column:reason;type:varchar(50);comment:拉黑原因"`
	Notes     string `gorm:"column:notes;type:varchar(500);comment:备注"`
}

func (BlockedUser) TableName() string {
	return "blocked_user"
}

// BeforeCreate 拒绝自我拉黑
func (b *BlockedUser) BeforeCreate(tx *gorm.DB) error {
	if b.BlockerId == b.BlockedId {
		return errorx.New(errorx.CodeSelfReference, "不能拉黑自己")
	}
	return nil
}
