package repository

import (
	"bookswap_server/internal/model"

	"gorm.io/gorm"
)

type blockedRepository struct {
	db *gorm.DB
}

// NewBlockedRepository 创建拉黑关系 Repository
func NewBlockedRepository(db *gorm.DB) BlockedRepository {
	return &blockedRepository{db: db}
}

// FindByPairOrdered 查找有序拉黑记录
func (r *blockedRepository) FindByPairOrdered(blockerId, blockedId string) (*model.BlockedUser, error) {
	var block model.BlockedUser
	err := r.db.Where("blocker_id = ? AND blocked_id = ?", blockerId, blockedId).First(&block).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询拉黑记录 blocker=%s blocked=%s", blockerId, blockedId)
	}
	return &block, nil
}

// ExistsBetween 两用户间任一方向是否存在拉黑
func (r *blockedRepository) ExistsBetween(userA, userB string) (bool, error) {
	var count int64
	err := r.db.Model(&model.BlockedUser{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)",
			userA, userB, userB, userA).
		Count(&count).Error
	if err != nil {
		return false, wrapDBError(err, "查询拉黑关系")
	}
	return count > 0, nil
}

// Create 创建拉黑记录
func (r *blockedRepository) Create(block *model.BlockedUser) error {
	if err := r.db.Create(block).Error; err != nil {
		return wrapDBError(err, "创建拉黑记录")
	}
	return nil
}

// Delete 解除拉黑
func (r *blockedRepository) Delete(blockerId, blockedId string) error {
	// 物理删除：唯一索引 (blocker_id, blocked_id) 下软删除会阻止再次拉黑
	err := r.db.Unscoped().Where("blocker_id = ? AND blocked_id = ?", blockerId, blockedId).
		Delete(&model.BlockedUser{}).Error
	if err != nil {
		return wrapDBErrorf(err, "解除拉黑 blocker=%s blocked=%s", blockerId, blockedId)
	}
	return nil
}

// SoftDeleteByUsers 批量软删除涉及指定用户的拉黑记录
func (r *blockedRepository) SoftDeleteByUsers(uuids []string) error {
	if len(uuids) == 0 {
		return nil
	}
	err := r.db.Where("blocker_id IN ? OR blocked_id IN ?", uuids, uuids).
		Delete(&model.BlockedUser{}).Error
	if err != nil {
		return wrapDBError(err, "批量删除拉黑记录")
	}
	return nil
}
