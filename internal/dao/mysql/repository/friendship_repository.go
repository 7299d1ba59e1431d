package repository

import (
	"bookswap_server/internal/model"
	"bookswap_server/pkg/enum/friendship/friendship_status_enum"

	"gorm.io/gorm"
)

type friendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository 创建好友关系 Repository
func NewFriendshipRepository(db *gorm.DB) FriendshipRepository {
	return &friendshipRepository{db: db}
}

// FindByPair 按无序用户对查找边
// 通过归一化 PairKey 查询，自动覆盖两个存储方向
func (r *friendshipRepository) FindByPair(userA, userB string) (*model.Friendship, error) {
	var edge model.Friendship
	key := model.PairKey(userA, userB)
	if err := r.db.Where("pair_key = ?", key).First(&edge).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询好友边 pair=%s", key)
	}
	return &edge, nil
}

// FindByID 按主键查找边
func (r *friendshipRepository) FindByID(id uint) (*model.Friendship, error) {
	var edge model.Friendship
	if err := r.db.First(&edge, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询好友边 id=%d", id)
	}
	return &edge, nil
}

// FindAcceptedByUser 查找用户的全部已接受边，用户可能在任意一侧
func (r *friendshipRepository) FindAcceptedByUser(uuid string) ([]model.Friendship, error) {
	var edges []model.Friendship
	err := r.db.
		Where("status = ? AND (user1_id = ? OR user2_id = ?)", friendship_status_enum.ACCEPTED, uuid, uuid).
		Find(&edges).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询好友列表 uuid=%s", uuid)
	}
	return edges, nil
}

// FindPendingByTarget 查找以该用户为被申请方的待处理边
func (r *friendshipRepository) FindPendingByTarget(uuid string) ([]model.Friendship, error) {
	var edges []model.Friendship
	err := r.db.
		Where("status = ? AND user2_id = ?", friendship_status_enum.PENDING, uuid).
		Order("created_at DESC").
		Find(&edges).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询好友申请列表 uuid=%s", uuid)
	}
	return edges, nil
}

// Create 创建边
// PairKey 唯一索引冲突（并发重复申请）由上层按 CodeFriendshipExist 处理
func (r *friendshipRepository) Create(edge *model.Friendship) error {
	if err := r.db.Create(edge).Error; err != nil {
		return wrapDBError(err, "创建好友边")
	}
	return nil
}

// Update 更新边
func (r *friendshipRepository) Update(edge *model.Friendship) error {
	if err := r.db.Save(edge).Error; err != nil {
		return wrapDBError(err, "更新好友边")
	}
	return nil
}

// Delete 物理删除单条边（解除好友关系）
// pair_key 唯一索引下软删除会阻止这对用户日后重新建立关系
func (r *friendshipRepository) Delete(edge *model.Friendship) error {
	if err := r.db.Unscoped().Delete(edge).Error; err != nil {
		return wrapDBError(err, "删除好友边")
	}
	return nil
}

// SoftDeleteByUsers 批量软删除涉及指定用户的所有边
func (r *friendshipRepository) SoftDeleteByUsers(uuids []string) error {
	if len(uuids) == 0 {
		return nil
	}
	err := r.db.
		Where("user1_id IN ? OR user2_id IN ?", uuids, uuids).
		Delete(&model.Friendship{}).Error
	if err != nil {
		return wrapDBError(err, "批量删除好友边")
	}
	return nil
}
