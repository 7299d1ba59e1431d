package repository

import (
	"bookswap_server/internal/model"

	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository 创建私信 Repository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// FindByUuid 按雪花 ID 查找私信
func (r *messageRepository) FindByUuid(uuid int64) (*model.PrivateMessage, error) {
	var message model.PrivateMessage
	if err := r.db.First(&message, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询私信 uuid=%d", uuid)
	}
	return &message, nil
}

// FindConversation 查找两用户之间的全部私信（按时间正序）
func (r *messageRepository) FindConversation(userA, userB string) ([]model.PrivateMessage, error) {
	var messages []model.PrivateMessage
	err := r.db.Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
		userA, userB, userB, userA).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, wrapDBError(err, "查询会话消息")
	}
	return messages, nil
}

// FindInbox 查找用户收件箱
func (r *messageRepository) FindInbox(recipientId string) ([]model.PrivateMessage, error) {
	var messages []model.PrivateMessage
	err := r.db.Where("recipient_id = ? AND is_deleted_by_recipient = ?", recipientId, false).
		Order("created_at DESC").
		Find(&messages).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询收件箱 recipient=%s", recipientId)
	}
	return messages, nil
}

// Create 创建私信
func (r *messageRepository) Create(message *model.PrivateMessage) error {
	if err := r.db.Create(message).Error; err != nil {
		return wrapDBError(err, "创建私信")
	}
	return nil
}

// Update 更新私信
func (r *messageRepository) Update(message *model.PrivateMessage) error {
	if err := r.db.Save(message).Error; err != nil {
		return wrapDBError(err, "更新私信")
	}
	return nil
}

// SoftDeleteByUsers 批量软删除涉及指定用户的私信
func (r *messageRepository) SoftDeleteByUsers(uuids []string) error {
	if len(uuids) == 0 {
		return nil
	}
	err := r.db.Where("sender_id IN ? OR recipient_id IN ?", uuids, uuids).
		Delete(&model.PrivateMessage{}).Error
	if err != nil {
		return wrapDBError(err, "批量删除私信")
	}
	return nil
}
