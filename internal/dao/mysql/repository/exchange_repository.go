package repository

import (
	"bookswap_server/internal/model"

	"gorm.io/gorm"
)

type exchangeRepository struct {
	db *gorm.DB
}

// NewExchangeRepository 创建交换请求 Repository
func NewExchangeRepository(db *gorm.DB) ExchangeRepository {
	return &exchangeRepository{db: db}
}

// FindByUuid 按雪花 ID 查找交换请求
func (r *exchangeRepository) FindByUuid(uuid int64) (*model.Exchange, error) {
	var exchange model.Exchange
	if err := r.db.First(&exchange, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询交换请求 uuid=%d", uuid)
	}
	return &exchange, nil
}

// FindByUser 查找用户参与的全部交换
func (r *exchangeRepository) FindByUser(uuid string) ([]model.Exchange, error) {
	var exchanges []model.Exchange
	err := r.db.Where("requester_id = ? OR owner_id = ?", uuid, uuid).
		Order("created_at DESC").
		Find(&exchanges).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询交换列表 uuid=%s", uuid)
	}
	return exchanges, nil
}

// Create 创建交换请求
func (r *exchangeRepository) Create(exchange *model.Exchange) error {
	if err := r.db.Create(exchange).Error; err != nil {
		return wrapDBError(err, "创建交换请求")
	}
	return nil
}

// Update 更新交换请求
func (r *exchangeRepository) Update(exchange *model.Exchange) error {
	if err := r.db.Save(exchange).Error; err != nil {
		return wrapDBError(err, "更新交换请求")
	}
	return nil
}

// SoftDeleteByUsers 批量软删除涉及指定用户的交换
func (r *exchangeRepository) SoftDeleteByUsers(uuids []string) error {
	if len(uuids) == 0 {
		return nil
	}
	err := r.db.Where("requester_id IN ? OR owner_id IN ?", uuids, uuids).
		Delete(&model.Exchange{}).Error
	if err != nil {
		return wrapDBError(err, "批量删除交换请求")
	}
	return nil
}
