package repository

import (
	"bookswap_server/internal/model"

	"gorm.io/gorm"
)

type userBookRepository struct {
	db *gorm.DB
}

// NewUserBookRepository 创建藏书 Repository
func NewUserBookRepository(db *gorm.DB) UserBookRepository {
	return &userBookRepository{db: db}
}

// FindByUuid 按 UUID 查找藏书
func (r *userBookRepository) FindByUuid(uuid string) (*model.UserBook, error) {
	var userBook model.UserBook
	if err := r.db.First(&userBook, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询藏书 uuid=%s", uuid)
	}
	return &userBook, nil
}

// FindByOwner 查找用户的全部藏书
func (r *userBookRepository) FindByOwner(ownerId string) ([]model.UserBook, error) {
	var userBooks []model.UserBook
	err := r.db.Where("owner_id = ?", ownerId).Order("created_at DESC").Find(&userBooks).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询藏书列表 owner=%s", ownerId)
	}
	return userBooks, nil
}

// FindByOwnerAndBook 查找用户对某书目的藏书记录
func (r *userBookRepository) FindByOwnerAndBook(ownerId, bookId string) (*model.UserBook, error) {
	var userBook model.UserBook
	err := r.db.Where("owner_id = ? AND book_id = ?", ownerId, bookId).First(&userBook).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询藏书 owner=%s book=%s", ownerId, bookId)
	}
	return &userBook, nil
}

// Create 创建藏书
func (r *userBookRepository) Create(userBook *model.UserBook) error {
	if err := r.db.Create(userBook).Error; err != nil {
		return wrapDBError(err, "创建藏书")
	}
	return nil
}

// UpdateStatus 更新藏书状态
func (r *userBookRepository) UpdateStatus(uuid string, status int8) error {
	err := r.db.Model(&model.UserBook{}).Where("uuid = ?", uuid).Update("status", status).Error
	if err != nil {
		return wrapDBErrorf(err, "更新藏书状态 uuid=%s", uuid)
	}
	return nil
}

// SoftDeleteByUsers 批量软删除指定用户的藏书
func (r *userBookRepository) SoftDeleteByUsers(uuids []string) error {
	if len(uuids) == 0 {
		return nil
	}
	if err := r.db.Where("owner_id IN ?", uuids).Delete(&model.UserBook{}).Error; err != nil {
		return wrapDBError(err, "批量删除藏书")
	}
	return nil
}
