package repository

import (
	"bookswap_server/internal/model"

	"gorm.io/gorm"
)

type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建书目 Repository
func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

// FindByUuid 按 UUID 查找书目
func (r *bookRepository) FindByUuid(uuid string) (*model.Book, error) {
	var book model.Book
	if err := r.db.First(&book, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询书目 uuid=%s", uuid)
	}
	return &book, nil
}

// GetBookList 分页获取书目列表
func (r *bookRepository) GetBookList(page, pageSize int) ([]model.Book, int64, error) {
	var books []model.Book
	var total int64

	if err := r.db.Model(&model.Book{}).Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "统计书目总数")
	}

	offset := (page - 1) * pageSize
	err := r.db.Order("title").Offset(offset).Limit(pageSize).Find(&books).Error
	if err != nil {
		return nil, 0, wrapDBError(err, "分页查询书目")
	}
	return books, total, nil
}

// Create 创建书目
func (r *bookRepository) Create(book *model.Book) error {
	if err := r.db.Create(book).Error; err != nil {
		return wrapDBError(err, "创建书目")
	}
	return nil
}
