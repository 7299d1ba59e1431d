// Package repository 定义数据访问层接口和聚合结构
// 采用 Repository 模式将数据访问逻辑与业务逻辑分离
// 所有 Repository 接口在此文件定义，具体实现在各自的文件中
package repository

import (
	"bookswap_server/internal/model"

	"gorm.io/gorm"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	// FindByUuid 根据 UUID 查找用户
	FindByUuid(uuid string) (*model.User, error)
	// FindByEmail 根据邮箱查找用户（登录入口）
	FindByEmail(email string) (*model.User, error)
	// FindByUsername 根据用户名查找用户
	FindByUsername(username string) (*model.User, error)
	// FindByUuids 批量根据 UUID 查找用户
	FindByUuids(uuids []string) ([]model.User, error)
	// Create 创建新用户
	Create(user *model.User) error
	// Update 更新用户信息
	Update(user *model.User) error
	// SoftDeleteByUuid 软删除用户
	SoftDeleteByUuid(uuid string) error
}

// FriendshipRepository 好友关系边数据访问接口
type FriendshipRepository interface {
	// FindByPair 查找无序用户对之间的边（无论方向），不存在返回 CodeNotFound
	FindByPair(userA, userB string) (*model.Friendship, error)
	// FindByID 根据主键查找边
	FindByID(id uint) (*model.Friendship, error)
	// FindAcceptedByUser 查找用户的所有已接受边（用户可能在任意一侧）
	FindAcceptedByUser(uuid string) ([]model.Friendship, error)
	// FindPendingByTarget 查找以该用户为被申请方的待处理边
	FindPendingByTarget(uuid string) ([]model.Friendship, error)
	// Create 创建边
	Create(edge *model.Friendship) error
	// Update 更新边（状态流转）
	Update(edge *model.Friendship) error
	// Delete 物理删除单条边（解除好友关系）
	Delete(edge *model.Friendship) error
	// SoftDeleteByUsers 批量软删除涉及指定用户的所有边
	SoftDeleteByUsers(uuids []string) error
}

// BlockedRepository 拉黑关系数据访问接口
type BlockedRepository interface {
	// FindByPairOrdered 查找有序拉黑记录（blocker → blocked）
	FindByPairOrdered(blockerId, blockedId string) (*model.BlockedUser, error)
	// ExistsBetween 两用户间任一方向是否存在拉黑
	ExistsBetween(userA, userB string) (bool, error)
	// Create 创建拉黑记录
	Create(block *model.BlockedUser) error
	// Delete 解除拉黑
	Delete(blockerId, blockedId string) error
	// SoftDeleteByUsers 批量软删除涉及指定用户的拉黑记录
	SoftDeleteByUsers(uuids []string) error
}

// InvitationRepository 站外邀请数据访问接口
type InvitationRepository interface {
	// FindByCode 根据邀请码查找
	FindByCode(code string) (*model.Invitation, error)
	// FindByInviterAndEmail 根据邀请人和目标邮箱查找
	FindByInviterAndEmail(inviterId, email string) (*model.Invitation, error)
	// FindByInviter 查找某用户发出的所有邀请
	FindByInviter(inviterId string) ([]model.Invitation, error)
	// Create 创建邀请
	Create(invitation *model.Invitation) error
	// Update 更新邀请（发送/接受标记）
	Update(invitation *model.Invitation) error
	// SoftDeleteByUsers 批量软删除指定用户发出的邀请
	SoftDeleteByUsers(uuids []string) error
}

// BookRepository 公共书目数据访问接口
type BookRepository interface {
	// FindByUuid 根据 UUID 查找书目
	FindByUuid(uuid string) (*model.Book, error)
	// GetBookList 分页获取书目列表
	GetBookList(page, pageSize int) ([]model.Book, int64, error)
	// Create 创建书目
	Create(book *model.Book) error
}

// UserBookRepository 用户藏书数据访问接口
type UserBookRepository interface {
	// FindByUuid 根据 UUID 查找藏书
	FindByUuid(uuid string) (*model.UserBook, error)
	// FindByOwner 查找用户的全部藏书
	FindByOwner(ownerId string) ([]model.UserBook, error)
	// FindByOwnerAndBook 查找用户对某书目的藏书记录
	FindByOwnerAndBook(ownerId, bookId string) (*model.UserBook, error)
	// Create 创建藏书
	Create(userBook *model.UserBook) error
	// UpdateStatus 更新藏书状态
	UpdateStatus(uuid string, status int8) error
	// SoftDeleteByUsers 批量软删除指定用户的藏书
	SoftDeleteByUsers(uuids []string) error
}

// ExchangeRepository 交换请求数据访问接口
type ExchangeRepository interface {
	// FindByUuid 根据雪花 ID 查找交换请求
	FindByUuid(uuid int64) (*model.Exchange, error)
	// FindByUser 查找用户参与的全部交换（任一侧）
	FindByUser(uuid string) ([]model.Exchange, error)
	// Create 创建交换请求
	Create(exchange *model.Exchange) error
	// Update 更新交换请求（状态流转，单行原子写）
	Update(exchange *model.Exchange) error
	// SoftDeleteByUsers 批量软删除涉及指定用户的交换
	SoftDeleteByUsers(uuids []string) error
}

// MessageRepository 私信数据访问接口
type MessageRepository interface {
	// FindByUuid 根据雪花 ID 查找私信
	FindByUuid(uuid int64) (*model.PrivateMessage, error)
	// FindConversation 查找两用户之间的全部私信（按时间正序）
	FindConversation(userA, userB string) ([]model.PrivateMessage, error)
	// FindInbox 查找用户收件箱（排除接收方已删除的）
	FindInbox(recipientId string) ([]model.PrivateMessage, error)
	// Create 创建私信
	Create(message *model.PrivateMessage) error
	// Update 更新私信（已读/删除标记）
	Update(message *model.PrivateMessage) error
	// SoftDeleteByUsers 批量软删除涉及指定用户的私信
	SoftDeleteByUsers(uuids []string) error
}

// ==================== Repository 聚合 ====================

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	db         *gorm.DB
	User       UserRepository
	Friendship FriendshipRepository
	Blocked    BlockedRepository
	Invitation InvitationRepository
	Book       BookRepository
	UserBook   UserBookRepository
	Exchange   ExchangeRepository
	Message    MessageRepository
}

// NewRepositories 创建所有 Repository 实例
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:         db,
		User:       NewUserRepository(db),
		Friendship: NewFriendshipRepository(db),
		Blocked:    NewBlockedRepository(db),
		Invitation: NewInvitationRepository(db),
		Book:       NewBookRepository(db),
		UserBook:   NewUserBookRepository(db),
		Exchange:   NewExchangeRepository(db),
		Message:    NewMessageRepository(db),
	}
}

// Transaction 在数据库事务中执行函数
// 事务内的所有操作要么全部成功，要么全部回滚
// fn: 事务执行函数，接收事务内的 Repositories 实例
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
