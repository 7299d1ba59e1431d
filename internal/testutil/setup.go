// Package testutil 测试基础设施：内存数据库与常用构造函数
package testutil

import (
	"testing"

	"bookswap_server/internal/dao/mysql"
	"bookswap_server/internal/dao/mysql/repository"
	"bookswap_server/internal/model"
	"bookswap_server/pkg/util/random"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB 创建内存 SQLite 数据库并迁移全部表结构
// 每个测试各自独立的数据库实例，互不污染
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, mysql.AutoMigrate(db))
	return db
}

// SetupRepos 创建基于内存数据库的 Repositories
func SetupRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	return repository.NewRepositories(SetupTestDB(t))
}

// CreateTestUser 插入一个测试用户并返回
func CreateTestUser(t *testing.T, repos *repository.Repositories, username string) *model.User {
	t.Helper()
	u := &model.User{
		Uuid:                "U" + random.GetNowAndLenRandomString(13),
		Email:               username + "@test.local",
		Username:            username,
		RawPassword:         "password123",
		IsProfilePublic:     true,
		AllowFriendRequests: true,
		ShowLocation:        true,
	}
	require.NoError(t, repos.User.Create(u))
	return u
}

// CreateTestBook 插入一条公共书目
func CreateTestBook(t *testing.T, repos *repository.Repositories, title string) *model.Book {
	t.Helper()
	b := &model.Book{
		Uuid:  "B" + random.GetNowAndLenRandomString(13),
		Title: title,
	}
	require.NoError(t, repos.Book.Create(b))
	return b
}

// CreateTestUserBook 插入一条藏书
func CreateTestUserBook(t *testing.T, repos *repository.Repositories, ownerId, bookId string, status int8) *model.UserBook {
	t.Helper()
	ub := &model.UserBook{
		Uuid:      "C" + random.GetNowAndLenRandomString(13),
		OwnerId:   ownerId,
		BookId:    bookId,
		Status:    status,
		Condition: "good",
	}
	require.NoError(t, repos.UserBook.Create(ub))
	return ub
}
