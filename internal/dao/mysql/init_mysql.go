// Package mysql 提供数据访问层的初始化和全局数据库实例管理
// 负责建立 MySQL 连接、自动迁移表结构、初始化 Repository 层
package mysql

import (
	"fmt"

	"bookswap_server/internal/config"
	"bookswap_server/internal/dao/mysql/repository"
	"bookswap_server/internal/model"

	"go.uber.org/zap"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// GormDB 全局 GORM 数据库实例
var GormDB *gorm.DB

// Repos 全局 Repository 实例集合
// 聚合所有 Repository，供 Service 层通过依赖注入使用
var Repos *repository.Repositories

// Init 初始化数据库连接和 Repository 层
// 执行步骤：
//  1. 从配置读取 MySQL 连接信息并构建 DSN
//  2. 使用 GORM 建立数据库连接
//  3. 执行 AutoMigrate 自动迁移表结构
//  4. 初始化全局 Repository 实例
func Init() {
	conf := config.GetConfig()

	// 格式：user:password@tcp(host:port)/database?params
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.MysqlConfig.User,
		conf.MysqlConfig.Password,
		conf.MysqlConfig.Host,
		conf.MysqlConfig.Port,
		conf.MysqlConfig.DatabaseName,
	)

	var err error
	GormDB, err = gorm.Open(mysqldriver.Open(dsn), &gorm.Config{})
	if err != nil {
		zap.L().Fatal(err.Error())
	}

	if err = AutoMigrate(GormDB); err != nil {
		zap.L().Fatal(err.Error())
	}

	Repos = repository.NewRepositories(GormDB)
}

// AutoMigrate 自动迁移所有表结构
// 如果表不存在则创建，如果字段变更则更新结构；不会删除已有字段或数据
// 测试中也会用于在内存 SQLite 上建表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},           // 用户表
		&model.Friendship{},     // 好友关系边表
		&model.BlockedUser{},    // 拉黑关系表
		&model.Invitation{},     // 站外邀请表
		&model.Book{},           // 公共书目表
		&model.UserBook{},       // 用户藏书表
		&model.Exchange{},       // 交换请求表
		&model.PrivateMessage{}, // 私信表
	)
}
