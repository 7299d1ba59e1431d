// Package model 定义数据库实体模型
// 本文件定义用户信息模型，包含用户基本资料和认证信息
package model

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User 用户信息模型
// 对应数据库 user 表
type User struct {
	gorm.Model // 内嵌 GORM 模型，包含 ID、CreatedAt、UpdatedAt、DeletedAt

	// Uuid 用户唯一标识
	// 格式：U + 17位时间戳随机字符串，如 "U240104Ab12Cd34Ef5"
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:用户唯一id"`

	// Email 邮箱地址，登录凭证，全局唯一
	Email string `gorm:"column:email;uniqueIndex;type:varchar(100);not null;comment:邮箱"`

	// Username 用户名（handle），全局唯一，仅用于展示和检索，不用于登录
	Username string `gorm:"column:username;uniqueIndex;type:varchar(30);not null;comment:用户名"`

	// FirstName / LastName 显示用姓名
	FirstName string `gorm:"column:first_name;type:varchar(30);not null;comment:名"`
	LastName  string `gorm:"column:last_name;type:varchar(30);not null;comment:姓"`

	// Bio 个人简介
	Bio string `gorm:"column:bio;type:varchar(500);comment:个人简介"`

	// Location 所在地（自由文本）
	Location string `gorm:"column:location;type:varchar(100);comment:所在地"`

	// PhoneNumber 联系电话（可选）
	PhoneNumber string `gorm:"column:phone_number;type:varchar(20);comment:电话"`

	// Password 密码（已哈希）
	// 存储 bcrypt 哈希后的密码，不存储明文
	Password string `gorm:"column:password;type:varchar(100);not null;comment:密码"`

	// 隐私设置
	IsProfilePublic     bool `gorm:"column:is_profile_public;default:true;comment:资料是否公开"`
	AllowFriendRequests bool `gorm:"column:allow_friend_requests;default:true;comment:是否接受好友申请"`
	ShowLocation        bool `gorm:"column:show_location;default:true;comment:是否展示位置"`

	// 地理坐标，用于附近书友检索，未填写时为 NULL
	Latitude  *float64 `gorm:"column:latitude;type:decimal(9,6);comment:纬度"`
	Longitude *float64 `gorm:"column:longitude;type:decimal(9,6);comment:经度"`

	// RawPassword 明文密码（不存入数据库）
	// 用于接收前端传来的明文密码，在 BeforeSave 中加密
	RawPassword string `gorm:"-" json:"-"`
}

// TableName 指定表名
func (User) TableName() string {
	return "user"
}

// BeforeSave GORM Hook：在创建和更新前自动调用
// 将 RawPassword 明文密码加密后存入 Password 字段，调用方无需手动加密
func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	if u.RawPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.RawPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hash)
		u.RawPassword = "" // 清空明文，防止泄露
	}
	return nil
}

// CheckPassword 校验密码是否正确，用于登录验证
func (u *User) CheckPassword(plaintext string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plaintext))
	return err == nil
}

// DisplayName 展示名：姓名拼接，为空时回退到用户名
func (u *User) DisplayName() string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full == "" {
		return u.Username
	}
	return full
}
