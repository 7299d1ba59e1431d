// Package service 聚合各领域服务，作为 Handler 层的依赖注入入口
package service

import (
	"bookswap_server/internal/dao/mysql/repository"
	"bookswap_server/internal/dao/redis"
	"bookswap_server/internal/infrastructure/mq"
	"bookswap_server/internal/service/book"
	"bookswap_server/internal/service/exchange"
	"bookswap_server/internal/service/friendship"
	"bookswap_server/internal/service/message"
	"bookswap_server/internal/service/user"
	"bookswap_server/pkg/util/jwt"
)

// Services 全部领域服务
type Services struct {
	User       *user.Service
	Friendship *friendship.Service
	Book       *book.Service
	Exchange   *exchange.Service
	Message    *message.Service
}

// NewServices 创建全部领域服务
func NewServices(
	repos *repository.Repositories,
	cache redis.CacheService,
	issuer *jwt.Issuer,
	events mq.EventWriter,
	invitationExpiryDays int,
) *Services {
	return &Services{
		User:       user.NewService(repos, cache, issuer),
		Friendship: friendship.NewService(repos, cache, events, invitationExpiryDays),
		Book:       book.NewService(repos),
		Exchange:   exchange.NewService(repos, events),
		Message:    message.NewService(repos, events),
	}
}
