package handler

import (
	"bookswap_server/internal/service"
)

// Handlers 全部接口 Handler
type Handlers struct {
	User       *UserHandler
	Friendship *FriendshipHandler
	Book       *BookHandler
	Exchange   *ExchangeHandler
	Message    *MessageHandler
}

// NewHandlers 创建全部 Handler
func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		User:       NewUserHandler(services.User),
		Friendship: NewFriendshipHandler(services.Friendship),
		Book:       NewBookHandler(services.Book),
		Exchange:   NewExchangeHandler(services.Exchange),
		Message:    NewMessageHandler(services.Message),
	}
}
