// Package router 路由注册
package router

import (
	"bookswap_server/internal/dao/mysql/repository"
	"bookswap_server/internal/handler"
	"bookswap_server/internal/infrastructure/logger"
	"bookswap_server/internal/infrastructure/middleware"
	"bookswap_server/pkg/util/jwt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter 创建 gin 引擎并注册全部路由
func NewRouter(handlers *handler.Handlers, issuer *jwt.Issuer, repos *repository.Repositories) *gin.Engine {
	r := gin.New()
	r.Use(logger.GinLogger(), logger.GinRecovery(true))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	auth := middleware.JWTAuth(issuer, repos.User)
	optionalAuth := middleware.OptionalJWTAuth(issuer, repos.User)

	registerUserRoutes(r, handlers.User, auth, optionalAuth)
	registerFriendshipRoutes(r, handlers.Friendship, auth)
	registerBookRoutes(r, handlers.Book, auth, optionalAuth)
	registerExchangeRoutes(r, handlers.Exchange, auth)
	registerMessageRoutes(r, handlers.Message, auth)

	return r
}

func registerUserRoutes(r *gin.Engine, h *handler.UserHandler, auth, optionalAuth gin.HandlerFunc) {
	userGroup := r.Group("/user")
	{
		userGroup.POST("/register", h.Register)
		userGroup.POST("/login", h.Login)
		userGroup.POST("/refresh", h.RefreshToken)

		userGroup.GET("/me", auth, h.GetMyInfo)
		userGroup.PUT("/me", auth, h.UpdateUserInfo)
		userGroup.DELETE("/me", auth, h.DeleteUser)

		// 资料页匿名可看（按隐私设置裁剪），登录后可见好友专属字段
		userGroup.GET("/:uuid", optionalAuth, h.GetUserInfo)
	}
}

func registerFriendshipRoutes(r *gin.Engine, h *handler.FriendshipHandler, auth gin.HandlerFunc) {
	friendshipGroup := r.Group("/friendship", auth)
	{
		friendshipGroup.POST("/request", h.RequestFriendship)
		friendshipGroup.POST("/respond", h.RespondToRequest)
		friendshipGroup.POST("/remove", h.RemoveFriend)
		friendshipGroup.GET("/list", h.ListFriends)
		friendshipGroup.GET("/pending", h.ListPendingRequests)
		friendshipGroup.GET("/friends_of_friends", h.FriendsOfFriends)
		friendshipGroup.POST("/block", h.BlockUser)
		friendshipGroup.POST("/unblock", h.UnblockUser)
	}

	invitationGroup := r.Group("/invitation", auth)
	{
		invitationGroup.POST("/create", h.CreateInvitation)
		invitationGroup.POST("/accept", h.AcceptInvitation)
		invitationGroup.GET("/list", h.ListInvitations)
	}
}

func registerBookRoutes(r *gin.Engine, h *handler.BookHandler, auth, optionalAuth gin.HandlerFunc) {
	bookGroup := r.Group("/book")
	{
		bookGroup.GET("/list", h.GetBookList)
		bookGroup.POST("/create", auth, h.CreateBook)

		bookGroup.GET("/shelf", auth, h.ListMyBooks)
		bookGroup.POST("/shelf/add", auth, h.AddUserBook)
		bookGroup.POST("/shelf/status", auth, h.UpdateUserBookStatus)
		bookGroup.GET("/shelf/:uuid", optionalAuth, h.ListUserBooks)
	}
}

func registerExchangeRoutes(r *gin.Engine, h *handler.ExchangeHandler, auth gin.HandlerFunc) {
	exchangeGroup := r.Group("/exchange", auth)
	{
		exchangeGroup.POST("/create", h.CreateExchange)
		exchangeGroup.POST("/transition", h.Transition)
		exchangeGroup.GET("/list", h.ListExchanges)
		exchangeGroup.GET("/:id", h.GetExchange)
	}
}

func registerMessageRoutes(r *gin.Engine, h *handler.MessageHandler, auth gin.HandlerFunc) {
	messageGroup := r.Group("/message", auth)
	{
		messageGroup.POST("/send", h.SendMessage)
		messageGroup.GET("/inbox", h.GetInbox)
		messageGroup.GET("/conversation/:uuid", h.GetConversation)
		messageGroup.POST("/read", h.MarkRead)
		messageGroup.POST("/delete", h.DeleteMessage)
	}
}
