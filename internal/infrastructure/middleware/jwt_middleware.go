package middleware

import (
	"net/http"
	"strings"

	"bookswap_server/internal/dao/mysql/repository"
	"bookswap_server/pkg/errorx"
	"bookswap_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextUserIDKey 已认证用户的 uuid 在 gin.Context 中的 key
const ContextUserIDKey = "user_id"

// JWTAuth 请求头认证中间件
// 校验 Authorization: Bearer <access_token>，并确认 token 中的用户仍然存在，
// 认证失败直接 401 终止请求链
func JWTAuth(issuer *jwt.Issuer, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := resolveUser(c, issuer, users)
		if err != nil {
			zap.L().Info("jwt auth rejected", zap.String("path", c.Request.URL.Path), zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "认证失败，请重新登录",
			})
			c.Abort()
			return
		}
		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// OptionalJWTAuth 可选认证中间件
// token 缺失、无效或用户不存在时一律按匿名处理，继续请求，
// 适用于公开可读但登录后返回更多信息的接口
func OptionalJWTAuth(issuer *jwt.Issuer, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := resolveUser(c, issuer, users)
		if err == nil {
			c.Set(ContextUserIDKey, userID)
		}
		c.Next()
	}
}

// resolveUser 从请求头解析 access token 并解析出仍然存活的用户 uuid
func resolveUser(c *gin.Context, issuer *jwt.Issuer, users repository.UserRepository) (string, error) {
	authHeader := c.Request.Header.Get("Authorization")
	if authHeader == "" {
		return "", errorx.New(errorx.CodeUnauthorized, "missing authorization header")
	}
	// 按空格分割，格式必须为 Bearer <token>
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errorx.New(errorx.CodeUnauthorized, "malformed authorization header")
	}

	claims, err := issuer.ParseToken(parts[1])
	if err != nil {
		return "", errorx.Wrap(err, errorx.CodeUnauthorized, "invalid token")
	}
	// refresh token 只能用于换发接口，不能当 access token 用
	if claims.Subject != jwt.SubjectAccess {
		return "", errorx.New(errorx.CodeUnauthorized, "token subject mismatch")
	}

	// token 有效但用户已被删除，同样视为未认证
	if _, err := users.FindByUuid(claims.UserID); err != nil {
		return "", errorx.Wrap(err, errorx.CodeUnauthorized, "token user not found")
	}
	return claims.UserID, nil
}

// GetCurrentUserID 从上下文取已认证用户 uuid，未认证返回空串
func GetCurrentUserID(c *gin.Context) string {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}
