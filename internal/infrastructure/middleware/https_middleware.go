package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

// TlsHandler HTTPS 重定向中间件
// 将 HTTP 请求重定向到指定的 HTTPS 地址
func TlsHandler(host string, port string) gin.HandlerFunc {
	return func(c *gin.Context) {
		secureMiddleware := secure.New(secure.Options{
			SSLRedirect: true,
			SSLHost:     host + ":" + port,
		})
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			zap.L().Error("tls redirect failed", zap.Error(err))
			c.Abort()
			return
		}
		c.Next()
	}
}
