// Package https_server HTTP/HTTPS 服务启动
package https_server

import (
	"fmt"

	"bookswap_server/internal/config"
	"bookswap_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Start 启动服务，阻塞直至进程退出
// 配置了证书则以 HTTPS 启动并注入 TLS 重定向中间件，否则走普通 HTTP
func Start(r *gin.Engine, cfg *config.MainConfig) error {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	if cfg.CertFile != "" && cfg.KeyFile != "" {
		r.Use(middleware.TlsHandler(cfg.Host, fmt.Sprintf("%d", cfg.Port)))
		zap.L().Info("server starting with TLS", zap.String("addr", addr))
		return r.RunTLS(addr, cfg.CertFile, cfg.KeyFile)
	}

	zap.L().Info("server starting", zap.String("addr", addr))
	return r.Run(addr)
}
