package main

import (
	"time"

	"bookswap_server/internal/config"
	"bookswap_server/internal/dao/mysql"
	"bookswap_server/internal/dao/redis"
	"bookswap_server/internal/handler"
	"bookswap_server/internal/https_server"
	"bookswap_server/internal/infrastructure/logger"
	"bookswap_server/internal/infrastructure/mq"
	"bookswap_server/internal/router"
	"bookswap_server/internal/service"
	"bookswap_server/pkg/util/jwt"
	"bookswap_server/pkg/util/snowflake"

	"go.uber.org/zap"
)

func main() {
	conf := config.GetConfig()

	if err := logger.Init(&conf.LogConfig, ginMode(conf)); err != nil {
		panic(err)
	}
	defer zap.L().Sync()

	snowflake.Init(conf.SnowflakeConfig.MachineID)

	mysql.Init()
	redis.Init()

	events := mq.NewEventWriter(conf.KafkaConfig)
	defer events.Close()

	issuer := jwt.NewIssuer(jwtConfig(conf))

	services := service.NewServices(
		mysql.Repos,
		redis.GetCacheService(),
		issuer,
		events,
		conf.InvitationConfig.ExpiryDays,
	)
	handlers := handler.NewHandlers(services)

	if err := handler.InitTrans("zh"); err != nil {
		zap.L().Fatal("init validator translator failed", zap.Error(err))
	}

	r := router.NewRouter(handlers, issuer, mysql.Repos)
	if err := https_server.Start(r, &conf.MainConfig); err != nil {
		zap.L().Fatal("server exited", zap.Error(err))
	}
}

// jwtConfig 把配置文件中的分钟/小时换算为 Duration
// 缺省值在 config 加载时填充，这里不再兜底，显式配置的 0 原样生效
func jwtConfig(conf *config.Config) jwt.Config {
	return jwt.Config{
		Secret:             conf.JWTConfig.Secret,
		Algorithm:          conf.JWTConfig.Algorithm,
		AccessTokenExpiry:  time.Duration(conf.JWTConfig.AccessTokenExpiry) * time.Minute,
		RefreshTokenExpiry: time.Duration(conf.JWTConfig.RefreshTokenExpiry) * time.Hour,
	}
}

func ginMode(conf *config.Config) string {
	if conf.LogConfig.Level == "debug" {
		return "dev"
	}
	return "release"
}
