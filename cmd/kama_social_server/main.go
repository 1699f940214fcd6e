package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"kama_social_server/internal/config"
	dao "kama_social_server/internal/dao/mysql"
	"kama_social_server/internal/dao/mysql/repository"
	"kama_social_server/internal/event"
	"kama_social_server/internal/gateway/websocket"
	"kama_social_server/internal/handler"
	"kama_social_server/internal/https_server"
	"kama_social_server/internal/infrastructure/logger"
	"kama_social_server/internal/service"
	"kama_social_server/pkg/util/jwt"

	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	conf, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, "dev"); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("日志初始化成功")

	// 3. 初始化数据库
	db, err := dao.Open(&conf.MysqlConfig)
	if err != nil {
		zap.L().Fatal("数据库初始化失败", zap.Error(err))
	}
	repos := repository.NewRepositories(db)
	zap.L().Info("数据库初始化成功")

	// 4. 初始化 JWT
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)
	zap.L().Info("JWT 初始化成功")

	// 5. 初始化事件总线和 Service 层 (依赖注入)
	bus := event.NewBus()
	services := service.NewServices(repos, bus)
	zap.L().Info("Service 层初始化成功")

	// 6. 初始化事件推送网关并订阅事件总线
	gateway := websocket.NewGateway()
	gateway.Attach(bus)
	zap.L().Info("事件推送网关初始化成功")

	// 7. 初始化参数校验翻译器
	if err := handler.InitTrans("zh"); err != nil {
		zap.L().Fatal("翻译器初始化失败", zap.Error(err))
	}

	// 8. 初始化 HTTP 服务器
	handlers := handler.NewHandlers(services)
	engine := https_server.Init(&conf.MainConfig, handlers, gateway)
	zap.L().Info("HTTP 服务器初始化成功")

	// 9. 启动服务
	go func() {
		addr := fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port)
		if err := engine.Run(addr); err != nil {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()

	// 设置信号监听
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// 等待信号
	<-quit

	zap.L().Info("关闭服务器...")
	gateway.Close()
	zap.L().Info("服务器已关闭")
}
