// Package router 提供 HTTP 路由注册
// 本文件是路由注册的入口，聚合所有子模块的路由
package router

import (
	"kama_social_server/internal/gateway/websocket"
	"kama_social_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// Router 持有全部处理器和推送网关，按模块注册路由
type Router struct {
	handlers *handler.Handlers
	gateway  *websocket.Gateway
}

// NewRouter 创建路由器实例
func NewRouter(handlers *handler.Handlers, gateway *websocket.Gateway) *Router {
	return &Router{
		handlers: handlers,
		gateway:  gateway,
	}
}

// RegisterRoutes 注册所有路由
// 在 https_server.Init() 中调用
// 按模块分别注册各个路由组
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	rt.RegisterUserRoutes(r)       // 用户路由
	rt.RegisterFriendshipRoutes(r) // 好友关系路由
	rt.RegisterRequestRoutes(r)    // 好友申请路由
	rt.RegisterMessageRoutes(r)    // 消息路由
	rt.RegisterWebSocketRoutes(r)  // WebSocket 路由
}
