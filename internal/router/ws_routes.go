// 本文件定义 WebSocket 事件推送相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterWebSocketRoutes 注册 WebSocket 相关路由
// 客户端通过此路由建立连接后会收到全部实体变更事件
// 请求示例: ws://host:port/wss
func (rt *Router) RegisterWebSocketRoutes(r *gin.Engine) {
	r.GET("/wss", rt.gateway.HandleConnection)
}
