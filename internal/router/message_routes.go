package router

import (
	"kama_social_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterMessageRoutes 注册消息相关路由（需要认证）
func (rt *Router) RegisterMessageRoutes(r *gin.Engine) {
	messageGroup := r.Group("/message")
	messageGroup.Use(middleware.JWTAuth())
	{
		messageGroup.POST("/sendMessage", rt.handlers.Message.SendMessage)
		messageGroup.GET("/getConversation", rt.handlers.Message.GetConversation)
	}
}
