package router

import (
	"kama_social_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRequestRoutes 注册好友申请相关路由（需要认证）
func (rt *Router) RegisterRequestRoutes(r *gin.Engine) {
	requestGroup := r.Group("/request")
	requestGroup.Use(middleware.JWTAuth())
	{
		requestGroup.GET("/getRequestList", rt.handlers.Request.GetRequestList)
		requestGroup.GET("/getPendingReceived", rt.handlers.Request.GetPendingReceived)
		requestGroup.GET("/getOutgoing", rt.handlers.Request.GetOutgoing)
		requestGroup.POST("/sendRequest", rt.handlers.Request.SendRequest)
		requestGroup.POST("/acceptRequest", rt.handlers.Request.AcceptRequest)
		requestGroup.POST("/declineRequest", rt.handlers.Request.DeclineRequest)
		requestGroup.POST("/cancelRequest", rt.handlers.Request.CancelRequest)
	}
}
