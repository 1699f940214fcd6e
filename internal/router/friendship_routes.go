package router

import (
	"kama_social_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterFriendshipRoutes 注册好友关系相关路由（需要认证）
func (rt *Router) RegisterFriendshipRoutes(r *gin.Engine) {
	friendshipGroup := r.Group("/friendship")
	friendshipGroup.Use(middleware.JWTAuth())
	{
		friendshipGroup.GET("/getFriendshipList", rt.handlers.Friendship.GetFriendshipList)
		friendshipGroup.GET("/getFriendshipsOfUser", rt.handlers.Friendship.GetFriendshipsOfUser)
		friendshipGroup.POST("/deleteFriendship", rt.handlers.Friendship.DeleteFriendship)
	}
}
