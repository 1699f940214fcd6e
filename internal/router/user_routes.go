package router

import (
	"kama_social_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes 注册用户相关路由
func (rt *Router) RegisterUserRoutes(r *gin.Engine) {
	// 公开接口 (无需认证)
	r.POST("/login", rt.handlers.User.Login)
	r.POST("/register", rt.handlers.User.Register)

	// 需要认证的接口
	userGroup := r.Group("/user")
	userGroup.Use(middleware.JWTAuth())
	{
		userGroup.POST("/logout", rt.handlers.User.Logout)
		userGroup.GET("/getUserList", rt.handlers.User.GetUserList)
		userGroup.GET("/getUserInfo", rt.handlers.User.GetUserInfo)
		userGroup.POST("/updateUser", rt.handlers.User.UpdateUser)
		userGroup.POST("/deleteUser", rt.handlers.User.DeleteUser)
		userGroup.POST("/selectUser", rt.handlers.User.SelectUser)
		userGroup.GET("/getSelectedUser", rt.handlers.User.GetSelectedUser)
	}
}
