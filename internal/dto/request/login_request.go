package request

// LoginRequest 用户密码登录请求
// 使用位置:
//   - handler/user_handler.go: Login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
