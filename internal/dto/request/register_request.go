package request

// RegisterRequest 用户注册请求
// 使用位置:
//   - handler/user_handler.go: Register
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
}
