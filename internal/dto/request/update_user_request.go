package request

// UpdateUserRequest 更新用户资料请求
// 使用位置:
//   - handler/user_handler.go: UpdateUser
type UpdateUserRequest struct {
	Id        int64  `json:"id" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
}
