package request

// SelectUserRequest 选中用户（查看资料前的传递槽）请求
// 使用位置:
//   - handler/user_handler.go: SelectUser
type SelectUserRequest struct {
	UserId int64 `json:"userId" binding:"required"`
}
