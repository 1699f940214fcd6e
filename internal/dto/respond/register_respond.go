package respond

// RegisterRespond 用户注册响应
// 使用位置:
//   - handler/user_handler.go: Register
type RegisterRespond struct {
	Id        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
}
