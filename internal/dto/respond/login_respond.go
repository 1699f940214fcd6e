package respond

// LoginRespond 用户登录响应
// 使用位置:
//   - handler/user_handler.go: Login
type LoginRespond struct {
	Id           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Username     string `json:"username"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
