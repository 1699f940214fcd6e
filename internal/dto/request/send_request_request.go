package request

// SendRequestRequest 发送好友申请请求
// 发起者取当前认证用户
// 使用位置:
//   - handler/request_handler.go: SendRequest
type SendRequestRequest struct {
	ReceiverId int64 `json:"receiverId" binding:"required"`
}
