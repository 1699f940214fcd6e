package request

// SendMessageRequest 发送私信请求
// 发送者取当前认证用户
// 使用位置:
//   - handler/message_handler.go: SendMessage
type SendMessageRequest struct {
	To   int64  `json:"to" binding:"required"`
	Text string `json:"text" binding:"required"`
}
