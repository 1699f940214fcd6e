package request

// HandleRequestRequest 处理好友申请请求（接受/拒绝/撤回共用）
// 使用位置:
//   - handler/request_handler.go: AcceptRequest, DeclineRequest
type HandleRequestRequest struct {
	RequestId int64 `json:"requestId" binding:"required"`
}
