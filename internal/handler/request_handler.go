// 本文件处理好友申请相关的 API 请求
// 接受/拒绝/撤回申请的编排逻辑在这里完成，与好友列表界面的按钮一一对应
package handler

import (
	"strconv"

	"kama_social_server/internal/dto/request"
	"kama_social_server/internal/model"
	"kama_social_server/internal/service"
	"kama_social_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// RequestHandler 好友申请请求处理器
type RequestHandler struct {
	svc service.RelationshipService
}

// NewRequestHandler 创建好友申请处理器实例
func NewRequestHandler(svc service.RelationshipService) *RequestHandler {
	return &RequestHandler{svc: svc}
}

// SendRequest 当前登录用户向指定用户发送好友申请
// POST /request/sendRequest
// 请求体: request.SendRequestRequest
// 若对方已有反向申请，Service 会直接提升为好友关系并返回空申请
func (h *RequestHandler) SendRequest(c *gin.Context) {
	var req request.SendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	senderID := c.GetInt64("user_id")
	if senderID == 0 {
		HandleError(c, errorx.ErrUnauthorized)
		return
	}

	created, err := h.svc.AddRequest(senderID, req.ReceiverId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, created)
}

// AcceptRequest 接受好友申请：建立好友关系后删除申请
// POST /request/acceptRequest
// 请求体: request.HandleRequestRequest
func (h *RequestHandler) AcceptRequest(c *gin.Context) {
	var req request.HandleRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	pending, err := h.findRequest(req.RequestId)
	if err != nil {
		HandleError(c, err)
		return
	}
	if pending == nil {
		HandleError(c, errorx.New(errorx.CodeNotFound, "申请不存在"))
		return
	}

	friendship, err := h.svc.AddFriendship(pending.SenderID, pending.ReceiverID)
	if err != nil {
		HandleError(c, err)
		return
	}
	if _, err := h.svc.DeleteRequest(pending.ID); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, friendship)
}

// DeclineRequest 拒绝好友申请：直接删除申请记录
// POST /request/declineRequest
// 请求体: request.HandleRequestRequest
func (h *RequestHandler) DeclineRequest(c *gin.Context) {
	var req request.HandleRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	deleted, err := h.svc.DeleteRequest(req.RequestId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, deleted)
}

// CancelRequest 撤回自己发出的好友申请
// POST /request/cancelRequest
// 请求体: request.HandleRequestRequest
func (h *RequestHandler) CancelRequest(c *gin.Context) {
	var req request.HandleRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	senderID := c.GetInt64("user_id")
	pending, err := h.findRequest(req.RequestId)
	if err != nil {
		HandleError(c, err)
		return
	}
	// 只允许撤回自己发出的申请
	if pending != nil && pending.SenderID != senderID {
		HandleError(c, errorx.ErrUnauthorized)
		return
	}

	deleted, err := h.svc.DeleteRequest(req.RequestId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, deleted)
}

// GetPendingReceived 获取发给指定用户的待处理申请
// GET /request/getPendingReceived?userId=xxx
func (h *RequestHandler) GetPendingReceived(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil {
		HandleParamError(c, err)
		return
	}

	requests, err := h.svc.GetRequestsByReceiver(userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, requests)
}

// GetOutgoing 获取指定用户发出的申请
// GET /request/getOutgoing?userId=xxx
func (h *RequestHandler) GetOutgoing(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil {
		HandleParamError(c, err)
		return
	}

	requests, err := h.svc.GetRequestsToUser(userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, requests)
}

// GetRequestList 获取全部好友申请
// GET /request/getRequestList
func (h *RequestHandler) GetRequestList(c *gin.Context) {
	requests, err := h.svc.GetRequests()
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, requests)
}

// findRequest 在全部申请中按 id 查找，未找到返回 (nil, nil)
func (h *RequestHandler) findRequest(id int64) (*model.Request, error) {
	requests, err := h.svc.GetRequests()
	if err != nil {
		return nil, err
	}
	for i := range requests {
		if requests[i].ID == id {
			return &requests[i], nil
		}
	}
	return nil, nil
}
