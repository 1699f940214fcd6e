// 本文件处理私信消息相关的 API 请求
package handler

import (
	"strconv"

	"kama_social_server/internal/dto/request"
	"kama_social_server/internal/service"
	"kama_social_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// MessageHandler 消息请求处理器
type MessageHandler struct {
	svc service.MessageService
}

// NewMessageHandler 创建消息处理器实例
func NewMessageHandler(svc service.MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

// SendMessage 当前登录用户向指定用户发送一条消息
// POST /message/sendMessage
// 请求体: request.SendMessageRequest
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req request.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	from := c.GetInt64("user_id")
	if from == 0 {
		HandleError(c, errorx.ErrUnauthorized)
		return
	}

	message, err := h.svc.AddMessage(from, req.To, req.Text)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, message)
}

// GetConversation 获取当前登录用户与指定用户之间的全部消息，按时间升序
// GET /message/getConversation?withUserId=xxx
func (h *MessageHandler) GetConversation(c *gin.Context) {
	withUserID, err := strconv.ParseInt(c.Query("withUserId"), 10, 64)
	if err != nil {
		HandleParamError(c, err)
		return
	}

	userID := c.GetInt64("user_id")
	if userID == 0 {
		HandleError(c, errorx.ErrUnauthorized)
		return
	}

	messages, err := h.svc.GetMessagesBetweenUsers(userID, withUserID)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, messages)
}
