// 本文件处理好友关系相关的 API 请求
package handler

import (
	"strconv"

	"kama_social_server/internal/dto/request"
	"kama_social_server/internal/service"

	"github.com/gin-gonic/gin"
)

// FriendshipHandler 好友关系请求处理器
type FriendshipHandler struct {
	svc service.RelationshipService
}

// NewFriendshipHandler 创建好友关系处理器实例
func NewFriendshipHandler(svc service.RelationshipService) *FriendshipHandler {
	return &FriendshipHandler{svc: svc}
}

// GetFriendshipList 获取全部好友关系
// GET /friendship/getFriendshipList
func (h *FriendshipHandler) GetFriendshipList(c *gin.Context) {
	friendships, err := h.svc.GetFriendships()
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, friendships)
}

// GetFriendshipsOfUser 获取涉及指定用户的好友关系
// GET /friendship/getFriendshipsOfUser?userId=xxx
func (h *FriendshipHandler) GetFriendshipsOfUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil {
		HandleParamError(c, err)
		return
	}

	friendships, err := h.svc.GetFriendshipsOfUser(userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, friendships)
}

// DeleteFriendship 删除好友关系（不存在时静默成功）
// POST /friendship/deleteFriendship
// 请求体: request.DeleteFriendshipRequest
func (h *FriendshipHandler) DeleteFriendship(c *gin.Context) {
	var req request.DeleteFriendshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	deleted, err := h.svc.DeleteFriendship(req.FriendshipId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, deleted)
}
