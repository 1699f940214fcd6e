// Package handler 提供 HTTP 请求处理器
// 本文件处理用户注册、登录和资料相关的 API 请求
package handler

import (
	"strconv"

	"kama_social_server/internal/dto/request"
	"kama_social_server/internal/dto/respond"
	"kama_social_server/internal/model"
	"kama_social_server/internal/service"
	"kama_social_server/pkg/errorx"
	"kama_social_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户请求处理器
// 通过构造函数注入 RelationshipService，遵循依赖倒置原则
type UserHandler struct {
	svc service.RelationshipService
}

// NewUserHandler 创建用户处理器实例
func NewUserHandler(svc service.RelationshipService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register 用户注册
// POST /register
// 请求体: request.RegisterRequest
// 用户名唯一性在这里检查：Service 层的 AddUser 本身不做此检查
func (h *UserHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	// 注册前先检查用户名是否被占用
	existing, err := h.svc.FindUserByUsername(req.Username)
	if err != nil {
		HandleError(c, err)
		return
	}
	if existing != nil {
		HandleError(c, errorx.ErrUserExist)
		return
	}

	user := &model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Password:  req.Password,
	}
	saved, err := h.svc.AddUser(user)
	if err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, respond.RegisterRespond{
		Id:        saved.ID,
		FirstName: saved.FirstName,
		LastName:  saved.LastName,
		Username:  saved.Username,
	})
}

// Login 用户登录（密码登录）
// POST /login
// 请求体: request.LoginRequest
// 响应: respond.LoginRespond (用户信息 + JWT Token)
func (h *UserHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	user, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		HandleError(c, err)
		return
	}

	accessToken, err := jwt.GenerateAccessToken(user.ID)
	if err != nil {
		HandleError(c, err)
		return
	}
	refreshToken, _, err := jwt.GenerateRefreshToken(user.ID)
	if err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, respond.LoginRespond{
		Id:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Username:     user.Username,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Logout 用户登出，清除会话中的当前用户
// POST /user/logout
func (h *UserHandler) Logout(c *gin.Context) {
	h.svc.Logout()
	HandleSuccess(c, nil)
}

// GetUserList 获取全部用户列表
// GET /user/getUserList
func (h *UserHandler) GetUserList(c *gin.Context) {
	users, err := h.svc.GetUsers()
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, users)
}

// GetUserInfo 按 id 获取单个用户
// GET /user/getUserInfo?id=xxx
func (h *UserHandler) GetUserInfo(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		HandleParamError(c, err)
		return
	}

	user, err := h.svc.GetUserByID(id)
	if err != nil {
		HandleError(c, err)
		return
	}
	if user == nil {
		HandleError(c, errorx.ErrUserNotExist)
		return
	}
	HandleSuccess(c, user)
}

// UpdateUser 更新用户资料
// POST /user/updateUser
// 请求体: request.UpdateUserRequest
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req request.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	user := &model.User{
		ID:        req.Id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Password:  req.Password,
	}
	updated, err := h.svc.UpdateUser(user)
	if err != nil {
		HandleError(c, err)
		return
	}
	if updated == nil {
		HandleError(c, errorx.ErrUserNotExist)
		return
	}
	HandleSuccess(c, updated)
}

// DeleteUser 删除用户（级联清理好友关系和申请）
// POST /user/deleteUser?id=xxx
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		HandleParamError(c, err)
		return
	}

	deleted, err := h.svc.DeleteUser(id)
	if err != nil {
		HandleError(c, err)
		return
	}
	if deleted == nil {
		HandleError(c, errorx.ErrUserNotExist)
		return
	}
	HandleSuccess(c, deleted)
}

// SelectUser 记录即将被查看资料的用户（组件间传递槽）
// POST /user/selectUser
// 请求体: request.SelectUserRequest
func (h *UserHandler) SelectUser(c *gin.Context) {
	var req request.SelectUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	h.svc.SetSelectedUserID(req.UserId)
	HandleSuccess(c, nil)
}

// GetSelectedUser 获取当前被选中查看的用户资料
// GET /user/getSelectedUser
func (h *UserHandler) GetSelectedUser(c *gin.Context) {
	id := h.svc.SelectedUserID()
	if id == 0 {
		HandleError(c, errorx.ErrUserNotExist)
		return
	}

	user, err := h.svc.GetUserByID(id)
	if err != nil {
		HandleError(c, err)
		return
	}
	if user == nil {
		HandleError(c, errorx.ErrUserNotExist)
		return
	}
	HandleSuccess(c, user)
}
