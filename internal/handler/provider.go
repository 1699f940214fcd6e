package handler

import (
	"kama_social_server/internal/service"
)

// Handlers 聚合全部 HTTP 处理器，统一注入路由层
type Handlers struct {
	User       *UserHandler
	Friendship *FriendshipHandler
	Request    *RequestHandler
	Message    *MessageHandler
}

// NewHandlers 基于业务层创建全部处理器
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		User:       NewUserHandler(svc.Relationship),
		Friendship: NewFriendshipHandler(svc.Relationship),
		Request:    NewRequestHandler(svc.Relationship),
		Message:    NewMessageHandler(svc.Message),
	}
}
