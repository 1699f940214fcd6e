// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"kama_social_server/internal/dao/mysql/repository"
	"kama_social_server/internal/event"
	"kama_social_server/internal/service/message"
	"kama_social_server/internal/service/relationship"
)

// Services 聚合所有 Service 实例
// 作为依赖注入的入口，Handler 层通过此结构访问各个 Service
type Services struct {
	Relationship RelationshipService // 关系 Service
	Message      MessageService      // 消息 Service
}

// NewServices 创建并注入所有 Service 实例
// 依赖注入流程：
//  1. 接收 Repository 聚合实例和通知总线
//  2. 创建各个 Service 实例，注入依赖
//  3. 返回 Services 聚合
func NewServices(repos *repository.Repositories, bus *event.Bus) *Services {
	return &Services{
		Relationship: relationship.NewService(repos, bus),
		Message:      message.NewService(repos, bus),
	}
}
