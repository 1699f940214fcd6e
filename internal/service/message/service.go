// Package message 提供私信消息的业务逻辑
// 消息与好友关系相互独立：发送前不检查两人是否为好友
package message

import (
	"sort"
	"time"

	"kama_social_server/internal/dao/mysql/repository"
	"kama_social_server/internal/event"
	"kama_social_server/internal/model"
)

// Service 消息业务逻辑实现
type Service struct {
	repos *repository.Repositories
	bus   *event.Bus
}

// NewService 创建消息 Service
func NewService(repos *repository.Repositories, bus *event.Bus) *Service {
	return &Service{repos: repos, bus: bus}
}

// AddMessage 构造消息（发送时间取当前时刻）、校验并持久化，
// 成功后发布 MessageEvent(ADD)
// 消息 id 由数据库自增生成，不走 Service 层计数器
func (s *Service) AddMessage(from, to int64, text string) (*model.Message, error) {
	msg := &model.Message{
		From: from,
		To:   to,
		Text: text,
		Date: time.Now(),
	}
	saved, err := s.repos.Message.Save(msg)
	if err != nil {
		return nil, err
	}

	s.bus.Message.Publish(event.MessageEvent{Type: event.Add, Message: *saved})
	return saved, nil
}

// GetMessagesBetweenUsers 返回两个用户之间（双向）的全部消息，按发送时间升序
func (s *Service) GetMessagesBetweenUsers(a, b int64) ([]model.Message, error) {
	all, err := s.repos.Message.FindAll()
	if err != nil {
		return nil, err
	}

	conversation := make([]model.Message, 0)
	for _, m := range all {
		if (m.From == a && m.To == b) || (m.From == b && m.To == a) {
			conversation = append(conversation, m)
		}
	}
	sort.Slice(conversation, func(i, j int) bool {
		return conversation[i].Date.Before(conversation[j].Date)
	})
	return conversation, nil
}
