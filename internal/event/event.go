// Package event 提供变更通知总线
// Service 层在每次成功写入后向对应分类的注册表发布事件，
// 订阅方（界面、WebSocket 网关等）收到事件后重新查询数据层刷新视图
package event

import "kama_social_server/internal/model"

// Type 事件类型标签
type Type int8

const (
	Add    Type = iota // 新增
	Update             // 更新
	Delete             // 删除
	Reload             // 要求订阅方整体重新加载
)

// String 返回事件类型的可读名称
func (t Type) String() string {
	switch t {
	case Add:
		return "ADD"
	case Update:
		return "UPDATE"
	case Delete:
		return "DELETE"
	case Reload:
		return "RELOAD"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON 序列化为可读名称，供 WebSocket 推送使用
func (t Type) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UserEvent 用户变更事件
// Update 事件携带变更前的旧实体，其余事件 Old 为 nil
type UserEvent struct {
	Type Type        `json:"type"`
	User model.User  `json:"user"`
	Old  *model.User `json:"old,omitempty"`
}

// FriendshipEvent 好友关系变更事件
type FriendshipEvent struct {
	Type       Type              `json:"type"`
	Friendship model.Friendship  `json:"friendship"`
	Old        *model.Friendship `json:"old,omitempty"`
}

// RequestEvent 好友申请变更事件
type RequestEvent struct {
	Type    Type           `json:"type"`
	Request model.Request  `json:"request"`
	Old     *model.Request `json:"old,omitempty"`
}

// MessageEvent 消息变更事件
type MessageEvent struct {
	Type    Type          `json:"type"`
	Message model.Message `json:"message"`
}
