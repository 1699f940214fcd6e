package event

// Bus 通知总线，按事件分类聚合四个独立的观察者注册表
// 各注册表互不影响：订阅用户事件不会收到好友关系事件
type Bus struct {
	User       Registry[UserEvent]
	Friendship Registry[FriendshipEvent]
	Request    Registry[RequestEvent]
	Message    Registry[MessageEvent]
}

// NewBus 创建空的通知总线
func NewBus() *Bus {
	return &Bus{}
}
