package event

import "sync"

// Observer 事件观察者接口
// 实现方一般使用指针接收者，注销时按相等比较移除
type Observer[E any] interface {
	// Notify 同步处理一条事件，返回前不会向后续观察者投递
	Notify(event E)
}

// Registry 某一事件分类的观察者注册表
// Publish 按订阅顺序同步逐个投递，没有错误隔离：
// 观察者内部 panic 会中断向后续观察者的投递，由更外层恢复
type Registry[E any] struct {
	mu        sync.Mutex
	observers []Observer[E]
}

// Subscribe 注册观察者，追加到列表末尾
// 同一观察者重复注册会收到重复通知
func (r *Registry[E]) Subscribe(o Observer[E]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, o)
}

// Unsubscribe 注销观察者，按相等比较移除第一个匹配项
func (r *Registry[E]) Unsubscribe(o Observer[E]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, obs := range r.observers {
		if obs == o {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			return
		}
	}
}

// Publish 按订阅顺序同步投递事件给全部观察者
func (r *Registry[E]) Publish(event E) {
	r.mu.Lock()
	// 复制快照后释放锁，观察者回调中允许继续订阅/注销
	snapshot := make([]Observer[E], len(r.observers))
	copy(snapshot, r.observers)
	r.mu.Unlock()

	for _, obs := range snapshot {
		obs.Notify(event)
	}
}

// Len 返回当前注册的观察者数量
func (r *Registry[E]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.observers)
}
