package event

import (
	"testing"

	"kama_social_server/internal/model"
)

// recorder 记录收到的全部事件，用于断言投递顺序
type recorder struct {
	name   string
	events []UserEvent
	log    *[]string
}

func (r *recorder) Notify(ev UserEvent) {
	r.events = append(r.events, ev)
	if r.log != nil {
		*r.log = append(*r.log, r.name)
	}
}

func TestPublishDeliversInSubscribeOrder(t *testing.T) {
	var reg Registry[UserEvent]
	var log []string
	first := &recorder{name: "first", log: &log}
	second := &recorder{name: "second", log: &log}
	reg.Subscribe(first)
	reg.Subscribe(second)

	reg.Publish(UserEvent{Type: Add, User: model.User{ID: 1, Username: "apylee"}})

	if len(log) != 2 || log[0] != "first" || log[1] != "second" {
		t.Fatalf("投递顺序错误: %v", log)
	}
	if len(first.events) != 1 || first.events[0].Type != Add {
		t.Errorf("first 收到的事件不正确: %+v", first.events)
	}
	if first.events[0].User.ID != 1 {
		t.Errorf("事件负载错误: %+v", first.events[0])
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	var reg Registry[UserEvent]
	first := &recorder{name: "first"}
	second := &recorder{name: "second"}
	reg.Subscribe(first)
	reg.Subscribe(second)

	reg.Unsubscribe(first)
	reg.Publish(UserEvent{Type: Delete, User: model.User{ID: 2}})

	if len(first.events) != 0 {
		t.Errorf("已注销的观察者仍收到事件: %+v", first.events)
	}
	if len(second.events) != 1 {
		t.Errorf("其余观察者应继续收到事件, got %d", len(second.events))
	}
	if reg.Len() != 1 {
		t.Errorf("注销后观察者数量应为 1, got %d", reg.Len())
	}
}

func TestUnsubscribeUnknownObserverIsNoop(t *testing.T) {
	var reg Registry[UserEvent]
	reg.Subscribe(&recorder{name: "first"})

	reg.Unsubscribe(&recorder{name: "stranger"})

	if reg.Len() != 1 {
		t.Errorf("注销未注册的观察者不应改变列表, got %d", reg.Len())
	}
}

func TestDuplicateSubscribeGetsDuplicateNotify(t *testing.T) {
	var reg Registry[UserEvent]
	obs := &recorder{name: "dup"}
	reg.Subscribe(obs)
	reg.Subscribe(obs)

	reg.Publish(UserEvent{Type: Reload})

	if len(obs.events) != 2 {
		t.Errorf("重复注册应收到重复通知, got %d", len(obs.events))
	}
}

func TestEventTypeString(t *testing.T) {
	cases := map[Type]string{
		Add:    "ADD",
		Update: "UPDATE",
		Delete: "DELETE",
		Reload: "RELOAD",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("Type(%d).String() = %q, want %q", typ, got, want)
		}
	}
}
