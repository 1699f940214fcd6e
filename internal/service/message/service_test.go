package message

import (
	"testing"
	"time"

	"kama_social_server/internal/dao/memory"
	"kama_social_server/internal/dao/mysql/repository"
	"kama_social_server/internal/event"
	"kama_social_server/internal/model"
	"kama_social_server/pkg/errorx"
)

func newTestService() (*Service, *repository.Repositories, *event.Bus) {
	repos := memory.NewRepositories()
	bus := event.NewBus()
	return NewService(repos, bus), repos, bus
}

type messageRecorder struct{ events []event.MessageEvent }

func (r *messageRecorder) Notify(ev event.MessageEvent) { r.events = append(r.events, ev) }

func TestAddMessage(t *testing.T) {
	s, _, bus := newTestService()
	rec := &messageRecorder{}
	bus.Message.Subscribe(rec)

	msg, err := s.AddMessage(1, 2, "salut")
	if err != nil {
		t.Fatal(err)
	}
	if msg.ID == 0 {
		t.Error("持久化后应有非零 id")
	}
	if msg.Date.IsZero() {
		t.Error("发送时间应在创建时写入")
	}

	if len(rec.events) != 1 || rec.events[0].Type != event.Add {
		t.Fatalf("应发布一个 ADD 事件, got %+v", rec.events)
	}
	if rec.events[0].Message.Text != "salut" {
		t.Errorf("事件负载错误: %+v", rec.events[0])
	}
}

func TestAddMessageRejectsInvalidText(t *testing.T) {
	s, _, bus := newTestService()
	rec := &messageRecorder{}
	bus.Message.Subscribe(rec)

	if _, err := s.AddMessage(1, 2, ""); !errorx.IsValidation(err) {
		t.Errorf("空消息应校验失败, got %v", err)
	}
	if len(rec.events) != 0 {
		t.Errorf("校验失败不应发布事件, got %d", len(rec.events))
	}
}

func TestGetMessagesBetweenUsers(t *testing.T) {
	s, repos, _ := newTestService()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	seed := []model.Message{
		{From: 1, To: 2, Text: "salut", Date: base},
		{From: 2, To: 1, Text: "buna", Date: base.Add(time.Minute)},
		{From: 1, To: 3, Text: "altcuiva", Date: base.Add(2 * time.Minute)},
		{From: 1, To: 2, Text: "ce faci", Date: base.Add(3 * time.Minute)},
	}
	for i := range seed {
		if _, err := repos.Message.Save(&seed[i]); err != nil {
			t.Fatal(err)
		}
	}

	conversation, err := s.GetMessagesBetweenUsers(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(conversation) != 3 {
		t.Fatalf("应返回双向的 3 条消息, got %d", len(conversation))
	}
	// 按发送时间升序
	want := []string{"salut", "buna", "ce faci"}
	for i, text := range want {
		if conversation[i].Text != text {
			t.Errorf("第 %d 条消息应为 %q, got %q", i, text, conversation[i].Text)
		}
	}
}

func TestGetMessagesBetweenUsersEmpty(t *testing.T) {
	s, _, _ := newTestService()
	conversation, err := s.GetMessagesBetweenUsers(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(conversation) != 0 {
		t.Errorf("没有消息时应返回空切片, got %+v", conversation)
	}
}
