package validate

import (
	"strings"
	"testing"
	"time"

	"kama_social_server/internal/model"
	"kama_social_server/pkg/errorx"
)

func validUser() *model.User {
	return &model.User{
		ID:        1,
		FirstName: "Ana",
		LastName:  "Popescu",
		Username:  "anapopescu",
		Password:  "parola",
	}
}

func TestValidUserPasses(t *testing.T) {
	if err := Struct(validUser()); err != nil {
		t.Fatalf("合法用户不应报错: %v", err)
	}
}

func TestUserViolationsAreAccumulated(t *testing.T) {
	user := &model.User{
		FirstName: "Ana1", // 含数字，违反 alpha
		LastName:  "",     // 违反 required
		Username:  "ab",   // 违反 min=5
		Password:  "parola",
	}
	err := Struct(user)
	if err == nil {
		t.Fatal("期望校验失败")
	}
	if !errorx.IsValidation(err) {
		t.Fatalf("期望 CodeValidation 错误, got %v", err)
	}
	// 三条违规全部累积在一个错误里
	msg := err.Error()
	for _, field := range []string{"firstName", "lastName", "username"} {
		if !strings.Contains(msg, field) {
			t.Errorf("错误消息应包含字段 %s: %s", field, msg)
		}
	}
}

func TestUsernameLengthBounds(t *testing.T) {
	user := validUser()
	user.Username = "abcde" // 恰好 5 个字符
	if err := Struct(user); err != nil {
		t.Errorf("5 字符用户名应合法: %v", err)
	}

	user.Username = strings.Repeat("a", 21)
	if err := Struct(user); err == nil {
		t.Error("超过 20 字符的用户名应失败")
	}
}

func TestFriendshipSameUsersFails(t *testing.T) {
	f := &model.Friendship{
		ID:          1,
		User1ID:     7,
		User2ID:     7, // 违反 nefield=User1ID
		FriendsFrom: time.Now(),
	}
	err := Struct(f)
	if !errorx.IsValidation(err) {
		t.Fatalf("自己与自己成为好友应校验失败, got %v", err)
	}

	f.User2ID = 8
	if err := Struct(f); err != nil {
		t.Errorf("不同用户之间的好友关系应合法: %v", err)
	}
}

func TestRequestToSelfFails(t *testing.T) {
	q := &model.Request{ID: 1, SenderID: 3, ReceiverID: 3}
	if err := Struct(q); !errorx.IsValidation(err) {
		t.Fatalf("向自己发申请应校验失败, got %v", err)
	}
}

func TestMessageTextLength(t *testing.T) {
	m := &model.Message{
		From: 1,
		To:   2,
		Text: strings.Repeat("a", 255),
		Date: time.Now(),
	}
	if err := Struct(m); err != nil {
		t.Errorf("255 字符消息应合法: %v", err)
	}

	m.Text = strings.Repeat("a", 256)
	if err := Struct(m); !errorx.IsValidation(err) {
		t.Errorf("超过 255 字符的消息应失败, got %v", err)
	}

	m.Text = ""
	if err := Struct(m); !errorx.IsValidation(err) {
		t.Errorf("空消息应失败, got %v", err)
	}
}
