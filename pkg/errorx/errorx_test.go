package errorx

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeDBError, "数据库错误")

	if !errors.Is(err, cause) {
		t.Error("errors.Is 应能追溯到底层错误")
	}
	if got := err.Error(); got != "数据库错误: connection refused" {
		t.Errorf("错误消息格式错误: %q", got)
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(CodeNotFound, "x")); got != CodeNotFound {
		t.Errorf("GetCode = %d, want %d", got, CodeNotFound)
	}
	// 包装一层后仍能提取
	wrapped := fmt.Errorf("outer: %w", New(CodeValidation, "x"))
	if got := GetCode(wrapped); got != CodeValidation {
		t.Errorf("包装后 GetCode = %d, want %d", got, CodeValidation)
	}
	// 非 CodeError 返回默认码
	if got := GetCode(errors.New("plain")); got != CodeServerBusy {
		t.Errorf("非 CodeError 应返回 CodeServerBusy, got %d", got)
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(Newf(CodeNotFound, "记录不存在 id=%d", 7)) {
		t.Error("CodeNotFound 错误应被识别")
	}
	if !IsNotFound(errors.New("record not found")) {
		t.Error("gorm 的 record not found 应被识别")
	}
	if IsNotFound(New(CodeDBError, "x")) {
		t.Error("其它错误码不应被识别为未找到")
	}
	if IsNotFound(nil) {
		t.Error("nil 不应被识别为未找到")
	}
}

func TestNewValidationJoinsMessages(t *testing.T) {
	err := NewValidation([]string{"a is required", "b is too long"})
	if err.Code != CodeValidation {
		t.Errorf("Code = %d, want %d", err.Code, CodeValidation)
	}
	if err.Error() != "a is required; b is too long" {
		t.Errorf("消息拼接错误: %q", err.Error())
	}
	if !IsValidation(err) {
		t.Error("IsValidation 应识别校验错误")
	}
}
