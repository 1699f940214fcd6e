package errorx

import (
	"errors"
	"fmt"
	"strings"
)

// CodeError 带业务错误码的自定义错误
// 实现了 error 接口，支持 %w 包装底层错误，且能被 errors.Is/errors.As 识别
type CodeError struct {
	Code  int    // 业务错误码
	Msg   string // 错误消息
	cause error  // 被包装的底层错误
}

// Error 实现 Go 标准 error 接口
// 当存在底层错误时，返回格式为 "消息: 底层错误"；否则仅返回消息
func (e *CodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

// Unwrap 实现 errors.Unwrap 接口，支持 errors.Is/errors.As 向下追溯
func (e *CodeError) Unwrap() error {
	return e.cause
}

// New 创建一个新的 CodeError
func New(code int, msg string) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  msg,
	}
}

// Newf 创建一个带格式化消息的 CodeError
func Newf(code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap 包装底层错误，添加业务错误码和消息
// 用法: errorx.Wrap(err, CodeNotFound, "用户不存在")
func Wrap(err error, code int, msg string) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   msg,
		cause: err,
	}
}

// Wrapf 包装底层错误，支持格式化消息
func Wrapf(err error, code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// GetCode 从错误中提取业务错误码，如果不是 CodeError 则返回默认码
func GetCode(err error) int {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}
	return CodeServerBusy // 默认返回服务繁忙
}

// 业务状态码常量定义
const (
	CodeSuccess          = 1000 // 成功
	CodeInvalidParam     = 1001 // 请求参数错误
	CodeUserExist        = 1002 // 用户已存在
	CodeUserNotExist     = 1003 // 用户不存在
	CodeInvalidPassword  = 1004 // 密码错误
	CodeServerBusy       = 1005 // 服务繁忙
	CodeUnauthorized     = 1006 // 未授权/认证失败
	CodeNotFound         = 1008 // 资源不存在
	CodeDBError          = 1010 // 数据库错误
	CodeValidation       = 1012 // 实体校验失败
	CodeFriendshipExists = 1013 // 好友关系已存在
	CodeRequestExists    = 1014 // 好友申请已存在
)

// 预定义常用错误实例
// 这些实例既可直接返回，也可用于 errors.Is 比较
var (
	ErrInvalidParam     = New(CodeInvalidParam, "请求参数错误")
	ErrServerBusy       = New(CodeServerBusy, "服务繁忙")
	ErrUserExist        = New(CodeUserExist, "用户名已被占用")
	ErrUserNotExist     = New(CodeUserNotExist, "用户不存在")
	ErrUnauthorized     = New(CodeUnauthorized, "未授权的操作")
	ErrInvalidPassword  = New(CodeInvalidPassword, "密码错误")
	ErrFriendshipExists = New(CodeFriendshipExists, "两人之间已存在好友关系")
	ErrRequestExists    = New(CodeRequestExists, "好友申请已存在")
)

// NewValidation 根据累积的校验失败消息列表创建校验错误
// messages 中的每一项对应一条被违反的规则，全部拼入错误消息
func NewValidation(messages []string) *CodeError {
	return New(CodeValidation, strings.Join(messages, "; "))
}

// IsNotFound 检查错误是否为"未找到"类型（包括 gorm.ErrRecordNotFound）
func IsNotFound(err error) bool {
	var codeErr *CodeError
	if errors.As(err, &codeErr) && codeErr.Code == CodeNotFound {
		return true
	}
	return err != nil && err.Error() == "record not found"
}

// IsValidation 检查错误是否为实体校验失败
func IsValidation(err error) bool {
	var codeErr *CodeError
	return errors.As(err, &codeErr) && codeErr.Code == CodeValidation
}
