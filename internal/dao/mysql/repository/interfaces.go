// Package repository 定义数据访问层接口和聚合结构
// 采用 Repository 模式将数据访问逻辑与业务逻辑分离
// 所有 Repository 接口在此文件定义，具体实现在各自的文件中
//
// 统一契约（四种实体一致）：
//   - FindOne: 按 id 查找，未找到返回 CodeNotFound 错误
//   - FindAll: 全表扫描，行序不承载业务含义
//   - Save:    先校验（全部违规累积为一个 CodeValidation 错误）再持久化，
//     返回带 id 的持久化实体
//   - Update:  先校验，按 id 整体替换全部可变字段，未找到返回 CodeNotFound
//   - Delete:  按 id 删除，返回删除前的真实行，未找到返回 CodeNotFound
package repository

import (
	"errors"

	"kama_social_server/internal/model"
	"kama_social_server/pkg/errorx"

	"gorm.io/gorm"
)

// ==================== 错误包装辅助函数 ====================

// wrapDBError 包装数据库错误
// 根据错误类型返回不同的错误码：
//   - ErrRecordNotFound -> CodeNotFound
//   - 其他错误 -> CodeDBError
func wrapDBError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrap(err, errorx.CodeNotFound, msg)
	}
	return errorx.Wrap(err, errorx.CodeDBError, msg)
}

// wrapDBErrorf 包装数据库错误（支持格式化消息）
func wrapDBErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrapf(err, errorx.CodeNotFound, format, args...)
	}
	return errorx.Wrapf(err, errorx.CodeDBError, format, args...)
}

// ==================== Repository 接口定义 ====================

// UserRepository 用户数据访问接口
type UserRepository interface {
	// FindOne 按 id 查找用户
	FindOne(id int64) (*model.User, error)
	// FindAll 查找全部用户
	FindAll() ([]model.User, error)
	// Save 校验并持久化新用户
	Save(user *model.User) (*model.User, error)
	// Update 校验并按 id 整体更新用户
	Update(user *model.User) (*model.User, error)
	// Delete 按 id 删除用户，返回删除前的行
	Delete(id int64) (*model.User, error)
}

// FriendshipRepository 好友关系数据访问接口
type FriendshipRepository interface {
	// FindOne 按 id 查找好友关系
	FindOne(id int64) (*model.Friendship, error)
	// FindAll 查找全部好友关系
	FindAll() ([]model.Friendship, error)
	// Save 校验并持久化新好友关系
	Save(friendship *model.Friendship) (*model.Friendship, error)
	// Update 校验并按 id 更新两个用户 id（不改写时间戳）
	Update(friendship *model.Friendship) (*model.Friendship, error)
	// Delete 按 id 删除好友关系，返回删除前的行
	Delete(id int64) (*model.Friendship, error)
}

// RequestRepository 好友申请数据访问接口
type RequestRepository interface {
	// FindOne 按 id 查找申请
	FindOne(id int64) (*model.Request, error)
	// FindAll 查找全部申请
	FindAll() ([]model.Request, error)
	// Save 校验并持久化新申请
	Save(request *model.Request) (*model.Request, error)
	// Update 校验并按 id 整体更新申请
	Update(request *model.Request) (*model.Request, error)
	// Delete 按 id 删除申请，返回删除前的行
	Delete(id int64) (*model.Request, error)
}

// MessageRepository 消息数据访问接口
type MessageRepository interface {
	// FindOne 按 id 查找消息
	FindOne(id int64) (*model.Message, error)
	// FindAll 查找全部消息
	FindAll() ([]model.Message, error)
	// Save 校验并持久化新消息，id 由数据库自增生成
	Save(message *model.Message) (*model.Message, error)
	// Update 校验并按 id 整体更新消息
	Update(message *model.Message) (*model.Message, error)
	// Delete 按 id 删除消息，返回删除前的行
	Delete(id int64) (*model.Message, error)
}

// ==================== Repository 聚合 ====================

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	User       UserRepository       // 用户 Repository
	Friendship FriendshipRepository // 好友关系 Repository
	Request    RequestRepository    // 好友申请 Repository
	Message    MessageRepository    // 消息 Repository
}

// NewRepositories 创建并注入所有 Repository 实例
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:       NewUserRepository(db),
		Friendship: NewFriendshipRepository(db),
		Request:    NewRequestRepository(db),
		Message:    NewMessageRepository(db),
	}
}
