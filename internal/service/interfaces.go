// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层和 WebSocket 网关调用
// 接口设计遵循依赖倒置原则，便于测试和解耦
package service

import (
	"kama_social_server/internal/model"
)

// RelationshipService 关系业务接口
// 覆盖用户、好友关系、好友申请三类实体的全部操作和会话状态
type RelationshipService interface {
	// Login 按用户名查找并核对密码，成功后记录当前登录用户
	Login(username, password string) (*model.User, error)
	// Logout 清除当前登录用户
	Logout()
	// CurrentUserID 当前登录用户 id，0 表示未登录
	CurrentUserID() int64
	// SetCurrentUserID 直接设置当前登录用户 id
	SetCurrentUserID(id int64)
	// SelectedUserID 当前被查看资料的用户 id
	SelectedUserID() int64
	// SetSelectedUserID 记录即将被查看资料的用户 id
	SetSelectedUserID(id int64)

	// GetUsers 查询全部用户
	GetUsers() ([]model.User, error)
	// GetUserByID 按 id 查询用户，未找到返回 (nil, nil)
	GetUserByID(id int64) (*model.User, error)
	// FindUserByUsername 按用户名精确查找第一个匹配，未找到返回 (nil, nil)
	FindUserByUsername(username string) (*model.User, error)
	// AddUser 分配 id、持久化并发布 ADD 事件（不检查用户名唯一性）
	AddUser(user *model.User) (*model.User, error)
	// UpdateUser 整体更新用户并发布 UPDATE 事件
	UpdateUser(user *model.User) (*model.User, error)
	// DeleteUser 级联删除好友关系和申请后删除用户，发布 DELETE 事件
	DeleteUser(id int64) (*model.User, error)

	// GetFriendships 查询全部好友关系
	GetFriendships() ([]model.Friendship, error)
	// GetFriendshipsOfUser 查询涉及指定用户的好友关系
	GetFriendshipsOfUser(userID int64) ([]model.Friendship, error)
	// AddFriendship 创建好友关系，无序对重复时返回 ErrFriendshipExists
	AddFriendship(user1ID, user2ID int64) (*model.Friendship, error)
	// DeleteFriendship 按 id 删除，未找到时静默无操作
	DeleteFriendship(id int64) (*model.Friendship, error)
	// DeleteFriendshipsOfUser 删除涉及指定用户的全部好友关系
	DeleteFriendshipsOfUser(userID int64) error

	// GetRequests 查询全部好友申请
	GetRequests() ([]model.Request, error)
	// GetRequestsByReceiver 查询发给指定用户的申请
	GetRequestsByReceiver(receiverID int64) ([]model.Request, error)
	// GetRequestsToUser 查询指定用户发出的申请（按 SenderID 过滤）
	GetRequestsToUser(userID int64) ([]model.Request, error)
	// AddRequest 创建申请；存在互反申请时自动提升为好友关系并返回 (nil, nil)
	AddRequest(senderID, receiverID int64) (*model.Request, error)
	// UpdateRequest 整体更新申请并发布 UPDATE 事件
	UpdateRequest(request *model.Request) (*model.Request, error)
	// DeleteRequest 按 id 删除，未找到时静默无操作
	DeleteRequest(id int64) (*model.Request, error)
	// DeleteRequestsOfUser 删除指定用户涉及的全部申请
	DeleteRequestsOfUser(userID int64) error
}

// MessageService 消息业务接口
type MessageService interface {
	// AddMessage 持久化新消息并发布 ADD 事件
	AddMessage(from, to int64, text string) (*model.Message, error)
	// GetMessagesBetweenUsers 查询两个用户之间的全部消息，按时间升序
	GetMessagesBetweenUsers(a, b int64) ([]model.Message, error)
}
