// Package relationship 提供用户、好友关系、好友申请的核心业务逻辑
// 负责维护关系不变式（无序对唯一、有序对唯一、申请与好友关系互斥）、
// 互反申请自动提升为好友关系、删除用户时的级联清理，
// 以及每次成功写入后向通知总线发布事件
package relationship

import (
	"sync"
	"time"

	"kama_social_server/internal/dao/mysql/repository"
	"kama_social_server/internal/event"
	"kama_social_server/internal/model"
	"kama_social_server/pkg/errorx"

	"go.uber.org/zap"
)

// Service 关系业务逻辑实现
// 不缓存任何实体：每次查询都重新读取数据层
type Service struct {
	repos *repository.Repositories
	bus   *event.Bus

	// mu 串行化所有"检查-写入"序列，避免并发请求绕过唯一性检查
	mu sync.Mutex

	// 会话状态，0 表示未设置
	currentUserID  int64
	selectedUserID int64

	// 实体 id 计数器，启动时从 max(现有id)+1 播种
	// 消息 id 不参与：完全依赖数据库自增
	userIDCounter       int64
	friendshipIDCounter int64
	requestIDCounter    int64
}

// NewService 创建关系 Service 并播种 id 计数器
func NewService(repos *repository.Repositories, bus *event.Bus) *Service {
	s := &Service{
		repos:               repos,
		bus:                 bus,
		userIDCounter:       1,
		friendshipIDCounter: 1,
		requestIDCounter:    1,
	}
	s.initCounters()
	return s
}

// initCounters 扫描三类可变实体，把计数器推进到 max(id)+1
// 数据层读取失败只记录日志，计数器保持默认值 1
func (s *Service) initCounters() {
	if users, err := s.repos.User.FindAll(); err == nil {
		for _, u := range users {
			if u.ID >= s.userIDCounter {
				s.userIDCounter = u.ID + 1
			}
		}
	} else {
		zap.L().Error("播种用户 id 计数器失败", zap.Error(err))
	}

	if friendships, err := s.repos.Friendship.FindAll(); err == nil {
		for _, f := range friendships {
			if f.ID >= s.friendshipIDCounter {
				s.friendshipIDCounter = f.ID + 1
			}
		}
	} else {
		zap.L().Error("播种好友关系 id 计数器失败", zap.Error(err))
	}

	if requests, err := s.repos.Request.FindAll(); err == nil {
		for _, q := range requests {
			if q.ID >= s.requestIDCounter {
				s.requestIDCounter = q.ID + 1
			}
		}
	} else {
		zap.L().Error("播种好友申请 id 计数器失败", zap.Error(err))
	}
}

// ==================== 会话状态 ====================

// Login 按用户名查找用户并核对密码，成功后记录当前登录用户
func (s *Service) Login(username, password string) (*model.User, error) {
	user, err := s.FindUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errorx.ErrUserNotExist
	}
	if user.Password != password {
		return nil, errorx.ErrInvalidPassword
	}

	s.mu.Lock()
	s.currentUserID = user.ID
	s.mu.Unlock()
	return user, nil
}

// Logout 清除当前登录用户
func (s *Service) Logout() {
	s.mu.Lock()
	s.currentUserID = 0
	s.mu.Unlock()
}

// CurrentUserID 返回当前登录用户 id，0 表示未登录
// Service 本身不强制要求已登录，调用方自行保证
func (s *Service) CurrentUserID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentUserID
}

// SetCurrentUserID 直接设置当前登录用户 id
func (s *Service) SetCurrentUserID(id int64) {
	s.mu.Lock()
	s.currentUserID = id
	s.mu.Unlock()
}

// SelectedUserID 返回当前被查看资料的用户 id，仅作为组件间的传递槽
func (s *Service) SelectedUserID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedUserID
}

// SetSelectedUserID 记录即将被查看资料的用户 id，不做任何校验
func (s *Service) SetSelectedUserID(id int64) {
	s.mu.Lock()
	s.selectedUserID = id
	s.mu.Unlock()
}

// ==================== 用户 ====================

// GetUsers 查询全部用户
func (s *Service) GetUsers() ([]model.User, error) {
	return s.repos.User.FindAll()
}

// GetUserByID 按 id 查询用户，未找到返回 (nil, nil)
func (s *Service) GetUserByID(id int64) (*model.User, error) {
	user, err := s.repos.User.FindOne(id)
	if errorx.IsNotFound(err) {
		return nil, nil
	}
	return user, err
}

// FindUserByUsername 按用户名精确（区分大小写）查找，线性扫描返回第一个匹配
// 未找到返回 (nil, nil)
func (s *Service) FindUserByUsername(username string) (*model.User, error) {
	users, err := s.repos.User.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, nil
}

// AddUser 分配下一个计数器 id、持久化并发布 UserEvent(ADD)
// 不检查用户名唯一性：调用方须先通过 FindUserByUsername 检查
func (s *Service) AddUser(user *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.userIDCounter
	saved, err := s.repos.User.Save(user)
	if err != nil {
		return nil, err
	}
	s.userIDCounter++

	s.bus.User.Publish(event.UserEvent{Type: event.Add, User: *saved})
	return saved, nil
}

// UpdateUser 整体更新用户并发布携带旧版本的 UserEvent(UPDATE)
// 未找到时静默返回 (nil, nil)，不发布事件
func (s *Service) UpdateUser(user *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, err := s.repos.User.FindOne(user.ID)
	if errorx.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	updated, err := s.repos.User.Update(user)
	if err != nil {
		return nil, err
	}

	s.bus.User.Publish(event.UserEvent{Type: event.Update, User: *updated, Old: old})
	return updated, nil
}

// DeleteUser 级联删除：先清理涉及该用户的全部好友关系和申请，
// 再删除用户本身并发布 UserEvent(DELETE)
// 级联删除是尽力而为的：个别删除失败只记录日志，不回滚
func (s *Service) DeleteUser(id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.deleteFriendshipsOfUserLocked(id); err != nil {
		zap.L().Error("级联删除好友关系失败", zap.Int64("userId", id), zap.Error(err))
	}
	if err := s.deleteRequestsOfUserLocked(id); err != nil {
		zap.L().Error("级联删除好友申请失败", zap.Int64("userId", id), zap.Error(err))
	}

	deleted, err := s.repos.User.Delete(id)
	if errorx.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	s.bus.User.Publish(event.UserEvent{Type: event.Delete, User: *deleted})
	return deleted, nil
}

// ==================== 好友关系 ====================

// GetFriendships 查询全部好友关系
func (s *Service) GetFriendships() ([]model.Friendship, error) {
	return s.repos.Friendship.FindAll()
}

// GetFriendshipsOfUser 线性过滤出涉及指定用户（任一侧）的好友关系
func (s *Service) GetFriendshipsOfUser(userID int64) ([]model.Friendship, error) {
	all, err := s.repos.Friendship.FindAll()
	if err != nil {
		return nil, err
	}
	result := make([]model.Friendship, 0)
	for _, f := range all {
		if f.Involves(userID) {
			result = append(result, f)
		}
	}
	return result, nil
}

// AddFriendship 创建好友关系，成为好友时间取当前时刻
// 同一无序对已存在好友关系时返回 ErrFriendshipExists
func (s *Service) AddFriendship(user1ID, user2ID int64) (*model.Friendship, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addFriendshipLocked(user1ID, user2ID)
}

func (s *Service) addFriendshipLocked(user1ID, user2ID int64) (*model.Friendship, error) {
	exists, err := s.friendshipExistsLocked(user1ID, user2ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errorx.ErrFriendshipExists
	}

	friendship := &model.Friendship{
		ID:          s.friendshipIDCounter,
		User1ID:     user1ID,
		User2ID:     user2ID,
		FriendsFrom: time.Now(),
	}
	saved, err := s.repos.Friendship.Save(friendship)
	if err != nil {
		return nil, err
	}
	s.friendshipIDCounter++

	s.bus.Friendship.Publish(event.FriendshipEvent{Type: event.Add, Friendship: *saved})
	return saved, nil
}

// friendshipExistsLocked 判断两个用户之间（方向无关）是否已有好友关系
func (s *Service) friendshipExistsLocked(a, b int64) (bool, error) {
	all, err := s.repos.Friendship.FindAll()
	if err != nil {
		return false, err
	}
	for _, f := range all {
		if f.Connects(a, b) {
			return true, nil
		}
	}
	return false, nil
}

// DeleteFriendship 按 id 删除好友关系并发布 FriendshipEvent(DELETE)
// 未找到时静默返回 (nil, nil)，不发布事件
func (s *Service) DeleteFriendship(id int64) (*model.Friendship, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteFriendshipLocked(id)
}

func (s *Service) deleteFriendshipLocked(id int64) (*model.Friendship, error) {
	deleted, err := s.repos.Friendship.Delete(id)
	if errorx.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	s.bus.Friendship.Publish(event.FriendshipEvent{Type: event.Delete, Friendship: *deleted})
	return deleted, nil
}

// DeleteFriendshipsOfUser 删除涉及指定用户的全部好友关系，每删一条发布一个事件
func (s *Service) DeleteFriendshipsOfUser(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteFriendshipsOfUserLocked(userID)
}

func (s *Service) deleteFriendshipsOfUserLocked(userID int64) error {
	all, err := s.repos.Friendship.FindAll()
	if err != nil {
		return err
	}
	for _, f := range all {
		if !f.Involves(userID) {
			continue
		}
		if _, err := s.deleteFriendshipLocked(f.ID); err != nil {
			zap.L().Error("删除好友关系失败",
				zap.Int64("friendshipId", f.ID), zap.Error(err))
		}
	}
	return nil
}

// ==================== 好友申请 ====================

// GetRequests 查询全部好友申请
func (s *Service) GetRequests() ([]model.Request, error) {
	return s.repos.Request.FindAll()
}

// GetRequestsByReceiver 线性过滤出发给指定用户的申请
func (s *Service) GetRequestsByReceiver(receiverID int64) ([]model.Request, error) {
	all, err := s.repos.Request.FindAll()
	if err != nil {
		return nil, err
	}
	result := make([]model.Request, 0)
	for _, q := range all {
		if q.ReceiverID == receiverID {
			result = append(result, q)
		}
	}
	return result, nil
}

// GetRequestsToUser 线性过滤指定用户的申请
// 注意：实际按 SenderID 过滤，返回的是该用户发出的申请，
// 界面用它来渲染"待处理的发出申请"列表
func (s *Service) GetRequestsToUser(userID int64) ([]model.Request, error) {
	all, err := s.repos.Request.FindAll()
	if err != nil {
		return nil, err
	}
	result := make([]model.Request, 0)
	for _, q := range all {
		if q.SenderID == userID {
			result = append(result, q)
		}
	}
	return result, nil
}

// AddRequest 创建好友申请，前置检查按顺序执行：
//  1. 两人之间已有好友关系 -> ErrFriendshipExists
//  2. 相同有序对 (sender, receiver) 的申请已存在 -> ErrRequestExists
//  3. 存在互反申请（receiver 此前已向 sender 发过申请）：不创建新申请，
//     而是自动创建好友关系、删除互反申请、发布 RequestEvent(DELETE)，
//     返回 (nil, nil) —— 申请透明地变成了好友关系
//  4. 否则创建并持久化新申请，发布 RequestEvent(ADD)
func (s *Service) AddRequest(senderID, receiverID int64) (*model.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.friendshipExistsLocked(senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errorx.ErrFriendshipExists
	}

	all, err := s.repos.Request.FindAll()
	if err != nil {
		return nil, err
	}

	var reciprocal *model.Request
	for i := range all {
		if all[i].SenderID == senderID && all[i].ReceiverID == receiverID {
			return nil, errorx.ErrRequestExists
		}
		if reciprocal == nil && all[i].SenderID == receiverID && all[i].ReceiverID == senderID {
			reciprocal = &all[i]
		}
	}

	if reciprocal != nil {
		// 互反申请：自动提升为好友关系
		if _, err := s.addFriendshipLocked(senderID, receiverID); err != nil {
			return nil, err
		}
		if _, err := s.repos.Request.Delete(reciprocal.ID); err != nil {
			zap.L().Error("删除互反申请失败",
				zap.Int64("requestId", reciprocal.ID), zap.Error(err))
		}
		s.bus.Request.Publish(event.RequestEvent{Type: event.Delete, Request: *reciprocal})
		return nil, nil
	}

	request := &model.Request{
		ID:         s.requestIDCounter,
		SenderID:   senderID,
		ReceiverID: receiverID,
	}
	saved, err := s.repos.Request.Save(request)
	if err != nil {
		return nil, err
	}
	s.requestIDCounter++

	s.bus.Request.Publish(event.RequestEvent{Type: event.Add, Request: *saved})
	return saved, nil
}

// UpdateRequest 整体更新申请并发布携带旧版本的 RequestEvent(UPDATE)
// 未找到时静默返回 (nil, nil)，不发布事件
func (s *Service) UpdateRequest(request *model.Request) (*model.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, err := s.repos.Request.FindOne(request.ID)
	if errorx.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	updated, err := s.repos.Request.Update(request)
	if err != nil {
		return nil, err
	}

	s.bus.Request.Publish(event.RequestEvent{Type: event.Update, Request: *updated, Old: old})
	return updated, nil
}

// DeleteRequest 按 id 删除申请并发布 RequestEvent(DELETE)
// 未找到时静默返回 (nil, nil)，不发布事件
func (s *Service) DeleteRequest(id int64) (*model.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteRequestLocked(id)
}

func (s *Service) deleteRequestLocked(id int64) (*model.Request, error) {
	deleted, err := s.repos.Request.Delete(id)
	if errorx.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	s.bus.Request.Publish(event.RequestEvent{Type: event.Delete, Request: *deleted})
	return deleted, nil
}

// DeleteRequestsOfUser 删除指定用户作为发起方或接收方的全部申请
func (s *Service) DeleteRequestsOfUser(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteRequestsOfUserLocked(userID)
}

func (s *Service) deleteRequestsOfUserLocked(userID int64) error {
	all, err := s.repos.Request.FindAll()
	if err != nil {
		return err
	}
	for _, q := range all {
		if !q.Involves(userID) {
			continue
		}
		if _, err := s.deleteRequestLocked(q.ID); err != nil {
			zap.L().Error("删除好友申请失败",
				zap.Int64("requestId", q.ID), zap.Error(err))
		}
	}
	return nil
}
