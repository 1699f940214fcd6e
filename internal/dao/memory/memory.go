// Package memory 提供 Repository 接口的内存实现
// 契约与 mysql 实现一致：Save/Update 先校验、未找到返回 CodeNotFound、
// Delete 返回删除前的行。主要供 Service 层测试和本地演示使用
package memory

import (
	"sync"

	"kama_social_server/internal/dao/mysql/repository"
	"kama_social_server/internal/model"
	"kama_social_server/pkg/errorx"
	"kama_social_server/pkg/validate"
)

// table 单张内存表，按 id 索引
// getID/setID 用于读写具体实体的 id 字段
type table[E any] struct {
	mu     sync.Mutex
	rows   map[int64]E
	nextID int64
	getID  func(*E) int64
	setID  func(*E, int64)
}

func newTable[E any](getID func(*E) int64, setID func(*E, int64)) *table[E] {
	return &table[E]{
		rows:   make(map[int64]E),
		nextID: 1,
		getID:  getID,
		setID:  setID,
	}
}

func (t *table[E]) findOne(id int64) (*E, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	if !ok {
		return nil, errorx.Newf(errorx.CodeNotFound, "记录不存在 id=%d", id)
	}
	return &row, nil
}

func (t *table[E]) findAll() ([]E, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	all := make([]E, 0, len(t.rows))
	for _, row := range t.rows {
		all = append(all, row)
	}
	return all, nil
}

func (t *table[E]) save(entity *E) (*E, error) {
	if err := validate.Struct(entity); err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.getID(entity)
	if id == 0 {
		// 模拟数据库自增主键
		id = t.nextID
		t.setID(entity, id)
	}
	if id >= t.nextID {
		t.nextID = id + 1
	}
	t.rows[id] = *entity
	return entity, nil
}

func (t *table[E]) update(entity *E) (*E, error) {
	if err := validate.Struct(entity); err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.getID(entity)
	if _, ok := t.rows[id]; !ok {
		return nil, errorx.Newf(errorx.CodeNotFound, "记录不存在 id=%d", id)
	}
	t.rows[id] = *entity
	return entity, nil
}

func (t *table[E]) delete(id int64) (*E, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	if !ok {
		return nil, errorx.Newf(errorx.CodeNotFound, "记录不存在 id=%d", id)
	}
	delete(t.rows, id)
	return &row, nil
}

// ==================== 用户 ====================

type userRepository struct {
	t *table[model.User]
}

// NewUserRepository 创建内存 UserRepository
func NewUserRepository() repository.UserRepository {
	return &userRepository{t: newTable(
		func(u *model.User) int64 { return u.ID },
		func(u *model.User, id int64) { u.ID = id },
	)}
}

func (r *userRepository) FindOne(id int64) (*model.User, error)      { return r.t.findOne(id) }
func (r *userRepository) FindAll() ([]model.User, error)             { return r.t.findAll() }
func (r *userRepository) Save(u *model.User) (*model.User, error)    { return r.t.save(u) }
func (r *userRepository) Update(u *model.User) (*model.User, error)  { return r.t.update(u) }
func (r *userRepository) Delete(id int64) (*model.User, error)       { return r.t.delete(id) }

// ==================== 好友关系 ====================

type friendshipRepository struct {
	t *table[model.Friendship]
}

// NewFriendshipRepository 创建内存 FriendshipRepository
func NewFriendshipRepository() repository.FriendshipRepository {
	return &friendshipRepository{t: newTable(
		func(f *model.Friendship) int64 { return f.ID },
		func(f *model.Friendship, id int64) { f.ID = id },
	)}
}

func (r *friendshipRepository) FindOne(id int64) (*model.Friendship, error) { return r.t.findOne(id) }
func (r *friendshipRepository) FindAll() ([]model.Friendship, error)        { return r.t.findAll() }
func (r *friendshipRepository) Save(f *model.Friendship) (*model.Friendship, error) {
	return r.t.save(f)
}

// Update 保持成为好友的时间戳不被改写，与 mysql 实现一致
func (r *friendshipRepository) Update(f *model.Friendship) (*model.Friendship, error) {
	prior, err := r.t.findOne(f.ID)
	if err != nil {
		return nil, err
	}
	f.FriendsFrom = prior.FriendsFrom
	return r.t.update(f)
}
func (r *friendshipRepository) Delete(id int64) (*model.Friendship, error) { return r.t.delete(id) }

// ==================== 好友申请 ====================

type requestRepository struct {
	t *table[model.Request]
}

// NewRequestRepository 创建内存 RequestRepository
func NewRequestRepository() repository.RequestRepository {
	return &requestRepository{t: newTable(
		func(q *model.Request) int64 { return q.ID },
		func(q *model.Request, id int64) { q.ID = id },
	)}
}

func (r *requestRepository) FindOne(id int64) (*model.Request, error)     { return r.t.findOne(id) }
func (r *requestRepository) FindAll() ([]model.Request, error)            { return r.t.findAll() }
func (r *requestRepository) Save(q *model.Request) (*model.Request, error) { return r.t.save(q) }
func (r *requestRepository) Update(q *model.Request) (*model.Request, error) {
	return r.t.update(q)
}
func (r *requestRepository) Delete(id int64) (*model.Request, error) { return r.t.delete(id) }

// ==================== 消息 ====================

type messageRepository struct {
	t *table[model.Message]
}

// NewMessageRepository 创建内存 MessageRepository
func NewMessageRepository() repository.MessageRepository {
	return &messageRepository{t: newTable(
		func(m *model.Message) int64 { return m.ID },
		func(m *model.Message, id int64) { m.ID = id },
	)}
}

func (r *messageRepository) FindOne(id int64) (*model.Message, error)       { return r.t.findOne(id) }
func (r *messageRepository) FindAll() ([]model.Message, error)              { return r.t.findAll() }
func (r *messageRepository) Save(m *model.Message) (*model.Message, error)  { return r.t.save(m) }
func (r *messageRepository) Update(m *model.Message) (*model.Message, error) { return r.t.update(m) }
func (r *messageRepository) Delete(id int64) (*model.Message, error)        { return r.t.delete(id) }

// NewRepositories 创建全套内存 Repository 聚合
func NewRepositories() *repository.Repositories {
	return &repository.Repositories{
		User:       NewUserRepository(),
		Friendship: NewFriendshipRepository(),
		Request:    NewRequestRepository(),
		Message:    NewMessageRepository(),
	}
}
