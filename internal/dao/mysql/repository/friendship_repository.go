// Package repository 提供数据访问层的具体实现
// 本文件实现 FriendshipRepository 接口，处理好友关系相关的数据库操作
package repository

import (
	"kama_social_server/internal/model"
	"kama_social_server/pkg/validate"

	"gorm.io/gorm"
)

// friendshipRepository FriendshipRepository 接口的实现
type friendshipRepository struct {
	db *gorm.DB // GORM 数据库实例
}

// NewFriendshipRepository 创建 FriendshipRepository 实例
func NewFriendshipRepository(db *gorm.DB) FriendshipRepository {
	return &friendshipRepository{db: db}
}

// FindOne 按 id 查找好友关系
func (r *friendshipRepository) FindOne(id int64) (*model.Friendship, error) {
	var friendship model.Friendship
	if err := r.db.First(&friendship, "id = ?", id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询好友关系 id=%d", id)
	}
	return &friendship, nil
}

// FindAll 查找全部好友关系
func (r *friendshipRepository) FindAll() ([]model.Friendship, error) {
	var friendships []model.Friendship
	if err := r.db.Find(&friendships).Error; err != nil {
		return nil, wrapDBError(err, "查询好友关系列表")
	}
	return friendships, nil
}

// Save 校验并持久化新好友关系
func (r *friendshipRepository) Save(friendship *model.Friendship) (*model.Friendship, error) {
	if err := validate.Struct(friendship); err != nil {
		return nil, err
	}
	if err := r.db.Create(friendship).Error; err != nil {
		return nil, wrapDBError(err, "创建好友关系")
	}
	return friendship, nil
}

// Update 校验并按 id 更新两个用户 id
// 成为好友的时间戳在创建时写定，更新不改写
func (r *friendshipRepository) Update(friendship *model.Friendship) (*model.Friendship, error) {
	if err := validate.Struct(friendship); err != nil {
		return nil, err
	}
	prior, err := r.FindOne(friendship.ID)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Friendship{}).Where("id = ?", friendship.ID).Updates(map[string]any{
		"user_id1": friendship.User1ID,
		"user_id2": friendship.User2ID,
	}).Error; err != nil {
		return nil, wrapDBErrorf(err, "更新好友关系 id=%d", friendship.ID)
	}
	friendship.FriendsFrom = prior.FriendsFrom
	return friendship, nil
}

// Delete 按 id 删除好友关系，返回删除前的真实行
func (r *friendshipRepository) Delete(id int64) (*model.Friendship, error) {
	prior, err := r.FindOne(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&model.Friendship{}, "id = ?", id).Error; err != nil {
		return nil, wrapDBErrorf(err, "删除好友关系 id=%d", id)
	}
	return prior, nil
}
