// Package repository 提供数据访问层的具体实现
// 本文件实现 UserRepository 接口，处理用户相关的数据库操作
package repository

import (
	"kama_social_server/internal/model"
	"kama_social_server/pkg/validate"

	"gorm.io/gorm"
)

// userRepository UserRepository 接口的实现
type userRepository struct {
	db *gorm.DB // GORM 数据库实例
}

// NewUserRepository 创建 UserRepository 实例
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindOne 按 id 查找用户
func (r *userRepository) FindOne(id int64) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 id=%d", id)
	}
	return &user, nil
}

// FindAll 查找全部用户
func (r *userRepository) FindAll() ([]model.User, error) {
	var users []model.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, wrapDBError(err, "查询用户列表")
	}
	return users, nil
}

// Save 校验并持久化新用户
// Service 层预先分配的 id 原样写入；id 为 0 时由数据库自增生成
func (r *userRepository) Save(user *model.User) (*model.User, error) {
	if err := validate.Struct(user); err != nil {
		return nil, err
	}
	if err := r.db.Create(user).Error; err != nil {
		return nil, wrapDBError(err, "创建用户")
	}
	return user, nil
}

// Update 校验并按 id 整体更新用户
// 不支持部分字段更新：全部可变字段一次性替换
func (r *userRepository) Update(user *model.User) (*model.User, error) {
	if err := validate.Struct(user); err != nil {
		return nil, err
	}
	if _, err := r.FindOne(user.ID); err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.User{}).Where("id = ?", user.ID).Updates(map[string]any{
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"username":   user.Username,
		"password":   user.Password,
	}).Error; err != nil {
		return nil, wrapDBErrorf(err, "更新用户 id=%d", user.ID)
	}
	return user, nil
}

// Delete 按 id 删除用户，返回删除前的真实行
func (r *userRepository) Delete(id int64) (*model.User, error) {
	prior, err := r.FindOne(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&model.User{}, "id = ?", id).Error; err != nil {
		return nil, wrapDBErrorf(err, "删除用户 id=%d", id)
	}
	return prior, nil
}
