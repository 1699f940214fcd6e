// Package repository 提供数据访问层的具体实现
// 本文件实现 MessageRepository 接口，处理私信消息相关的数据库操作
package repository

import (
	"kama_social_server/internal/model"
	"kama_social_server/pkg/validate"

	"gorm.io/gorm"
)

// messageRepository MessageRepository 接口的实现
type messageRepository struct {
	db *gorm.DB // GORM 数据库实例
}

// NewMessageRepository 创建 MessageRepository 实例
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// FindOne 按 id 查找消息
func (r *messageRepository) FindOne(id int64) (*model.Message, error) {
	var message model.Message
	if err := r.db.First(&message, "id = ?", id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询消息 id=%d", id)
	}
	return &message, nil
}

// FindAll 查找全部消息
func (r *messageRepository) FindAll() ([]model.Message, error) {
	var messages []model.Message
	if err := r.db.Find(&messages).Error; err != nil {
		return nil, wrapDBError(err, "查询消息列表")
	}
	return messages, nil
}

// Save 校验并持久化新消息
// 消息 id 完全依赖数据库自增，不参与 Service 层计数器
func (r *messageRepository) Save(message *model.Message) (*model.Message, error) {
	if err := validate.Struct(message); err != nil {
		return nil, err
	}
	if err := r.db.Create(message).Error; err != nil {
		return nil, wrapDBError(err, "创建消息")
	}
	return message, nil
}

// Update 校验并按 id 整体更新消息
func (r *messageRepository) Update(message *model.Message) (*model.Message, error) {
	if err := validate.Struct(message); err != nil {
		return nil, err
	}
	if _, err := r.FindOne(message.ID); err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Message{}).Where("id = ?", message.ID).Updates(map[string]any{
		"from": message.From,
		"to":   message.To,
		"text": message.Text,
		"date": message.Date,
	}).Error; err != nil {
		return nil, wrapDBErrorf(err, "更新消息 id=%d", message.ID)
	}
	return message, nil
}

// Delete 按 id 删除消息，返回删除前的真实行
func (r *messageRepository) Delete(id int64) (*model.Message, error) {
	prior, err := r.FindOne(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&model.Message{}, "id = ?", id).Error; err != nil {
		return nil, wrapDBErrorf(err, "删除消息 id=%d", id)
	}
	return prior, nil
}
