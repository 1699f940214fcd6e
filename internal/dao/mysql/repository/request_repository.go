// Package repository 提供数据访问层的具体实现
// 本文件实现 RequestRepository 接口，处理好友申请相关的数据库操作
package repository

import (
	"kama_social_server/internal/model"
	"kama_social_server/pkg/validate"

	"gorm.io/gorm"
)

// requestRepository RequestRepository 接口的实现
type requestRepository struct {
	db *gorm.DB // GORM 数据库实例
}

// NewRequestRepository 创建 RequestRepository 实例
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

// FindOne 按 id 查找申请
func (r *requestRepository) FindOne(id int64) (*model.Request, error) {
	var request model.Request
	if err := r.db.First(&request, "id = ?", id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询好友申请 id=%d", id)
	}
	return &request, nil
}

// FindAll 查找全部申请
func (r *requestRepository) FindAll() ([]model.Request, error) {
	var requests []model.Request
	if err := r.db.Find(&requests).Error; err != nil {
		return nil, wrapDBError(err, "查询好友申请列表")
	}
	return requests, nil
}

// Save 校验并持久化新申请
func (r *requestRepository) Save(request *model.Request) (*model.Request, error) {
	if err := validate.Struct(request); err != nil {
		return nil, err
	}
	if err := r.db.Create(request).Error; err != nil {
		return nil, wrapDBError(err, "创建好友申请")
	}
	return request, nil
}

// Update 校验并按 id 整体更新申请
func (r *requestRepository) Update(request *model.Request) (*model.Request, error) {
	if err := validate.Struct(request); err != nil {
		return nil, err
	}
	if _, err := r.FindOne(request.ID); err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Request{}).Where("id = ?", request.ID).Updates(map[string]any{
		"sender_id":   request.SenderID,
		"receiver_id": request.ReceiverID,
	}).Error; err != nil {
		return nil, wrapDBErrorf(err, "更新好友申请 id=%d", request.ID)
	}
	return request, nil
}

// Delete 按 id 删除申请，返回删除前的真实行
func (r *requestRepository) Delete(id int64) (*model.Request, error) {
	prior, err := r.FindOne(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&model.Request{}, "id = ?", id).Error; err != nil {
		return nil, wrapDBErrorf(err, "删除好友申请 id=%d", id)
	}
	return prior, nil
}
