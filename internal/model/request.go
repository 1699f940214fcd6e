// Package model 定义数据库实体模型
// 本文件定义好友申请模型
package model

// Request 好友申请模型
// 对应数据库 requests 表
// (sender, receiver) 是有序对：同一有序对最多存在一条未处理申请，
// 且申请不能与已有好友关系共存，均由 Service 层在创建前检查
type Request struct {
	// ID 申请唯一标识
	ID int64 `gorm:"column:id;primaryKey;autoIncrement;comment:申请id" json:"id"`

	// SenderID 申请发起者 id
	SenderID int64 `gorm:"column:sender_id;index;not null;comment:发起者id" json:"senderId" validate:"required"`

	// ReceiverID 申请接收者 id，不能与 SenderID 相同
	ReceiverID int64 `gorm:"column:receiver_id;index;not null;comment:接收者id" json:"receiverId" validate:"required,nefield=SenderID"`
}

// TableName 指定表名
func (Request) TableName() string {
	return "requests"
}

// Involves 判断该申请是否涉及指定用户（发起方或接收方）
func (r *Request) Involves(userID int64) bool {
	return r.SenderID == userID || r.ReceiverID == userID
}
