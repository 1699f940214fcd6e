// Package model 定义数据库实体模型
// 本文件定义私信消息模型
package model

import "time"

// Message 私信消息模型
// 对应数据库 messages 表
// 消息与好友关系相互独立：非好友之间同样可以发送消息
type Message struct {
	// ID 消息唯一标识，完全依赖数据库自增，不参与 Service 层计数器
	ID int64 `gorm:"column:id;primaryKey;autoIncrement;comment:消息id" json:"id"`

	// From 发送者用户 id
	From int64 `gorm:"column:from;index;not null;comment:发送者id" json:"from" validate:"required"`

	// To 接收者用户 id
	To int64 `gorm:"column:to;index;not null;comment:接收者id" json:"to" validate:"required"`

	// Text 消息内容，1-255 字符
	Text string `gorm:"column:text;type:varchar(255);not null;comment:消息内容" json:"text" validate:"required,max=255"`

	// Date 发送时间
	Date time.Time `gorm:"column:date;type:datetime;not null;comment:发送时间" json:"date" validate:"required"`
}

// TableName 指定表名
func (Message) TableName() string {
	return "messages"
}
