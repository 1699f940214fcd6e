// Package model 定义数据库实体模型
// 本文件定义好友关系模型
package model

import "time"

// Friendship 好友关系模型
// 对应数据库 friendships 表
// 两个用户 id 是无序对：同一对用户无论方向只允许存在一条记录，
// 该不变式由 Service 层在创建前检查
type Friendship struct {
	// ID 关系唯一标识
	ID int64 `gorm:"column:id;primaryKey;autoIncrement;comment:好友关系id" json:"id"`

	// User1ID 用户1 id
	User1ID int64 `gorm:"column:user_id1;index;not null;comment:用户1id" json:"user1Id" validate:"required"`

	// User2ID 用户2 id，不能与 User1ID 相同
	User2ID int64 `gorm:"column:user_id2;index;not null;comment:用户2id" json:"user2Id" validate:"required,nefield=User1ID"`

	// FriendsFrom 成为好友的时间，在创建时写入，更新时不会改写
	FriendsFrom time.Time `gorm:"column:friends_from;type:datetime;not null;comment:成为好友时间" json:"friendsFrom"`
}

// TableName 指定表名
func (Friendship) TableName() string {
	return "friendships"
}

// Involves 判断该好友关系是否涉及指定用户
func (f *Friendship) Involves(userID int64) bool {
	return f.User1ID == userID || f.User2ID == userID
}

// Connects 判断该好友关系是否连接两个指定用户（方向无关）
func (f *Friendship) Connects(a, b int64) bool {
	return (f.User1ID == a && f.User2ID == b) || (f.User1ID == b && f.User2ID == a)
}
