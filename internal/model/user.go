// Package model 定义数据库实体模型
// 本文件定义用户模型，包含用户基本资料和登录凭证
package model

// User 用户模型
// 对应数据库 users 表
// 密码按原样存储明文，校验规则直接作用于明文长度
type User struct {
	// ID 用户唯一标识，由 Service 层计数器分配，数据库自增作为兜底
	ID int64 `gorm:"column:id;primaryKey;autoIncrement;comment:用户id" json:"id"`

	// FirstName 名，只允许字母，最长 20 字符
	FirstName string `gorm:"column:first_name;type:varchar(20);not null;comment:名" json:"firstName" validate:"required,alpha,max=20"`

	// LastName 姓，只允许字母，最长 20 字符
	LastName string `gorm:"column:last_name;type:varchar(20);not null;comment:姓" json:"lastName" validate:"required,alpha,max=20"`

	// Username 用户名，5-20 字符
	// 业务上要求唯一，但唯一性由调用方在注册前通过 FindUserByUsername 检查
	Username string `gorm:"column:username;index;type:varchar(20);not null;comment:用户名" json:"username" validate:"required,min=5,max=20"`

	// Password 密码，5-20 字符
	Password string `gorm:"column:password;type:varchar(20);not null;comment:密码" json:"-" validate:"required,min=5,max=20"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
