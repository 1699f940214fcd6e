// Package dao 提供数据访问层的初始化
// 负责建立 MySQL 连接并自动迁移表结构
// 连接句柄由调用方（main）持有并注入 Repository 层，不做全局单例
package dao

import (
	"fmt"

	"kama_social_server/internal/config"
	"kama_social_server/internal/model"
	"kama_social_server/pkg/errorx"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Open 建立 MySQL 连接并迁移四张业务表
// 执行步骤：
//  1. 从配置构建 DSN（Data Source Name）连接字符串
//  2. 使用 GORM 建立数据库连接
//  3. 执行 AutoMigrate 自动迁移表结构
func Open(conf *config.MysqlConfig) (*gorm.DB, error) {
	// 格式：user:password@tcp(host:port)/database?params
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.User,
		conf.Password,
		conf.Host,
		conf.Port,
		conf.DatabaseName,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeDBError, "连接 MySQL 失败")
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Friendship{},
		&model.Request{},
		&model.Message{},
	); err != nil {
		return nil, errorx.Wrap(err, errorx.CodeDBError, "表结构迁移失败")
	}

	return db, nil
}
