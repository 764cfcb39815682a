package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// SchemaMigration 已应用的迁移记录
type SchemaMigration struct {
	Version   int       `gorm:"primarykey"`
	Name      string    `gorm:"size:100;not null"`
	AppliedAt time.Time `gorm:"not null"`
}

// TableName 指定表名
func (SchemaMigration) TableName() string {
	return "schema_migrations"
}

// Migration 单个版本迁移
// Version 必须从1开始连续递增
type Migration struct {
	Version int
	Name    string
	Migrate func(db *gorm.DB) error
}

// migrations 按版本排序的迁移列表
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_planner_tables",
		Migrate: func(db *gorm.DB) error {
			return db.Migrator().AutoMigrate(&User{}, &Task{}, &Note{})
		},
	},
	{
		Version: 2,
		Name:    "ensure_note_scope_index",
		Migrate: func(db *gorm.DB) error {
			// AutoMigrate 已按模型标签建索引，这里显式兜底，
			// 保证唯一索引作为独立迁移步骤被记录
			if db.Migrator().HasIndex(&Note{}, "idx_notes_scope") {
				return nil
			}
			return db.Migrator().CreateIndex(&Note{}, "idx_notes_scope")
		},
	},
}

// RunMigrations 在启动阶段一次性应用未执行的迁移
// 请求处理路径不再触碰表结构
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return fmt.Errorf("初始化迁移记录表失败: %w", err)
	}

	var current int
	if err := db.Model(&SchemaMigration{}).
		Select("COALESCE(MAX(version), 0)").Scan(&current).Error; err != nil {
		return fmt.Errorf("读取迁移版本失败: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		if err := m.Migrate(db); err != nil {
			return fmt.Errorf("迁移 %d(%s) 失败: %w", m.Version, m.Name, err)
		}

		record := SchemaMigration{Version: m.Version, Name: m.Name, AppliedAt: time.Now()}
		if err := db.Create(&record).Error; err != nil {
			return fmt.Errorf("记录迁移 %d 失败: %w", m.Version, err)
		}
	}

	return nil
}
