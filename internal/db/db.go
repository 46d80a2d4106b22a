package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open 建立数据库连接并执行自动迁移。
// databasePath 为空时将回退到默认值 inklog.db。
func Open(databasePath string) (*gorm.DB, error) {
	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = "inklog.db"
	}

	if err := ensureParentDir(path); err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return gdb, Migrate(gdb)
}

// Migrate 为核心模型创建表结构。级联删除依赖 sqlite 的外键约束，
// 因此必须先开启 foreign_keys 开关。
func Migrate(gdb *gorm.DB) error {
	if err := gdb.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return err
	}

	if err := gdb.SetupJoinTable(&Post{}, "Tags", &PostTag{}); err != nil {
		return err
	}
	if err := gdb.SetupJoinTable(&Tag{}, "Posts", &PostTag{}); err != nil {
		return err
	}

	return gdb.AutoMigrate(
		&Post{},
		&Tag{},
		&Comment{},
		&PostTag{},
	)
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
