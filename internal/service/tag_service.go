package service

import (
	"errors"
	"strings"

	"github.com/inklog/internal/db"
	"gorm.io/gorm"
)

// TagService wraps tag related operations.
type TagService struct {
	db *gorm.DB
}

// NewTagService creates a TagService instance.
func NewTagService(gdb *gorm.DB) *TagService {
	return &TagService{db: gdb}
}

// NormalizeTagName 将标签输入归一为规范存储形式：去除首尾空白并转小写。
func NormalizeTagName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// List returns all tags ordered by name ascending.
func (s *TagService) List() ([]db.Tag, error) {
	var tags []db.Tag
	if err := s.db.Order("name asc").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// ResolveNames 将一组原始标签名解析为标签行，按需惰性创建。
// 同一调用内归一后重复的名称只解析一次，空名称被跳过。
// 必须在调用方提供的事务中执行，保证与文章写入同生共死。
func (s *TagService) ResolveNames(tx *gorm.DB, names []string) ([]db.Tag, error) {
	resolved := make([]db.Tag, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	for _, raw := range names {
		name := NormalizeTagName(raw)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		tag, err := resolveOne(tx, name)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, *tag)
	}

	return resolved, nil
}

// resolveOne 执行先查后插。唯一索引兜底并发下的首次创建竞争：
// 插入失败时重查一次，命中则复用已有行。
func resolveOne(tx *gorm.DB, name string) (*db.Tag, error) {
	var existing db.Tag
	err := tx.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag := db.Tag{Name: name}
	if createErr := tx.Create(&tag).Error; createErr != nil {
		if retryErr := tx.Where("name = ?", name).First(&existing).Error; retryErr == nil {
			return &existing, nil
		}
		return nil, createErr
	}

	return &tag, nil
}
