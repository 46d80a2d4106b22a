package db

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostTag 是文章与标签的连接表，随任一父行级联删除。
type PostTag struct {
	ID     string `gorm:"type:text;primaryKey"`
	PostID string `gorm:"type:text;not null;index"`
	TagID  uint   `gorm:"not null;index"`
}

// BeforeCreate assigns a uuid primary key when none was provided.
func (pt *PostTag) BeforeCreate(tx *gorm.DB) error {
	if pt.ID == "" {
		pt.ID = uuid.NewString()
	}
	return nil
}
