package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment 定义了评论模型，随父文章级联删除。
type Comment struct {
	ID        string `gorm:"type:text;primaryKey"`
	PostID    string `gorm:"type:text;not null;index"`
	UserID    string `gorm:"type:text;not null"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate assigns a uuid primary key when none was provided.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
