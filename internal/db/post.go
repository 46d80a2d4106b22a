package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post 定义了文章模型。作者来自外部身份服务，仅保存其不透明 ID。
type Post struct {
	ID        string `gorm:"type:text;primaryKey"`
	UserID    string `gorm:"type:text;not null;index"`
	Title     string `gorm:"size:100;not null"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Tags      []Tag     `gorm:"many2many:post_tags;constraint:OnDelete:CASCADE;"`
	Comments  []Comment `gorm:"constraint:OnDelete:CASCADE;"`
}

// BeforeCreate assigns a uuid primary key when none was provided.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
