package db

import "time"

// Tag 定义了标签模型。标签按规范化名称全局唯一，被多篇文章共享。
type Tag struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:50;uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Posts     []Post `gorm:"many2many:post_tags;"`
}
