package service

import (
	"errors"

	"github.com/inklog/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotPostOwner = errors.New("caller does not own the post")
)

// PostService wraps post related database operations.
type PostService struct {
	db   *gorm.DB
	tags *TagService
}

// PostPatch represents the optional fields of a post update. A nil field is
// left untouched; a non-nil Tags slice (even empty) replaces every tag link.
type PostPatch struct {
	Title   *string
	Content *string
	Tags    *[]string
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB, tags *TagService) *PostService {
	return &PostService{db: gdb, tags: tags}
}

// Create 持久化文章并在同一事务内解析、关联标签。
func (s *PostService) Create(ownerID, title, content string, tagNames []string) (*db.Post, error) {
	post := db.Post{
		UserID:  ownerID,
		Title:   title,
		Content: content,
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			return err
		}

		tags, err := s.tags.ResolveNames(tx, tagNames)
		if err != nil {
			return err
		}

		if len(tags) > 0 {
			if err := tx.Model(&post).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}

		return tx.Preload("Tags").First(&post, "id = ?", post.ID).Error
	}); err != nil {
		return nil, err
	}

	return &post, nil
}

// ListAll returns all posts ordered by created time descending.
func (s *PostService) ListAll() ([]db.Post, error) {
	var posts []db.Post
	if err := s.db.Preload("Tags").Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Get fetches a post by id with tags preloaded.
func (s *PostService) Get(id string) (*db.Post, error) {
	var post db.Post
	if err := s.db.Preload("Tags").First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Update 应用补丁字段并刷新更新时间。存在性检查先于归属检查；
// 提供标签列表（哪怕为空）时整体替换标签关联，未提供则保持原样。
func (s *PostService) Update(id, callerID string, patch PostPatch) (*db.Post, error) {
	var post db.Post

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		if post.UserID != callerID {
			return ErrNotPostOwner
		}

		if patch.Title != nil {
			post.Title = *patch.Title
		}
		if patch.Content != nil {
			post.Content = *patch.Content
		}

		// Save always rewrites updated_at, even for a tags-only patch.
		if err := tx.Save(&post).Error; err != nil {
			return err
		}

		if patch.Tags != nil {
			tags, err := s.tags.ResolveNames(tx, *patch.Tags)
			if err != nil {
				return err
			}
			if len(tags) == 0 {
				if err := tx.Model(&post).Association("Tags").Clear(); err != nil {
					return err
				}
			} else if err := tx.Model(&post).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}

		return tx.Preload("Tags").First(&post, "id = ?", post.ID).Error
	}); err != nil {
		return nil, err
	}

	return &post, nil
}

// Delete 删除文章及其全部评论与标签关联。依赖行在同一事务内显式清理，
// 调用方观察不到悬挂的依赖行。
func (s *PostService) Delete(id, callerID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var post db.Post
		if err := tx.First(&post, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		if post.UserID != callerID {
			return ErrNotPostOwner
		}

		if err := tx.Where("post_id = ?", id).Delete(&db.PostTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&db.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}
