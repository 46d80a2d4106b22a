package service

import (
	"errors"

	"github.com/inklog/internal/db"
	"gorm.io/gorm"
)

// CommentService wraps comment related database operations.
type CommentService struct {
	db *gorm.DB
}

// NewCommentService creates a CommentService instance.
func NewCommentService(gdb *gorm.DB) *CommentService {
	return &CommentService{db: gdb}
}

// Create 在文章下新增一条评论。父文章不存在时返回 ErrPostNotFound，
// 不会留下孤儿评论。
func (s *CommentService) Create(postID, authorID, content string) (*db.Comment, error) {
	if err := s.ensurePostExists(postID); err != nil {
		return nil, err
	}

	comment := db.Comment{
		PostID:  postID,
		UserID:  authorID,
		Content: content,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByPost returns the comments of a post ordered by created time ascending.
func (s *CommentService) ListByPost(postID string) ([]db.Comment, error) {
	if err := s.ensurePostExists(postID); err != nil {
		return nil, err
	}

	var comments []db.Comment
	if err := s.db.Where("post_id = ?", postID).Order("created_at asc").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentService) ensurePostExists(postID string) error {
	var post db.Post
	if err := s.db.Select("id").First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}
