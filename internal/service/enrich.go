package service

import (
	"context"
	"time"

	"github.com/inklog/internal/db"
	"github.com/inklog/internal/identity"
	"gorm.io/gorm"
)

// TagView is the wire shape of a tag attached to a post.
type TagView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CommentView is a comment annotated with its author's display name.
type CommentView struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	User      string    `json:"user"`
}

// PostView is a post annotated with its tags, comments and author display name.
type PostView struct {
	ID          string        `json:"id"`
	UserID      string        `json:"userId"`
	Title       string        `json:"title"`
	Content     string        `json:"content"`
	ContentHTML string        `json:"contentHtml"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	Tags        []TagView     `json:"tags"`
	Comments    []CommentView `json:"comments"`
	User        string        `json:"user"`
}

// Enricher 组装读取响应：为文章挂上标签、评论，并把作者 ID 解析为展示名。
// 用户目录每个请求只拉取一次，解析结果仅在该请求内复用。
type Enricher struct {
	db       *gorm.DB
	provider identity.Provider
}

// NewEnricher creates an Enricher backed by the given store and provider.
func NewEnricher(gdb *gorm.DB, provider identity.Provider) *Enricher {
	return &Enricher{db: gdb, provider: provider}
}

// directory maps provider user ids to display names for one request.
type directory map[string]string

func (d directory) displayName(userID string) string {
	if name, ok := d[userID]; ok {
		return name
	}
	// 目录中没有对应用户时退回原始 ID，绝不报错。
	return userID
}

func (e *Enricher) loadDirectory(ctx context.Context) (directory, error) {
	users, err := e.provider.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	dir := make(directory, len(users))
	for _, user := range users {
		dir[user.ID] = user.DisplayName()
	}
	return dir, nil
}

// EnrichPosts annotates a set of posts in one pass over the user directory.
func (e *Enricher) EnrichPosts(ctx context.Context, posts []db.Post) ([]PostView, error) {
	dir, err := e.loadDirectory(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]PostView, 0, len(posts))
	for i := range posts {
		view, err := e.buildPostView(&posts[i], dir)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// EnrichPost annotates a single post.
func (e *Enricher) EnrichPost(ctx context.Context, post *db.Post) (*PostView, error) {
	dir, err := e.loadDirectory(ctx)
	if err != nil {
		return nil, err
	}

	view, err := e.buildPostView(post, dir)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// ViewPost builds a post view without consulting the user directory.
// 写路径使用：身份服务故障不应使一次已成功的变更返回失败，
// 作者名按回退语义使用原始 ID。
func (e *Enricher) ViewPost(post *db.Post) (*PostView, error) {
	view, err := e.buildPostView(post, directory{})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// ViewComment builds a comment view without a directory lookup.
func ViewComment(comment db.Comment) CommentView {
	return buildCommentViews([]db.Comment{comment}, directory{})[0]
}

// EnrichComments annotates comments with their authors' display names.
func (e *Enricher) EnrichComments(ctx context.Context, comments []db.Comment) ([]CommentView, error) {
	dir, err := e.loadDirectory(ctx)
	if err != nil {
		return nil, err
	}
	return buildCommentViews(comments, dir), nil
}

func (e *Enricher) buildPostView(post *db.Post, dir directory) (PostView, error) {
	var comments []db.Comment
	if err := e.db.Where("post_id = ?", post.ID).Order("created_at asc").Find(&comments).Error; err != nil {
		return PostView{}, err
	}

	tags := make([]TagView, 0, len(post.Tags))
	for _, tag := range post.Tags {
		tags = append(tags, TagView{ID: tag.ID, Name: tag.Name})
	}

	return PostView{
		ID:          post.ID,
		UserID:      post.UserID,
		Title:       post.Title,
		Content:     post.Content,
		ContentHTML: renderContentHTML(post.Content),
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
		Tags:        tags,
		Comments:    buildCommentViews(comments, dir),
		User:        dir.displayName(post.UserID),
	}, nil
}

func buildCommentViews(comments []db.Comment, dir directory) []CommentView {
	views := make([]CommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, CommentView{
			ID:        comment.ID,
			PostID:    comment.PostID,
			UserID:    comment.UserID,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
			UpdatedAt: comment.UpdatedAt,
			User:      dir.displayName(comment.UserID),
		})
	}
	return views
}
