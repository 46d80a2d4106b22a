package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inklog/internal/identity"
	"github.com/inklog/internal/service"
)

type createPostRequest struct {
	Title   string   `json:"title" binding:"required,max=100"`
	Content string   `json:"content" binding:"required,max=50000"`
	Tags    []string `json:"tags" binding:"dive,min=1,max=50"`
}

type updatePostRequest struct {
	Title   *string   `json:"title" binding:"omitnil,min=1,max=100"`
	Content *string   `json:"content" binding:"omitnil,min=1,max=50000"`
	Tags    *[]string `json:"tags" binding:"omitnil,dive,min=1,max=50"`
}

// isEmpty 报告补丁是否未携带任何字段。
func (r updatePostRequest) isEmpty() bool {
	return r.Title == nil && r.Content == nil && r.Tags == nil
}

// GetPosts 获取全部文章，按创建时间倒序，附带标签、评论与作者展示名。
func (a *API) GetPosts(c *gin.Context) {
	posts, err := a.posts.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, codeFetchPostsError, "Failed to fetch posts")
		return
	}

	views, err := a.enricher.EnrichPosts(c.Request.Context(), posts)
	if err != nil {
		respondError(c, http.StatusInternalServerError, codeFetchPostsError, "Failed to fetch posts")
		return
	}

	respondData(c, http.StatusOK, "Posts retrieved successfully", views)
}

// GetPost 获取单篇文章。
func (a *API) GetPost(c *gin.Context) {
	post, err := a.posts.Get(c.Param("postId"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, http.StatusNotFound, codePostNotFound, "Post not found")
			return
		}
		respondError(c, http.StatusInternalServerError, codeFetchPostError, "Failed to fetch post")
		return
	}

	view, err := a.enricher.EnrichPost(c.Request.Context(), post)
	if err != nil {
		respondError(c, http.StatusInternalServerError, codeFetchPostError, "Failed to fetch post")
		return
	}

	respondData(c, http.StatusOK, "Post retrieved successfully", view)
}

// CreatePost 创建文章并关联解析后的标签。
func (a *API) CreatePost(c *gin.Context) {
	callerID, ok := identity.Caller(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, codeUnauthorized, "Unauthorized - Authentication required")
		return
	}

	var req createPostRequest
	if !bindJSON(c, &req) {
		return
	}

	post, err := a.posts.Create(callerID, req.Title, req.Content, req.Tags)
	if err != nil {
		respondError(c, http.StatusInternalServerError, codeCreatePostError, "Failed to create post")
		return
	}

	view, err := a.enricher.ViewPost(post)
	if err != nil {
		respondError(c, http.StatusInternalServerError, codeCreatePostError, "Failed to create post")
		return
	}

	respondData(c, http.StatusCreated, "Post created successfully", view)
}

// UpdatePost 更新文章字段，仅限文章所有者。
func (a *API) UpdatePost(c *gin.Context) {
	callerID, ok := identity.Caller(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, codeUnauthorized, "Unauthorized - Authentication required")
		return
	}

	var req updatePostRequest
	if !bindJSON(c, &req) {
		return
	}

	if req.isEmpty() {
		respondError(c, http.StatusBadRequest, codeValidationError, "At least one field must be provided for update")
		return
	}

	patch := service.PostPatch{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	}

	post, err := a.posts.Update(c.Param("postId"), callerID, patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			respondError(c, http.StatusNotFound, codePostNotFound, "Post not found")
		case errors.Is(err, service.ErrNotPostOwner):
			respondError(c, http.StatusForbidden, codeForbidden, "Forbidden - You can only edit your own posts")
		default:
			respondError(c, http.StatusInternalServerError, codeUpdatePostError, "Failed to update post")
		}
		return
	}

	view, err := a.enricher.ViewPost(post)
	if err != nil {
		respondError(c, http.StatusInternalServerError, codeUpdatePostError, "Failed to update post")
		return
	}

	respondData(c, http.StatusOK, "Post updated successfully", view)
}

// DeletePost 删除文章及其评论与标签关联，仅限文章所有者。
func (a *API) DeletePost(c *gin.Context) {
	callerID, ok := identity.Caller(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, codeUnauthorized, "Unauthorized - Authentication required")
		return
	}

	if err := a.posts.Delete(c.Param("postId"), callerID); err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			respondError(c, http.StatusNotFound, codePostNotFound, "Post not found")
		case errors.Is(err, service.ErrNotPostOwner):
			respondError(c, http.StatusForbidden, codeForbidden, "Forbidden - You can only delete your own posts")
		default:
			respondError(c, http.StatusInternalServerError, codeDeletePostError, "Failed to delete post")
		}
		return
	}

	respondData(c, http.StatusOK, "Post deleted successfully", nil)
}
