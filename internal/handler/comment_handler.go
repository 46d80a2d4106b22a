package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inklog/internal/identity"
	"github.com/inklog/internal/service"
)

type createCommentRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}

// CreateComment 在文章下新增评论。
func (a *API) CreateComment(c *gin.Context) {
	callerID, ok := identity.Caller(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, codeUnauthorized, "Unauthorized - Authentication required")
		return
	}

	var req createCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := a.comments.Create(c.Param("postId"), callerID, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, http.StatusNotFound, codePostNotFound, "Post not found")
			return
		}
		respondError(c, http.StatusInternalServerError, codeCreateCommentError, "Failed to create comment")
		return
	}

	respondData(c, http.StatusCreated, "Comment created successfully", service.ViewComment(*comment))
}

// GetComments 获取文章的全部评论，按创建时间正序，附带作者展示名。
func (a *API) GetComments(c *gin.Context) {
	comments, err := a.comments.ListByPost(c.Param("postId"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, http.StatusNotFound, codePostNotFound, "Post not found")
			return
		}
		respondError(c, http.StatusInternalServerError, codeFetchCommentsError, "Failed to fetch comments")
		return
	}

	views, err := a.enricher.EnrichComments(c.Request.Context(), comments)
	if err != nil {
		respondError(c, http.StatusInternalServerError, codeFetchCommentsError, "Failed to fetch comments")
		return
	}

	respondData(c, http.StatusOK, "Comments retrieved successfully", views)
}
