package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetTags 获取标签列表，按名称升序。
func (a *API) GetTags(c *gin.Context) {
	tags, err := a.tags.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, codeFetchTagsError, "Failed to fetch tags")
		return
	}

	response := make([]gin.H, 0, len(tags))
	for _, tag := range tags {
		response = append(response, gin.H{
			"id":        tag.ID,
			"name":      tag.Name,
			"createdAt": tag.CreatedAt,
			"updatedAt": tag.UpdatedAt,
		})
	}

	respondData(c, http.StatusOK, "Tags retrieved successfully", response)
}
