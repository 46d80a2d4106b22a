package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Error codes surfaced in the failure envelope.
const (
	codeValidationError    = "VALIDATION_ERROR"
	codeUnauthorized       = "UNAUTHORIZED"
	codeForbidden          = "FORBIDDEN"
	codePostNotFound       = "POST_NOT_FOUND"
	codeRouteNotFound      = "ROUTE_NOT_FOUND"
	codeFetchPostsError    = "FETCH_POSTS_ERROR"
	codeFetchPostError     = "FETCH_POST_ERROR"
	codeCreatePostError    = "CREATE_POST_ERROR"
	codeUpdatePostError    = "UPDATE_POST_ERROR"
	codeDeletePostError    = "DELETE_POST_ERROR"
	codeCreateCommentError = "CREATE_COMMENT_ERROR"
	codeFetchCommentsError = "FETCH_COMMENTS_ERROR"
	codeFetchTagsError     = "FETCH_TAGS_ERROR"
	codeInternalError      = "INTERNAL_SERVER_ERROR"
)

type errorBody struct {
	Message    string `json:"message"`
	Code       string `json:"code"`
	StatusCode int    `json:"statusCode"`
}

func respondData(c *gin.Context, status int, message string, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": errorBody{
			Message:    message,
			Code:       code,
			StatusCode: status,
		},
	})
}

// bindJSON 校验请求体，失败时按约定返回 400 与具体违反的约束。
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, codeValidationError, validationMessage(err))
		return false
	}
	return true
}

// RespondRouteNotFound is the NoRoute fallback for unmatched paths.
func RespondRouteNotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, codeRouteNotFound, "Route not found")
}

func validationMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return "Invalid request payload"
	}

	fe := fieldErrors[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be %s characters or less", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
