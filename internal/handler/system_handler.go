package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health 健康检查端点，不走统一响应信封。
func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "OK",
		"message":     "Server is running",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": a.environment,
	})
}
