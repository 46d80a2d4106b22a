package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/inklog/internal/config"
	"github.com/inklog/internal/handler"
	"github.com/inklog/internal/identity"
)

// Setup 配置 Gin 引擎和路由。
func Setup(api *handler.API, cfg config.AppConfig) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "x-user-id"},
		AllowCredentials: true,
	}))

	// 身份中间件只负责解码调用者身份，是否要求认证由各 handler 决定
	r.Use(identity.Middleware(cfg.IdentityJWTSecret))

	r.GET("/health", api.Health)

	apiGroup := r.Group("/api")
	{
		posts := apiGroup.Group("/posts")
		{
			posts.GET("", api.GetPosts)
			posts.POST("", api.CreatePost)
			posts.GET("/:postId", api.GetPost)
			posts.PUT("/:postId", api.UpdatePost)
			posts.DELETE("/:postId", api.DeletePost)

			posts.POST("/:postId/comments", api.CreateComment)
			posts.GET("/:postId/comments", api.GetComments)
		}

		apiGroup.GET("/tags", api.GetTags)
	}

	r.NoRoute(handler.RespondRouteNotFound)

	return r
}
