package handler

import (
	"github.com/inklog/internal/identity"
	"github.com/inklog/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	posts       *service.PostService
	comments    *service.CommentService
	tags        *service.TagService
	enricher    *service.Enricher
	environment string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, provider identity.Provider, environment string) *API {
	tagService := service.NewTagService(gdb)

	return &API{
		posts:       service.NewPostService(gdb, tagService),
		comments:    service.NewCommentService(gdb),
		tags:        tagService,
		enricher:    service.NewEnricher(gdb, provider),
		environment: environment,
	}
}
