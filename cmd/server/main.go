package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/inklog/internal/config"
	"github.com/inklog/internal/db"
	"github.com/inklog/internal/handler"
	"github.com/inklog/internal/identity"
	"github.com/inklog/internal/router"
	"github.com/joho/godotenv"
)

func main() {
	// .env 仅用于本地开发，缺失时静默忽略
	_ = godotenv.Load()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	gdb, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	provider := identity.NewClient(cfg.IdentityAPIURL, cfg.IdentityAPIKey)
	api := handler.NewAPI(gdb, provider, cfg.Environment)

	r := router.Setup(api, cfg)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
