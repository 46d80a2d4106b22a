package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr        string
	Port              string
	DatabasePath      string
	GinMode           string
	Environment       string
	CORSOrigins       []string
	IdentityAPIURL    string
	IdentityAPIKey    string
	IdentityJWTSecret string
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "3001"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "inklog.db"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	environment := strings.TrimSpace(os.Getenv("ENVIRONMENT"))
	if environment == "" {
		environment = "development"
	}

	corsOrigins := splitAndTrim(os.Getenv("CORS_ORIGINS"))
	if len(corsOrigins) == 0 {
		corsOrigins = []string{"http://localhost:3000"}
	}

	identityAPIURL := strings.TrimSpace(os.Getenv("IDENTITY_API_URL"))
	if identityAPIURL == "" {
		identityAPIURL = "https://api.clerk.com/v1"
	}

	return AppConfig{
		ListenAddr:        listenAddr,
		Port:              port,
		DatabasePath:      databasePath,
		GinMode:           ginMode,
		Environment:       environment,
		CORSOrigins:       corsOrigins,
		IdentityAPIURL:    identityAPIURL,
		IdentityAPIKey:    strings.TrimSpace(os.Getenv("IDENTITY_API_KEY")),
		IdentityJWTSecret: strings.TrimSpace(os.Getenv("IDENTITY_JWT_SECRET")),
	}
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		values = append(values, trimmed)
	}
	return values
}
