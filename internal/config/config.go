package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig collects everything the server needs at boot time.
type AppConfig struct {
	ListenAddr    string
	Port          string
	DatabasePath  string
	SessionSecret string
	GinMode       string
	AppEnv        string
	RedisAddr     string
	RedisPassword string
	SiteBaseURL   string
	AdminUserName string
	AdminPassword string
	AIAPIKey      string
	AIBaseURL     string
	AIModel       string
	TemplateGlob  string
	StaticDir     string
}

// Load reads the application configuration from environment variables,
// falling back to safe defaults for anything missing.
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "virtualdesk.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "virtualdesk-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "production"
	}

	siteBaseURL := strings.TrimSpace(os.Getenv("SITE_BASE_URL"))
	if siteBaseURL == "" {
		siteBaseURL = "https://virtualdesk.in"
	}

	templateGlob := strings.TrimSpace(os.Getenv("TEMPLATE_GLOB"))
	if templateGlob == "" {
		templateGlob = "web/template/*.html"
	}

	staticDir := strings.TrimSpace(os.Getenv("STATIC_DIR"))
	if staticDir == "" {
		staticDir = "web/static"
	}

	aiBaseURL := strings.TrimSpace(os.Getenv("AI_BASE_URL"))
	if aiBaseURL == "" {
		aiBaseURL = "https://api.openai.com/v1"
	}

	aiModel := strings.TrimSpace(os.Getenv("AI_MODEL"))
	if aiModel == "" {
		aiModel = "gpt-4o-mini"
	}

	return AppConfig{
		ListenAddr:    listenAddr,
		Port:          port,
		DatabasePath:  databasePath,
		SessionSecret: sessionSecret,
		GinMode:       ginMode,
		AppEnv:        appEnv,
		RedisAddr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword: strings.TrimSpace(os.Getenv("REDIS_PASSWORD")),
		SiteBaseURL:   siteBaseURL,
		AdminUserName: strings.TrimSpace(os.Getenv("ADMIN_USER_NAME")),
		AdminPassword: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),
		AIAPIKey:      strings.TrimSpace(os.Getenv("AI_API_KEY")),
		AIBaseURL:     aiBaseURL,
		AIModel:       aiModel,
		TemplateGlob:  templateGlob,
		StaticDir:     staticDir,
	}
}
