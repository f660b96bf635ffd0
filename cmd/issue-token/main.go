package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/noah-isme/sma-schedule-api/internal/models"
	"github.com/noah-isme/sma-schedule-api/internal/service"
	"github.com/noah-isme/sma-schedule-api/pkg/config"
	"github.com/noah-isme/sma-schedule-api/pkg/logger"
)

// issue-token mints a bearer token signed with the configured JWT secret,
// for exercising the teacher schedule endpoints locally.
func main() {
	var (
		userID string
		role   string
	)
	flag.StringVar(&userID, "user", "", "User ID placed in the token (teacher ID for teachers)")
	flag.StringVar(&role, "role", string(models.RoleTeacher), "Role: ADMIN, TEACHER or STUDENT")
	flag.Parse()

	if userID == "" {
		log.Fatal("-user is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.Env == config.EnvProduction {
		log.Fatal("refusing to mint tokens in production")
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	sessions := service.NewSessionService(service.SessionConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Expiration: cfg.JWT.Expiration,
	}, logr)

	token, expires, err := sessions.IssueToken(userID, models.UserRole(strings.ToUpper(role)))
	if err != nil {
		log.Fatalf("failed to issue token: %v", err)
	}
	logr.Sugar().Infow("token issued", "user", userID, "role", strings.ToUpper(role), "expires_at", expires)
	fmt.Println(token)
}
