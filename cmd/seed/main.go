// Seeds the initial admin account and the stock categories. Safe to run
// repeatedly: existing rows are left alone.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/yungbote/cyberquiz-backend/internal/data/db"
	"github.com/yungbote/cyberquiz-backend/internal/data/repos"
	"github.com/yungbote/cyberquiz-backend/internal/domain"
	"github.com/yungbote/cyberquiz-backend/internal/pkg/logger"
	"github.com/yungbote/cyberquiz-backend/internal/services"
	"github.com/yungbote/cyberquiz-backend/internal/utils"
)

var stockCategories = []domain.Category{
	{ID: "web-security", Name: "Web Security", Slug: "web-security", Description: "Injection, auth hardening, browser attacks."},
	{ID: "iot-security", Name: "IoT Security", Slug: "iot-security", Description: "Firmware, radio protocols, and embedded risks."},
	{ID: "hardware-security", Name: "Hardware Security", Slug: "hardware-security", Description: "Side-channel analysis, tamper resistance, boot chains."},
	{ID: "cryptography", Name: "Cryptography", Slug: "cryptography", Description: "Protocols, key management, and practical crypto design."},
	{ID: "social-engineering", Name: "Social Engineering", Slug: "social-engineering", Description: "Human-layer attacks and defensive playbooks."},
}

func main() {
	_ = godotenv.Load()

	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	adminEmail := utils.GetEnv("ADMIN_EMAIL", "", log)
	adminUsername := utils.GetEnv("ADMIN_USERNAME", "", log)
	adminPassword := utils.GetEnv("ADMIN_PASSWORD", "", log)
	if adminEmail == "" || adminUsername == "" || adminPassword == "" {
		log.Fatal("ADMIN_EMAIL, ADMIN_USERNAME, and ADMIN_PASSWORD are required")
	}

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("init postgres", "error", err)
	}
	gdb := pg.DB()
	if err := db.AutoMigrate(gdb); err != nil {
		log.Fatal("postgres automigrate", "error", err)
	}

	ctx := context.Background()
	userRepo := repos.NewUserRepo(gdb, log)
	sessionRepo := repos.NewSessionRepo(gdb, log)
	quizRepo := repos.NewQuizRepo(gdb, log)
	categoryRepo := repos.NewCategoryRepo(gdb, log)
	userService := services.NewUserService(gdb, log, userRepo, sessionRepo, quizRepo)

	exists, err := userRepo.EmailExists(ctx, nil, adminEmail)
	if err != nil {
		log.Fatal("check admin email", "error", err)
	}
	if exists {
		log.Info("admin already exists, skipping", "email", adminEmail)
	} else {
		admin, err := userService.CreateUser(ctx, services.CreateUserInput{
			Email:    adminEmail,
			Username: adminUsername,
			Password: adminPassword,
		}, domain.RoleAdmin)
		if err != nil {
			log.Fatal("create admin", "error", err)
		}
		log.Info("admin created", "user_id", admin.ID)
	}

	for _, category := range stockCategories {
		taken, err := categoryRepo.Exists(ctx, nil, category.ID)
		if err != nil {
			log.Fatal("check category", "slug", category.ID, "error", err)
		}
		if taken {
			continue
		}
		if _, err := categoryRepo.Create(ctx, nil, &category); err != nil {
			log.Fatal("create category", "slug", category.ID, "error", err)
		}
		log.Info("category created", "slug", category.ID)
	}
}
