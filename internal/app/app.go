package app

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/cyberquiz-backend/internal/data/db"
	"github.com/yungbote/cyberquiz-backend/internal/data/repos"
	"github.com/yungbote/cyberquiz-backend/internal/http/handlers"
	"github.com/yungbote/cyberquiz-backend/internal/http/middleware"
	"github.com/yungbote/cyberquiz-backend/internal/pkg/logger"
	"github.com/yungbote/cyberquiz-backend/internal/services"
)

type App struct {
	Log    *logger.Logger
	DB     *gorm.DB
	Router *gin.Engine
	Cfg    Config
}

type Repos struct {
	User        repos.UserRepo
	Session     repos.SessionRepo
	Category    repos.CategoryRepo
	Quiz        repos.QuizRepo
	Leaderboard repos.LeaderboardRepo
}

type Services struct {
	Auth        services.AuthService
	User        services.UserService
	Catalog     services.CatalogService
	Quiz        services.QuizService
	Leaderboard services.LeaderboardService
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cfg := LoadConfig(log)

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	gdb := pg.DB()
	if err := db.AutoMigrate(gdb); err != nil {
		log.Sync()
		return nil, fmt.Errorf("postgres automigrate: %w", err)
	}

	reposet := wireRepos(gdb, log)
	serviceset := wireServices(gdb, log, cfg, reposet)

	authMiddleware := middleware.NewAuthMiddleware(log, serviceset.Auth)
	authHandler := handlers.NewAuthHandler(log, serviceset.Auth, cfg.SecureCookies)
	categoryHandler := handlers.NewCategoryHandler(log, serviceset.Catalog)
	quizHandler := handlers.NewQuizHandler(log, serviceset.Quiz)
	userHandler := handlers.NewUserHandler(log, serviceset.User)
	leaderboardHandler := handlers.NewLeaderboardHandler(log, serviceset.Leaderboard)

	router := wireRouter(routerConfig{
		cfg:                cfg,
		authMiddleware:     authMiddleware,
		authHandler:        authHandler,
		categoryHandler:    categoryHandler,
		quizHandler:        quizHandler,
		userHandler:        userHandler,
		leaderboardHandler: leaderboardHandler,
	})

	return &App{
		Log:    log,
		DB:     gdb,
		Router: router,
		Cfg:    cfg,
	}, nil
}

func (a *App) Run() error {
	a.Log.Info("starting http server", "addr", a.Cfg.HTTPAddr)
	return a.Router.Run(a.Cfg.HTTPAddr)
}

func wireRepos(gdb *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		User:        repos.NewUserRepo(gdb, log),
		Session:     repos.NewSessionRepo(gdb, log),
		Category:    repos.NewCategoryRepo(gdb, log),
		Quiz:        repos.NewQuizRepo(gdb, log),
		Leaderboard: repos.NewLeaderboardRepo(gdb, log),
	}
}

func wireServices(gdb *gorm.DB, log *logger.Logger, cfg Config, r Repos) Services {
	userService := services.NewUserService(gdb, log, r.User, r.Session, r.Quiz)
	return Services{
		Auth:        services.NewAuthService(gdb, log, r.User, r.Session, userService, cfg.SessionTTL),
		User:        userService,
		Catalog:     services.NewCatalogService(gdb, log, r.Category, r.Quiz),
		Quiz:        services.NewQuizService(gdb, log, r.Quiz, r.Category),
		Leaderboard: services.NewLeaderboardService(gdb, log, r.Leaderboard),
	}
}
