package app

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/cyberquiz-backend/internal/http/handlers"
	"github.com/yungbote/cyberquiz-backend/internal/http/middleware"
)

type routerConfig struct {
	cfg                Config
	authMiddleware     *middleware.AuthMiddleware
	authHandler        *handlers.AuthHandler
	categoryHandler    *handlers.CategoryHandler
	quizHandler        *handlers.QuizHandler
	userHandler        *handlers.UserHandler
	leaderboardHandler *handlers.LeaderboardHandler
}

func wireRouter(rc routerConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     rc.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	router.Use(rc.authMiddleware.Resolve())

	router.GET("/healthz", handlers.Health)

	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", rc.authHandler.SignUp)
	auth.POST("/signin", rc.authHandler.SignIn)
	auth.POST("/signout", rc.authHandler.SignOut)
	auth.GET("/me", rc.authHandler.Me)

	api.GET("/categories", rc.categoryHandler.List)
	api.GET("/categories/:categoryId", rc.categoryHandler.Get)
	api.GET("/leaderboard", rc.leaderboardHandler.Top)

	quizzes := api.Group("/quizzes")
	quizzes.GET("", rc.quizHandler.List)
	quizzes.POST("/submit", rc.authMiddleware.RequireAuth(), rc.quizHandler.Submit)
	quizzes.GET("/submissions", rc.authMiddleware.RequireAuth(), rc.quizHandler.Submissions)
	quizzes.GET("/:quizId", rc.quizHandler.Get)

	admin := api.Group("/admin", rc.authMiddleware.RequireAdmin())
	admin.GET("/pending", rc.quizHandler.Pending)
	admin.POST("/pending/:quizId", rc.quizHandler.Moderate)
	admin.PATCH("/pending/:quizId", rc.quizHandler.UpdatePending)
	admin.POST("/quizzes", rc.quizHandler.CreateAsAdmin)
	admin.DELETE("/quizzes/:quizId", rc.quizHandler.Delete)
	admin.POST("/categories", rc.categoryHandler.Create)
	admin.DELETE("/categories/:categoryId", rc.categoryHandler.Delete)
	admin.GET("/users", rc.userHandler.List)
	admin.POST("/users", rc.userHandler.Create)
	admin.DELETE("/users/:userId", rc.userHandler.Delete)

	return router
}
