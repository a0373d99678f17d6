package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/auth"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/config"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/http/handlers"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/http/middleware"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/models"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/repo"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/services"
)

type Dependencies struct {
	Config         *config.Config
	UserRepo       repo.UserRepository
	TokenIssuer    *auth.TokenIssuer
	AuthService    *services.AuthService
	UserService    *services.UserService
	ContestService *services.ContestService
	Logger         *slog.Logger
	RateLimiter    *middleware.RateLimiter
}

// NewRouter builds the route table. Each protected registration names its
// required role once; this is the only place access rules live.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(deps.Config.AllowedOrigins))

	authHandler := handlers.NewAuthHandler(deps.AuthService)
	userHandler := handlers.NewUserHandler(deps.UserService)
	contestHandler := handlers.NewContestHandler(deps.ContestService)

	authenticate := middleware.Authenticate(deps.TokenIssuer, deps.UserRepo)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	router.GET("/healthz", handlers.Health)

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Use(deps.RateLimiter.Middleware())
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/logout", authHandler.Logout)
		authGroup.POST("/logout", authHandler.Logout)
	}

	users := api.Group("/users", authenticate, adminOnly)
	{
		users.GET("", userHandler.List)
		users.PUT("/:id/status", userHandler.UpdateStatus)
	}

	contests := api.Group("/contests", authenticate)
	{
		contests.POST("", adminOnly, contestHandler.Create)
		contests.GET("/admin", adminOnly, contestHandler.ListAdmin)
		contests.PUT("/:id/status", adminOnly, contestHandler.UpdateStatus)
		contests.PUT("/:id/assign", adminOnly, contestHandler.AssignUsers)
		contests.GET("/user", contestHandler.ListForUser)
	}

	return router
}
