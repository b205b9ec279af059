package api

import (
	"alcyxob/exercise-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RouterOptions carries the non-service settings of the route table.
type RouterOptions struct {
	AllowedOrigins []string
	PublicDir      string // served under /public; skipped when empty
	Health         HealthCheck
}

// NewRouter builds a gin engine with the service middleware stack.
func NewRouter(logger *zap.Logger, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		LoggerMiddleware(logger),
		MetricsMiddleware(),
		CORSMiddleware(opts.AllowedOrigins),
	)
	return router
}

func SetupRoutes(
	router *gin.Engine,
	opts RouterOptions,
	userService service.UserService,
	exerciseService service.ExerciseService,
	logService service.LogService,
	landingHandler *LandingHandler,
) {
	userHandler := NewUserHandler(userService)
	exerciseHandler := NewExerciseHandler(exerciseService, logService)

	router.GET("/healthz", HealthHandler(opts.Health))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if landingHandler != nil {
		router.GET("/", landingHandler.Index)
	}
	if opts.PublicDir != "" {
		router.Static("/public", opts.PublicDir)
	}

	users := router.Group("/api/users")
	{
		users.GET("", userHandler.ListUsers)
		users.POST("", userHandler.CreateUser)
		users.POST("/:id/exercises", exerciseHandler.CreateExercise)
		users.GET("/:id/logs", exerciseHandler.GetLog)
	}
}
