package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskflow/internal/adapter/gin/handler"
	"taskflow/internal/adapter/gin/middleware"
	"taskflow/pkg/token"
)

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	authHandler *handler.AuthHandler,
	taskHandler *handler.TaskHandler,
	tokens *token.Manager,
	rateLimiter *middleware.RateLimiter,
	corsAllowOrigins []string,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS(corsAllowOrigins))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "taskflow",
		})
	})

	// Credential endpoints are rate limited per client IP.
	limited := rateLimiter.Handler()
	router.POST("/register", limited, authHandler.Register)
	router.POST("/login", limited, authHandler.Login)

	// Session probe; the Authorization header is optional here, so no
	// JWTAuth in front of it.
	router.GET("/checkuser", authHandler.CheckUser)

	authRequired := middleware.JWTAuth(tokens)

	users := router.Group("/users")
	{
		users.GET("/:id", authHandler.GetUserByID)
		users.PUT("/:id", authRequired, authHandler.EditUser)
	}

	tasks := router.Group("/tasks", authRequired)
	{
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/mytasks", taskHandler.ListMyTasks)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}

	return router
}
