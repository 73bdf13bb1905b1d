package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rechange/cmd/api/handlers"
	"rechange/cmd/api/middleware"
	"rechange/cmd/api/services"
	"rechange/config"
	_ "rechange/docs"
	"rechange/repositories"
)

// New wires the repositories and the generation gateway into the HTTP
// surface. All chat state lives in the passed repositories for the
// lifetime of the process.
func New(
	sessions *repositories.SessionRepository,
	gallery *repositories.GalleryRepository,
	generator services.Generator,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(corsMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"model":  config.GetConfig().GeminiModel,
		})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		sessionSvc := services.NewSessionService(sessions)
		api.POST("/sessions", handlers.CreateSessionHandler(sessionSvc))
		api.GET("/sessions", handlers.ListSessionsHandler(sessionSvc))
		api.GET("/sessions/:id", handlers.GetSessionHandler(sessionSvc))
		api.DELETE("/sessions/:id", handlers.DeleteSessionHandler(sessionSvc))
		api.POST("/sessions/:id/activate", handlers.ActivateSessionHandler(sessionSvc))
		api.PATCH("/sessions/:id", handlers.RetitleSessionHandler(sessionSvc))

		chatSvc := services.NewChatService(
			sessions,
			gallery,
			generator,
			time.Duration(config.GetConfig().Chat.GuidanceDelayMs)*time.Millisecond,
		)
		api.POST("/sessions/:id/messages", handlers.SendMessageHandler(chatSvc))
		api.POST("/generate", handlers.GenerateHandler(generator))

		gallerySvc := services.NewGalleryService(gallery)
		api.GET("/gallery", handlers.ListGalleryHandler(gallerySvc))
	}

	return r
}

// corsMiddleware는 rs/cors 를 gin 미들웨어로 감싼다. preflight 는 여기서
// 종료하고, 그 외 요청은 CORS 헤더만 얹은 뒤 다음 핸들러로 넘긴다.
func corsMiddleware() gin.HandlerFunc {
	cfg := config.GetConfig()
	origins := cfg.Server.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}
	mw := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
	})
	return func(c *gin.Context) {
		mw.HandlerFunc(c.Writer, c.Request)
		if c.Request.Method == http.MethodOptions &&
			c.GetHeader("Access-Control-Request-Method") != "" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
