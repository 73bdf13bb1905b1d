package main

import (
	"context"
	"log"
	"net/http"

	"rechange/cmd/api/router"
	"rechange/internal/logger"
	"rechange/config"
	_ "rechange/docs" // swag generated package
	"rechange/gateway"
	"rechange/repositories"
)

// @title           ReChange API
// @version         1.0
// @description     Chat-based image editing API backed by the Gemini image model
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	// Missing credential fails here, before the first chat turn.
	generator, err := gateway.New(context.Background(), cfg.GeminiModel)
	if err != nil {
		log.Fatal(err)
	}

	sessions := repositories.NewSessionRepository()
	gallery := repositories.NewGalleryRepository()

	r := router.New(sessions, gallery, generator)
	if err := r.Run(cfg.Server.Addr); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
