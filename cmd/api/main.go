package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/hsinyu-lin/trackdesk/internal/api/handlers"
	"github.com/hsinyu-lin/trackdesk/internal/api/middleware"
	"github.com/hsinyu-lin/trackdesk/internal/api/routes"
	"github.com/hsinyu-lin/trackdesk/internal/application"
	"github.com/hsinyu-lin/trackdesk/internal/config"
	"github.com/hsinyu-lin/trackdesk/internal/config/db"
	"github.com/hsinyu-lin/trackdesk/internal/repository"
	"github.com/hsinyu-lin/trackdesk/pkg/storage"
)

func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()

	images, err := storage.NewMinioStore()
	if err != nil {
		log.Fatalf("minio init failed: %v", err)
	}

	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, images)
	h := handlers.New(services)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(r, h, repos)

	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
