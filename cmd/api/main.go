package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/babuyoga/project-cost-dashboard/internal/auth"
	"github.com/babuyoga/project-cost-dashboard/internal/config"
	"github.com/babuyoga/project-cost-dashboard/internal/database/pg"
	"github.com/babuyoga/project-cost-dashboard/internal/database/store"
	"github.com/babuyoga/project-cost-dashboard/internal/http/router"
	"github.com/babuyoga/project-cost-dashboard/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// load environment variables
	_ = godotenv.Load()
	cfg := config.GetConfig()

	logging.SetupLogger(cfg.LogFile)
	slog.Info("Loaded environment", "environment", cfg.Environment)

	switch cfg.Environment {
	case "development":
		gin.SetMode(gin.DebugMode)
	case "production":
		gin.SetMode(gin.ReleaseMode)
	}

	// initialize database connection
	db, err := pg.NewConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	st := store.New(db)
	if cfg.AdminPassword == "" {
		slog.Warn("ADMIN_PASSWORD not set, skipping bootstrap admin seed")
	} else {
		if err := st.EnsureAdmin(context.Background(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
			log.Fatal("Failed to seed bootstrap admin: ", err)
		}
	}

	svc := auth.NewService(st)
	r := router.NewRouter(cfg, svc)

	slog.Info("Starting server", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
