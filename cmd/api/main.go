package main

import (
	"context"

	config "github.com/anjiri1684/questoes_api/configs"
	"github.com/anjiri1684/questoes_api/database"
	"github.com/anjiri1684/questoes_api/logging"
	"github.com/anjiri1684/questoes_api/routes"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log := logging.New(cfg.IsProduction())
	defer log.Sync()

	if err := config.LoadEnvFile(); err != nil {
		log.Warn(".env file not found, reading from system environment variables", zap.Error(err))
	}

	db := database.Connect(cfg.DatabaseURL, log)

	// The result only feeds GET /; a failing database must not stop startup.
	db.CheckHealth(context.Background())

	app := routes.NewApp(db, log)

	log.Info("Servidor rodando", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start", zap.Error(err))
	}
}
