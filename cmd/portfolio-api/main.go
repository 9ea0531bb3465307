package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/mkravets/portfolio-api/internal/config"
	"github.com/mkravets/portfolio-api/internal/logger"
	"github.com/mkravets/portfolio-api/internal/router"
	"github.com/mkravets/portfolio-api/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.New(cfg)
	if err != nil {
		slog.Error("Setup failed", "error", err)
		os.Exit(1)
	}
	defer deps.Close()

	r := router.New(deps)

	slog.Info("Server started", "port", cfg.Public.Port)
	if err := http.ListenAndServe(":"+cfg.Public.Port, r); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
