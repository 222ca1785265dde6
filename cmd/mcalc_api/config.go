package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/mcalc/internal/api/server"
	"github.com/DjordjeVuckovic/mcalc/internal/calc"
	"github.com/DjordjeVuckovic/mcalc/pkg/config/env"
)

type AppConfig struct {
	Server   *server.Config
	Calc     *calc.Config
	LogLevel slog.Level
}

func LoadAppConfig() (*AppConfig, error) {
	if err := env.LoadDotEnv(os.Getenv("APP_ENV"), "cmd/mcalc_api/.env"); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	lvl, err := env.ParseLogLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		return nil, err
	}

	cCfg, err := calc.LoadEnv()
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		Server:   sCfg,
		Calc:     cCfg,
		LogLevel: lvl,
	}, nil
}
