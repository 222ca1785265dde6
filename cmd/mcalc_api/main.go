// Package main mcalc API
// @title mcalc API
// @version 1.0
// @description Arithmetic expression evaluation over HTTP
// @license.name MIT
// @BasePath /
package main

import (
	"log/slog"
	"net/http"
	"os"

	_ "github.com/DjordjeVuckovic/mcalc/docs"
	"github.com/DjordjeVuckovic/mcalc/internal/api/router"
	"github.com/DjordjeVuckovic/mcalc/internal/api/server"
	"github.com/DjordjeVuckovic/mcalc/internal/calc"
	pkgserver "github.com/DjordjeVuckovic/mcalc/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	cfg, err := LoadAppConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	s := server.New(cfg.Server, pkgserver.NewOkHealthChecker()).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "mcalc API is running")
	})

	ev := calc.NewFromConfig(*cfg.Calc)
	slog.Info("Evaluator configured",
		"max_tokens", cfg.Calc.MaxTokens,
		"max_input_length", cfg.Calc.MaxInputLength,
		"division", ev.Division().String(),
	)

	router.NewEvaluateRouter(s.Echo, ev, router.WithMaxBatchSize(cfg.Server.MaxBatchSize)).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
