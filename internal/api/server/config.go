package server

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/mcalc/pkg/config/env"
	"github.com/DjordjeVuckovic/mcalc/pkg/utils"
)

const DefaultPort = "8080"

type Config struct {
	Port         string
	UseHttp2     bool
	CorsOrigins  []string
	MaxBatchSize int
}

// LoadConfig reads PORT, USE_HTTP2, CORS_ORIGINS and MCALC_MAX_BATCH from
// the environment. The .env file is expected to be loaded by the caller.
func LoadConfig() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = DefaultPort
	}

	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := utils.SplitList(os.Getenv("CORS_ORIGINS"), ",")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	maxBatch, err := env.Int("MCALC_MAX_BATCH", 100)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:         port,
		UseHttp2:     env.Bool("USE_HTTP2"),
		CorsOrigins:  origins,
		MaxBatchSize: maxBatch,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
