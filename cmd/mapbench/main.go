package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/pyihe/mapbench/cli"
	"github.com/pyihe/mapbench/config"
	"github.com/pyihe/mapbench/internal"
)

func main() {
	cfg, cfgErr := config.FromEnv()

	logger, err := internal.NewLogger(cfg.LogLevel)
	if err != nil {
		if logger, err = internal.NewLogger(config.Default().LogLevel); err != nil {
			logger = zap.NewNop()
		}
		logger.Warn("invalid log level, using default", zap.String("level", cfg.LogLevel))
	}
	if cfgErr != nil {
		logger.Warn("using default config", zap.String("error", cfgErr.Error()))
	}

	app := &cli.App{Config: cfg, Logger: logger, Stdout: os.Stdout}
	code := app.Run(os.Args[1:])
	_ = logger.Sync()
	os.Exit(code)
}
