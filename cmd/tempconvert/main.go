package main

import (
	"os"

	"github.com/Aussie4Beer56/tempconvert/internal/config"
	"github.com/Aussie4Beer56/tempconvert/internal/converter"
	"github.com/Aussie4Beer56/tempconvert/internal/observability"
	"github.com/Aussie4Beer56/tempconvert/internal/utils"
)

const appName = "tempconvert"

func main() {
	cfg, err := config.Load()
	if err != nil {
		observability.NewLogger(os.Stderr, config.Config{AppEnv: "dev"}, appName).Errorf("config error: %v", err)
		os.Exit(1)
	}
	logger := observability.NewLogger(os.Stderr, cfg, appName).With("run_id", utils.UUIDService{}.New())

	c := converter.Converter{
		In:           os.Stdin,
		Out:          os.Stdout,
		InvalidInput: cfg.InvalidInput,
		Logger:       logger,
	}
	reading, err := c.Run()
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(converter.ExitCode(err))
	}
	logger.Infof("converted %d -> %d (valid input: %t)", reading.Fahrenheit, reading.Celsius, reading.Valid)
}
