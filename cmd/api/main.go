package main

import (
	"os"

	"github.com/yigit/campusconnect/internal/cli"
	"github.com/yigit/campusconnect/internal/pkg/logger"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		logger.Error().Err(err).Msg("Application exited with error")
		os.Exit(1)
	}
}
