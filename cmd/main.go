package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/gwastro/pygrb-results-page/internal/cli"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	app := cli.NewApp(logger)

	if err := app.Run(os.Args); err != nil {
		logger.Fatalf("Application error: %v", err)
	}
}
