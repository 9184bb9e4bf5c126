package main

import (
	"log/slog"
	"os"

	"github.com/Aswin-K5/nutriview/pkg/config"
	"github.com/Aswin-K5/nutriview/pkg/logging"
	"github.com/Aswin-K5/nutriview/ui"
)

func main() {
	cfg := config.Load()

	_ = logging.Setup(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: os.Stdout,
	})

	app, err := ui.NewApp(cfg)
	if err != nil {
		slog.Error("failed to start", "err", err)
		os.Exit(1)
	}
	app.Run()
}
