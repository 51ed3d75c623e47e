package main

import (
	"log/slog"
	"os"

	"stockbars/internal/logx"
)

func init() {
	slog.SetDefault(logx.New("info", "text"))
}

func main() {
	configPath := ".env"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	a, err := InitializeApp(configPath)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}

	if err := a.Run(); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}
