package main

import (
	"log/slog"
	"os"

	"pachislot_analytics/internal/app"
)

func main() {
	if err := app.NewApp().Run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
