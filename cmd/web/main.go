package main

import (
	"gigboard_backend/internal/app"
	"gigboard_backend/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("server exited", "error", err)
	}
}
