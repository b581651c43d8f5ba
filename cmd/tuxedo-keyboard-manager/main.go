package main

import (
	"log"
	"os"

	"tuxedo-keyboard-manager/internal/app"
	"tuxedo-keyboard-manager/internal/config"
	"tuxedo-keyboard-manager/internal/logger"
)

func main() {
	settingsPath, err := config.SettingsPath()
	if err != nil {
		// no home directory, run on defaults and environment only
		settingsPath = ""
	}

	settings, err := config.Load(settingsPath)
	if err != nil {
		log.Fatalf("Settings could not be loaded: %v", err)
	}

	appLogger := logger.New(settings.LogLevel, settings.JSONLogs)

	application, err := app.NewApplication(settings, appLogger)
	if err != nil {
		appLogger.Error("Main", err, map[string]interface{}{
			"stage": "initialization",
		})
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		appLogger.Error("Main", err, map[string]interface{}{
			"stage": "run",
		})
		os.Exit(1)
	}
}
