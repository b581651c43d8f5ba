package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"tuxedo-keyboard-manager/internal/config"
	"tuxedo-keyboard-manager/internal/gui"
	"tuxedo-keyboard-manager/internal/logger"
	"tuxedo-keyboard-manager/internal/models"
	"tuxedo-keyboard-manager/internal/store"
	"tuxedo-keyboard-manager/internal/watcher"
)

const (
	AppName      = "Manage Keyboard"
	AppID        = "org.codebase.NH55KeyboardBackgroundManagement"
	AppVersion   = "1.0.0"
	WindowWidth  = 640
	WindowHeight = 480
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	handlers   *Handlers
	repo       *models.OptionsRepository
	store      *store.Store
	watcher    *watcher.Watcher
	lifecycle  *Lifecycle
	settings   config.Settings
	logger     logger.Logger
}

func NewApplication(settings config.Settings, log logger.Logger) (*Application, error) {
	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)

	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.SetFixedSize(true)
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":   AppVersion,
		"conf_path": settings.ConfPath,
		"watch":     settings.WatchFile,
	})

	lifecycle := NewLifecycle(log)
	optionsStore := store.New(settings.ConfPath, log)

	initial := LoadInitialOptions(lifecycle.Context(), optionsStore, log)
	repo := models.NewOptionsRepository(initial)

	guiManager := gui.NewManager(window, log)
	guiManager.ApplyOptions(initial)
	guiManager.SetConfigPath(optionsStore.Path())
	lifecycle.Register("gui", guiManager)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		repo:       repo,
		store:      optionsStore,
		lifecycle:  lifecycle,
		settings:   settings,
		logger:     log,
	}
	application.setupHandlers()

	if settings.WatchFile {
		w, err := watcher.New(optionsStore.Path(), log)
		if err != nil {
			// the UI works without it
			log.Warning("Application", "config watcher disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			application.watcher = w
			lifecycle.Register("watcher", w)
		}
	}

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers() {
	a.handlers = NewHandlers(a.lifecycle.Context(), a.repo, a.store, a.guiManager, a.logger)

	a.guiManager.SetBrightnessChangeHandler(a.handlers.HandleBrightnessChange)
	a.guiManager.SetColorChangeHandler(a.handlers.HandleColorChange)
	a.guiManager.SetModeChangeHandler(a.handlers.HandleModeChange)
	a.guiManager.SetConfirmHandler(a.handlers.HandleConfirm)
	a.guiManager.SetReloadHandler(a.handlers.HandleReload)
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(a.requestClose)
	a.lifecycle.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	if a.watcher != nil {
		go a.watcher.Run(a.lifecycle.Context(), func() {
			fyne.Do(a.handlers.HandleExternalChange)
		})
	}

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	return nil
}

func (a *Application) requestClose() {
	if !a.repo.Dirty() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
		return
	}

	a.guiManager.ShowConfirm("Unsaved changes", "Quit without saving the keyboard settings?", func(quit bool) {
		if quit {
			a.logger.Info("Application", "shutdown requested, unsaved changes discarded", nil)
			a.lifecycle.Shutdown()
			a.window.Close()
		}
	})
}
