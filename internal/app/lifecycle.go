package app

import (
	"context"

	"tuxedo-keyboard-manager/internal/logger"
	"tuxedo-keyboard-manager/internal/shutdown"
)

// Lifecycle names the components handed to the shutdown manager so the
// log shows what is being stopped
type Lifecycle struct {
	manager *shutdown.Manager
	logger  logger.Logger
}

func NewLifecycle(log logger.Logger) *Lifecycle {
	return &Lifecycle{
		manager: shutdown.NewManager(log),
		logger:  log,
	}
}

// Register adds a component; the last registered stops first
func (l *Lifecycle) Register(name string, component shutdown.Shutdownable) {
	l.manager.Register(shutdown.Func(func() {
		component.Shutdown()
		l.logger.Debug("Lifecycle", "component stopped", map[string]interface{}{
			"component": name,
		})
	}))
}

func (l *Lifecycle) Listen(onSignal func()) {
	l.manager.Listen(onSignal)
}

// Context is cancelled as soon as shutdown begins
func (l *Lifecycle) Context() context.Context {
	return l.manager.Context()
}

func (l *Lifecycle) Shutdown() {
	l.manager.Shutdown()
}
