package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"tuxedo-keyboard-manager/internal/logger"
	"tuxedo-keyboard-manager/internal/models"
	"tuxedo-keyboard-manager/internal/store"
)

const (
	statusSaved         = "Successful saved config"
	statusSaveFailed    = "Failed save config"
	statusReloaded      = "Reloaded config from disk"
	statusReadFailed    = "Read conf file failed"
	statusExternalKept  = "Config changed on disk; RELOAD to discard your edits"
	statusExternalApply = "Config changed on disk; reloaded"
)

// View is what the handlers need from the window
type View interface {
	ApplyOptions(opts models.KeyboardOptions)
	UpdateStatus(status string)
	SetDirty(dirty bool)
	ShowError(title string, err error)
}

// OptionsStore persists the options record
type OptionsStore interface {
	Load(ctx context.Context) (models.KeyboardOptions, error)
	Save(ctx context.Context, opts models.KeyboardOptions) error
	Path() string
}

// Handlers maps widget callbacks onto the options repository and the
// store. Every method runs on the Fyne event goroutine.
type Handlers struct {
	ctx    context.Context
	repo   *models.OptionsRepository
	store  OptionsStore
	view   View
	logger logger.Logger

	// lastSaved is the record most recently written by HandleConfirm
	lastSaved *models.KeyboardOptions
}

func NewHandlers(ctx context.Context, repo *models.OptionsRepository, st OptionsStore, view View, log logger.Logger) *Handlers {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Handlers{
		ctx:    ctx,
		repo:   repo,
		store:  st,
		view:   view,
		logger: log,
	}
}

func (h *Handlers) HandleBrightnessChange(brightness int) {
	h.repo.Update(func(o *models.KeyboardOptions) {
		o.Brightness = brightness
	})
	h.view.SetDirty(h.repo.Dirty())
}

func (h *Handlers) HandleColorChange(zone models.Zone, c colorful.Color) {
	h.repo.Update(func(o *models.KeyboardOptions) {
		o.SetColor(zone, c)
	})
	h.view.SetDirty(h.repo.Dirty())
}

func (h *Handlers) HandleModeChange(mode models.Mode) {
	h.repo.Update(func(o *models.KeyboardOptions) {
		o.Mode = mode
	})
	h.view.SetDirty(h.repo.Dirty())
}

// HandleConfirm writes the current record. A failed write leaves the record
// and its unsaved flag untouched.
func (h *Handlers) HandleConfirm() {
	snapshot := h.repo.Get()

	if err := h.store.Save(h.ctx, snapshot); err != nil {
		h.logger.Error("Handlers", err, map[string]interface{}{
			"action": "save",
			"path":   h.store.Path(),
		})
		h.view.UpdateStatus(statusSaveFailed)
		h.view.ShowError(statusSaveFailed, h.userError(err))
		return
	}

	h.lastSaved = &snapshot
	h.repo.MarkSaved(snapshot)
	h.view.SetDirty(h.repo.Dirty())
	h.view.UpdateStatus(statusSaved)
	h.logger.Info("Handlers", "config saved", map[string]interface{}{
		"path":       h.store.Path(),
		"mode":       snapshot.Mode.String(),
		"brightness": snapshot.Brightness,
	})
}

// HandleReload discards unsaved edits and shows what is on disk
func (h *Handlers) HandleReload() {
	opts, err := h.store.Load(h.ctx)
	if err != nil {
		h.logger.Error("Handlers", err, map[string]interface{}{
			"action": "reload",
			"path":   h.store.Path(),
		})
		h.view.UpdateStatus(statusReadFailed)
		h.view.ShowError(statusReadFailed, h.userError(err))
		return
	}

	h.repo.Replace(opts)
	h.view.ApplyOptions(opts)
	h.view.SetDirty(false)
	h.view.UpdateStatus(statusReloaded)
}

// HandleExternalChange reacts to the watcher. Edits that have not been
// saved yet are never overwritten.
func (h *Handlers) HandleExternalChange() {
	opts, err := h.store.Load(h.ctx)
	if err != nil {
		h.logger.Warning("Handlers", "ignoring unreadable config change", map[string]interface{}{
			"path":  h.store.Path(),
			"error": err.Error(),
		})
		return
	}

	current := h.repo.Get()
	if opts.Equal(current) {
		// rewrite with identical content
		h.repo.MarkSaved(current)
		h.view.SetDirty(h.repo.Dirty())
		return
	}

	// our own write, reported after the user has already edited again
	if h.lastSaved != nil && opts.Equal(*h.lastSaved) {
		h.view.SetDirty(h.repo.Dirty())
		return
	}

	if h.repo.Dirty() {
		h.logger.Info("Handlers", "config changed on disk while editing", map[string]interface{}{
			"path": h.store.Path(),
		})
		h.view.UpdateStatus(statusExternalKept)
		return
	}

	h.repo.Replace(opts)
	h.view.ApplyOptions(opts)
	h.view.SetDirty(false)
	h.view.UpdateStatus(statusExternalApply)
	h.logger.Info("Handlers", "config reloaded after external change", map[string]interface{}{
		"path": h.store.Path(),
	})
}

func (h *Handlers) userError(err error) error {
	switch {
	case errors.Is(err, store.ErrPermission):
		return fmt.Errorf("%s can only be changed by root; start the manager with sudo or pkexec: %w", h.store.Path(), err)
	case errors.Is(err, store.ErrConfigMissing):
		return fmt.Errorf("%s does not exist yet; press CONFIRM to create it: %w", h.store.Path(), err)
	default:
		return err
	}
}

// LoadInitialOptions overwrites the defaults with the file when it can be
// read; any failure is logged and the defaults are kept
func LoadInitialOptions(ctx context.Context, st OptionsStore, log logger.Logger) models.KeyboardOptions {
	opts := models.DefaultOptions()

	loaded, err := st.Load(ctx)
	if err != nil {
		log.Error("Application", fmt.Errorf("read conf file %s failed: %w", st.Path(), err), nil)
		return opts
	}
	return loaded
}
