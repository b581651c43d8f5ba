package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/lucasb-eyer/go-colorful"

	"tuxedo-keyboard-manager/internal/gui/components"
	"tuxedo-keyboard-manager/internal/logger"
	"tuxedo-keyboard-manager/internal/models"
)

// Manager owns the widgets of the main window. All methods must be called
// on the Fyne event goroutine.
type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	isShutdown bool

	brightness *components.BrightnessControl
	zones      map[models.Zone]*components.ZoneColorPicker
	mode       *components.ModeSelect
	toolbar    *components.Toolbar
	statusBar  *components.StatusBar
}

func NewManager(window fyne.Window, log logger.Logger) *Manager {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	manager := &Manager{
		window:     window,
		logger:     log,
		brightness: components.NewBrightnessControl(),
		zones:      make(map[models.Zone]*components.ZoneColorPicker, 3),
		mode:       components.NewModeSelect(),
		toolbar:    components.NewToolbar(),
		statusBar:  components.NewStatusBar(),
	}
	for _, zone := range models.Zones() {
		manager.zones[zone] = components.NewZoneColorPicker(zone, window)
	}

	log.Debug("GUIManager", "widgets created", map[string]interface{}{
		"modes": len(models.Modes()),
		"zones": len(manager.zones),
	})
	return manager
}

// GetMainContainer lays the rows out as a label column and a widget column
func (m *Manager) GetMainContainer() fyne.CanvasObject {
	form := container.New(layout.NewFormLayout(),
		m.brightness.Label, m.brightness.Slider,
	)
	for _, zone := range models.Zones() {
		picker := m.zones[zone]
		form.Add(picker.Label)
		form.Add(picker.GetContainer())
	}
	form.Add(m.mode.Label)
	form.Add(m.mode.Select)

	content := container.NewVBox(
		form,
		widget.NewSeparator(),
		m.toolbar.GetContainer(),
	)

	return container.NewBorder(
		nil,
		m.statusBar.GetContainer(),
		nil, nil,
		container.NewPadded(content),
	)
}

// ApplyOptions pushes a record into every widget without firing handlers
func (m *Manager) ApplyOptions(opts models.KeyboardOptions) {
	m.brightness.SetBrightness(opts.Brightness)
	for _, zone := range models.Zones() {
		m.zones[zone].SetColor(opts.Color(zone))
	}
	m.mode.SetMode(opts.Mode)

	m.logger.Debug("GUIManager", "options applied", map[string]interface{}{
		"mode":       opts.Mode.String(),
		"brightness": opts.Brightness,
	})
}

func (m *Manager) SetBrightnessChangeHandler(handler func(int)) {
	m.brightness.SetChangeHandler(func(value int) {
		m.logger.Debug("GUIManager", "brightness change", map[string]interface{}{
			"brightness": value,
		})
		handler(value)
	})
}

func (m *Manager) SetColorChangeHandler(handler func(models.Zone, colorful.Color)) {
	for _, picker := range m.zones {
		picker.SetChangeHandler(func(zone models.Zone, c colorful.Color) {
			m.logger.Debug("GUIManager", "color change", map[string]interface{}{
				"zone":  zone.String(),
				"color": c.Hex(),
			})
			handler(zone, c)
		})
	}
}

func (m *Manager) SetModeChangeHandler(handler func(models.Mode)) {
	m.mode.SetChangeHandler(func(mode models.Mode) {
		m.logger.Debug("GUIManager", "mode change", map[string]interface{}{
			"mode": mode.String(),
		})
		handler(mode)
	})
}

func (m *Manager) SetConfirmHandler(handler func()) {
	m.toolbar.SetConfirmHandler(handler)
}

func (m *Manager) SetReloadHandler(handler func()) {
	m.toolbar.SetReloadHandler(handler)
}

func (m *Manager) UpdateStatus(status string) {
	m.statusBar.SetStatus(status)
	m.logger.Debug("GUIManager", "status updated", map[string]interface{}{
		"status": status,
	})
}

func (m *Manager) SetDirty(dirty bool) {
	m.statusBar.SetDirty(dirty)
}

func (m *Manager) SetConfigPath(path string) {
	m.statusBar.SetPath(path)
}

// ShowError opens a modal error dialog headed by title. Callers log the
// error themselves.
func (m *Manager) ShowError(title string, err error) {
	d := dialog.NewCustom(title, "OK", widget.NewLabel(err.Error()), m.window)
	d.SetIcon(theme.ErrorIcon())
	d.Show()
}

func (m *Manager) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, m.window)
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
