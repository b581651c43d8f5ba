package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the actions that touch the config file
type Toolbar struct {
	container     *fyne.Container
	ConfirmButton *widget.Button
	ReloadButton  *widget.Button

	confirmHandler func()
	reloadHandler  func()
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.setupToolbar()
	return toolbar
}

func (t *Toolbar) setupToolbar() {
	t.ConfirmButton = widget.NewButtonWithIcon("CONFIRM", theme.ConfirmIcon(), t.onConfirm)
	t.ConfirmButton.Importance = widget.HighImportance
	t.ReloadButton = widget.NewButtonWithIcon("RELOAD", theme.ViewRefreshIcon(), t.onReload)

	t.container = container.NewHBox(t.ConfirmButton, t.ReloadButton)
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func (t *Toolbar) SetConfirmHandler(handler func()) {
	t.confirmHandler = handler
}

func (t *Toolbar) SetReloadHandler(handler func()) {
	t.reloadHandler = handler
}

func (t *Toolbar) onConfirm() {
	if t.confirmHandler != nil {
		t.confirmHandler()
	}
}

func (t *Toolbar) onReload() {
	if t.reloadHandler != nil {
		t.reloadHandler()
	}
}
