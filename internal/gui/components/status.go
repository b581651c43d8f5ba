package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	dirtyLabel  *widget.Label
	pathLabel   *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready")
	dirtyLabel := widget.NewLabel("")
	dirtyLabel.TextStyle = fyne.TextStyle{Italic: true}
	pathLabel := widget.NewLabel("")
	pathLabel.Truncation = fyne.TextTruncateEllipsis

	metaContainer := container.NewHBox(
		dirtyLabel,
		widget.NewSeparator(),
		pathLabel,
	)

	mainContainer := container.NewBorder(
		nil, nil,
		statusLabel,
		metaContainer,
	)

	return &StatusBar{
		container:   mainContainer,
		statusLabel: statusLabel,
		dirtyLabel:  dirtyLabel,
		pathLabel:   pathLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) Status() string {
	return sb.statusLabel.Text
}

func (sb *StatusBar) SetPath(path string) {
	sb.pathLabel.SetText(path)
}

func (sb *StatusBar) SetDirty(dirty bool) {
	if dirty {
		sb.dirtyLabel.SetText("unsaved changes")
		return
	}
	sb.dirtyLabel.SetText("")
}

func (sb *StatusBar) Dirty() bool {
	return sb.dirtyLabel.Text != ""
}
