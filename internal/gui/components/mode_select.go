package components

import (
	"fyne.io/fyne/v2/widget"

	"tuxedo-keyboard-manager/internal/models"
)

type ModeSelect struct {
	Label  *widget.Label
	Select *widget.Select

	updating      bool
	changeHandler func(models.Mode)
}

func NewModeSelect() *ModeSelect {
	ms := &ModeSelect{
		Label: widget.NewLabel("MODE"),
	}
	ms.Select = widget.NewSelect(models.Modes(), ms.onSelected)
	ms.Select.SetSelectedIndex(int(models.ModeCustom))
	return ms
}

func (ms *ModeSelect) SetChangeHandler(handler func(models.Mode)) {
	ms.changeHandler = handler
}

// SetMode selects mode without reporting a change
func (ms *ModeSelect) SetMode(mode models.Mode) {
	if !mode.Valid() {
		return
	}
	ms.updating = true
	defer func() { ms.updating = false }()
	ms.Select.SetSelectedIndex(int(mode))
}

func (ms *ModeSelect) Mode() models.Mode {
	return models.Mode(ms.Select.SelectedIndex())
}

func (ms *ModeSelect) onSelected(name string) {
	if ms.updating || ms.changeHandler == nil {
		return
	}
	mode, err := models.ParseMode(name)
	if err != nil {
		return
	}
	ms.changeHandler(mode)
}
