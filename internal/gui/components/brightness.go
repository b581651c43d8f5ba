package components

import (
	"fmt"
	"math"

	"fyne.io/fyne/v2/widget"

	"tuxedo-keyboard-manager/internal/models"
)

// BrightnessControl is the labelled 0-255 slider
type BrightnessControl struct {
	Label  *widget.Label
	Slider *widget.Slider

	updating      bool
	changeHandler func(int)
}

func NewBrightnessControl() *BrightnessControl {
	bc := &BrightnessControl{
		Label:  widget.NewLabel(brightnessText(models.MinBrightness)),
		Slider: widget.NewSlider(models.MinBrightness, models.MaxBrightness),
	}
	bc.Slider.Step = 1
	bc.Slider.OnChanged = bc.onChanged
	return bc
}

func brightnessText(value int) string {
	return fmt.Sprintf("BRIGHTNESS: %d", value)
}

func (bc *BrightnessControl) SetChangeHandler(handler func(int)) {
	bc.changeHandler = handler
}

// SetBrightness moves the slider without reporting a change
func (bc *BrightnessControl) SetBrightness(value int) {
	bc.updating = true
	defer func() { bc.updating = false }()

	bc.Slider.SetValue(float64(value))
	bc.Label.SetText(brightnessText(value))
}

func (bc *BrightnessControl) Value() int {
	return int(math.Round(bc.Slider.Value))
}

func (bc *BrightnessControl) onChanged(value float64) {
	brightness := int(math.Round(value))
	bc.Label.SetText(brightnessText(brightness))

	if bc.updating || bc.changeHandler == nil {
		return
	}
	bc.changeHandler(brightness)
}
