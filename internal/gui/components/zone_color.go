package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/lucasb-eyer/go-colorful"

	"tuxedo-keyboard-manager/internal/models"
)

const swatchSize = 32

var zoneTitles = map[models.Zone]string{
	models.ZoneLeft:   "LEFT COLOR",
	models.ZoneCenter: "CENTER COLOR",
	models.ZoneRight:  "RIGHT COLOR",
}

// ZoneColorPicker shows the color of one zone and opens a picker dialog
type ZoneColorPicker struct {
	Zone   models.Zone
	Label  *widget.Label
	Button *widget.Button

	swatch        *canvas.Rectangle
	container     *fyne.Container
	window        fyne.Window
	current       colorful.Color
	changeHandler func(models.Zone, colorful.Color)
}

func NewZoneColorPicker(zone models.Zone, window fyne.Window) *ZoneColorPicker {
	zp := &ZoneColorPicker{
		Zone:   zone,
		Label:  widget.NewLabel(zoneTitles[zone]),
		window: window,
		swatch: canvas.NewRectangle(color.Black),
	}
	zp.swatch.SetMinSize(fyne.NewSize(swatchSize*2, swatchSize))
	zp.swatch.StrokeColor = color.Gray{Y: 0x80}
	zp.swatch.StrokeWidth = 1

	zp.Button = widget.NewButton("Choose…", zp.openPicker)
	zp.container = container.NewHBox(zp.swatch, zp.Button)
	return zp
}

func (zp *ZoneColorPicker) GetContainer() *fyne.Container {
	return zp.container
}

func (zp *ZoneColorPicker) SetChangeHandler(handler func(models.Zone, colorful.Color)) {
	zp.changeHandler = handler
}

// SetColor repaints the swatch without reporting a change
func (zp *ZoneColorPicker) SetColor(c colorful.Color) {
	zp.current = c.Clamped()
	zp.swatch.FillColor = zp.current
	zp.swatch.Refresh()
}

func (zp *ZoneColorPicker) Color() colorful.Color {
	return zp.current
}

func (zp *ZoneColorPicker) openPicker() {
	picker := dialog.NewColorPicker(zoneTitles[zp.Zone], "Pick the backlight color", zp.choose, zp.window)
	picker.Advanced = true
	picker.SetColor(zp.current)
	picker.Show()
}

func (zp *ZoneColorPicker) choose(c color.Color) {
	chosen, ok := colorful.MakeColor(c)
	if !ok {
		// fully transparent, nothing the keyboard can show
		return
	}
	zp.SetColor(chosen)
	if zp.changeHandler != nil {
		zp.changeHandler(zp.Zone, zp.current)
	}
}
