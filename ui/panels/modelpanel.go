package panels

import (
	"color-picker/internal/app"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// ModelPanel shows one derived color model as read-only fields.
type ModelPanel struct {
	title  string
	labels []string
	fields func(app.Display) []string

	values  []*widget.Label
	content fyne.CanvasObject
}

// NewCMYKPanel shows C, M, Y, K as fractions.
func NewCMYKPanel(state *app.State) *ModelPanel {
	return NewModelPanel(state, "CMYK", []string{"C", "M", "Y", "K"}, app.Display.CMYKFields)
}

// NewHLSPanel shows hue in degrees, lightness and saturation in percent.
func NewHLSPanel(state *app.State) *ModelPanel {
	return NewModelPanel(state, "HLS", []string{"H", "L", "S"}, app.Display.HLSFields)
}

// NewModelPanel creates a panel that shows fields(display) next to labels.
func NewModelPanel(state *app.State, title string, labels []string, fields func(app.Display) []string) *ModelPanel {
	mp := &ModelPanel{
		title:  title,
		labels: labels,
		fields: fields,
	}

	mp.buildUI()
	mp.refresh(state.Snapshot())

	state.OnColorChanged(mp.refresh)

	return mp
}

// Container returns the panel for embedding.
func (mp *ModelPanel) Container() fyne.CanvasObject {
	return mp.content
}

// Values returns the currently displayed texts in label order.
func (mp *ModelPanel) Values() []string {
	out := make([]string, len(mp.values))
	for i, l := range mp.values {
		out[i] = l.Text
	}
	return out
}

func (mp *ModelPanel) buildUI() {
	form := widget.NewForm()
	mp.values = make([]*widget.Label, len(mp.labels))
	for i, name := range mp.labels {
		l := widget.NewLabelWithStyle("", fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true})
		mp.values[i] = l
		form.Append(name+":", l)
	}
	mp.content = widget.NewCard(mp.title, "", form)
}

func (mp *ModelPanel) refresh(snap app.Snapshot) {
	for i, text := range mp.fields(snap.Display()) {
		mp.values[i].SetText(text)
	}
}
