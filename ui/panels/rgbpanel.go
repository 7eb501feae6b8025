// Package panels provides the picker's input and display panels.
package panels

import (
	"math"

	"color-picker/internal/app"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var channelNames = []string{"R", "G", "B"}

// RGBPanel holds the editable RGB text fields and the channel sliders.
type RGBPanel struct {
	state *app.State

	entries [3]*widget.Entry
	sliders [3]*widget.Slider

	// Set while the panel mirrors a new snapshot into its widgets, so slider
	// callbacks don't push half-updated values back into the state.
	updating bool

	content fyne.CanvasObject
}

// NewRGBPanel creates the RGB input panel.
func NewRGBPanel(state *app.State) *RGBPanel {
	p := &RGBPanel{state: state}

	p.buildUI()
	p.refresh(state.Snapshot())

	state.OnColorChanged(p.refresh)

	return p
}

// Container returns the panel for embedding.
func (p *RGBPanel) Container() fyne.CanvasObject {
	return p.content
}

func (p *RGBPanel) buildUI() {
	fields := widget.NewForm()
	sliders := widget.NewForm()

	for i, name := range channelNames {
		entry := widget.NewEntry()
		entry.OnSubmitted = func(string) { p.submitText() }
		p.entries[i] = entry
		fields.Append(name+":", entry)

		slider := widget.NewSlider(0, 255)
		slider.Step = 1
		slider.OnChanged = func(float64) { p.submitSliders() }
		p.sliders[i] = slider
		sliders.Append(name+":", slider)
	}

	p.content = container.NewVBox(
		widget.NewCard("RGB", "", fields),
		widget.NewCard("Adjust Color", "", sliders),
	)
}

// submitText commits all three fields together, as pressing Enter in any one does.
func (p *RGBPanel) submitText() {
	p.state.SetColorFromText(p.entries[0].Text, p.entries[1].Text, p.entries[2].Text)
}

func (p *RGBPanel) submitSliders() {
	if p.updating {
		return
	}
	p.state.SetColor(sliderInt(p.sliders[0]), sliderInt(p.sliders[1]), sliderInt(p.sliders[2]))
}

func (p *RGBPanel) refresh(snap app.Snapshot) {
	p.updating = true
	defer func() { p.updating = false }()

	d := snap.Display()
	vals := []int{snap.RGB.R, snap.RGB.G, snap.RGB.B}
	for i, text := range d.RGBFields() {
		p.entries[i].SetText(text)
		p.sliders[i].SetValue(float64(vals[i]))
	}
}

func sliderInt(s *widget.Slider) int {
	return int(math.Round(s.Value))
}
