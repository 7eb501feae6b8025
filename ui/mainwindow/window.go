// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"log"

	"color-picker/internal/app"
	"color-picker/internal/version"
	"color-picker/ui/dialogs"
	"color-picker/ui/panels"
	"color-picker/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const (
	defaultWidth  = 600
	defaultHeight = 640
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app   fyne.App
	state *app.State
	prefs *prefs.Prefs

	swatch    *panels.Swatch
	rgbPanel  *panels.RGBPanel
	cmykPanel *panels.ModelPanel
	hlsPanel  *panels.ModelPanel
	statusBar *widget.Label

	chooser *dialogs.ColorChooser
	sampler *dialogs.SampleDialog
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Color Picker")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
	}

	mw.chooser = dialogs.NewColorChooser(state, win)
	mw.sampler = dialogs.NewSampleDialog(state, p, win)

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.restoreSize()

	win.SetCloseIntercept(func() {
		mw.SavePreferences()
		win.Close()
	})

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.swatch = panels.NewSwatch(mw.state)
	mw.rgbPanel = panels.NewRGBPanel(mw.state)
	mw.cmykPanel = panels.NewCMYKPanel(mw.state)
	mw.hlsPanel = panels.NewHLSPanel(mw.state)
	mw.statusBar = widget.NewLabel(mw.state.Color().String())

	buttons := container.NewGridWithColumns(2,
		widget.NewButton("Choose Color", mw.chooser.Show),
		widget.NewButton("Sample Image...", mw.sampler.Show),
	)

	models := container.NewGridWithColumns(2,
		mw.cmykPanel.Container(),
		mw.hlsPanel.Container(),
	)

	body := container.NewVBox(
		mw.rgbPanel.Container(),
		models,
		buttons,
	)

	content := container.NewBorder(
		mw.swatch.Container(),             // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		container.NewVScroll(body),        // center
	)

	mw.SetContent(content)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	colorMenu := fyne.NewMenu("Color",
		fyne.NewMenuItem("Choose Color...", mw.chooser.Show),
		fyne.NewMenuItem("Sample Image...", mw.sampler.Show),
		fyne.NewMenuItem("Sample Region Size...", mw.sampler.ShowRegionSize),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reset to Default", mw.onReset),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(colorMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.OnColorChanged(func(snap app.Snapshot) {
		mw.updateStatus(snap.RGB.String())
	})

	mw.state.On(app.EventColorSampled, func(data interface{}) {
		if snap, ok := data.(app.Snapshot); ok {
			mw.updateStatus("Sampled " + snap.RGB.Hex())
		}
	})
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

func (mw *MainWindow) restoreSize() {
	w := mw.prefs.FloatWithFallback(prefs.KeyWindowWidth, defaultWidth)
	h := mw.prefs.FloatWithFallback(prefs.KeyWindowHeight, defaultHeight)
	mw.Resize(fyne.NewSize(float32(w), float32(h)))
}

// SavePreferences records the window size and writes preferences to disk.
func (mw *MainWindow) SavePreferences() {
	size := mw.Canvas().Size()
	if size.Width > 0 && size.Height > 0 {
		mw.prefs.SetFloat(prefs.KeyWindowWidth, float64(size.Width))
		mw.prefs.SetFloat(prefs.KeyWindowHeight, float64(size.Height))
	}
	if err := mw.prefs.Save(); err != nil {
		log.Printf("Preferences: save failed: %v", err)
	}
}

// SavePreferencesIfChanged saves only when something was modified.
func (mw *MainWindow) SavePreferencesIfChanged() {
	if mw.prefs.Changed() {
		mw.SavePreferences()
	}
}

func (mw *MainWindow) onReset() {
	c := app.DefaultColor
	mw.state.SetColor(c.R, c.G, c.B)
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Color Picker",
		fmt.Sprintf("Color Picker v%s\n\n"+
			"Shows a color in the RGB, CMYK and HLS models.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
