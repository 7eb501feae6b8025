package mainwindow

import (
	"os"
	"path/filepath"
	"testing"

	"color-picker/internal/app"
	"color-picker/pkg/colorutil"
	"color-picker/ui/prefs"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainWindowWiring(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	path := filepath.Join(t.TempDir(), "preferences.json")
	state := app.NewState()
	mw := New(a, state, prefs.LoadFrom(path))

	assert.Equal(t, "rgb(255, 0, 0)", mw.statusBar.Text)

	state.SetColor(0, 0, 255)
	assert.Equal(t, "rgb(0, 0, 255)", mw.statusBar.Text)
	assert.Equal(t, []string{"240.00", "50.00", "100.00"}, mw.hlsPanel.Values())
	assert.Equal(t, []string{"1.00", "1.00", "0.00", "0.00"}, mw.cmykPanel.Values())

	mw.onReset()
	assert.Equal(t, colorutil.Red, state.Color())

	var labels []string
	for _, item := range mw.MainMenu().Items[0].Items {
		labels = append(labels, item.Label)
	}
	assert.Contains(t, labels, "Sample Region Size...")
}

func TestMainWindowSavesPreferences(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	path := filepath.Join(t.TempDir(), "preferences.json")
	mw := New(a, app.NewState(), prefs.LoadFrom(path))
	mw.SavePreferences()

	_, err := os.Stat(path)
	require.NoError(t, err)
	assert.False(t, mw.prefs.Changed())
}
