package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// PickerTheme keeps the window chrome neutral so it does not compete with the swatch.
type PickerTheme struct{}

var _ fyne.Theme = (*PickerTheme)(nil)

func (t *PickerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return color.NRGBA{R: 0x75, G: 0x75, B: 0x75, A: 0xFF}
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0x9E, G: 0x9E, B: 0x9E, A: 0x60}
	case theme.ColorNameHover:
		return color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x20}
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *PickerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *PickerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *PickerTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameInputBorder:
		return 1
	case theme.SizeNameInnerPadding:
		return 6 // Compact channel rows
	default:
		return theme.DefaultTheme().Size(name)
	}
}
