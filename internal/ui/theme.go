package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// paintTheme clears the window background so the desktop stays visible
// behind the stroke and pins the few palette colors the app owns. Every
// other theme lookup falls through to the default.
type paintTheme struct {
	base fyne.Theme
}

var _ fyne.Theme = (*paintTheme)(nil)

func newPaintTheme() fyne.Theme {
	return &paintTheme{base: theme.DefaultTheme()}
}

func (t *paintTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.Transparent
	case theme.ColorNameForeground:
		return color.NRGBA{A: 0xff}
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x80, G: 0x80, A: 0xff}
	case theme.ColorNameSuccess:
		return color.NRGBA{G: 0xff, A: 0xff}
	case theme.ColorNameError:
		return color.NRGBA{R: 0xff, A: 0xff}
	}
	return t.base.Color(name, variant)
}

func (t *paintTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *paintTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *paintTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name)
}
