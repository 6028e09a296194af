package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"vivopaint/internal/render"
	"vivopaint/internal/state"
)

// Options configure the application window and the stroke it paints.
type Options struct {
	Title  string
	Width  float32
	Height float32
	Style  render.Style
	Logger *slog.Logger
}

func DefaultOptions() Options {
	return Options{
		Title:  "VivoPaint",
		Width:  1024,
		Height: 768,
		Style:  render.DefaultStyle(),
	}
}

// Run opens the drawing window and blocks until the user quits with the
// escape key or closes the window.
func Run(opts Options) {
	fyneApp := app.New()
	fyneApp.Settings().SetTheme(newPaintTheme())

	painter := state.NewPainter(opts.Logger)
	painter.OnQuit = fyneApp.Quit

	sketch := NewPainterWidget(painter, opts.Style)

	win := newMainWindow(fyneApp, opts.Title)
	win.SetPadded(false)
	win.Resize(fyne.NewSize(opts.Width, opts.Height))
	win.CenterOnScreen()
	win.SetContent(sketch)
	win.Canvas().Focus(sketch)

	win.ShowAndRun()
}

// newMainWindow prefers a splash window, which comes up undecorated, centered
// and floating above other windows. Drivers without splash support get a
// regular centered window instead.
func newMainWindow(fyneApp fyne.App, title string) fyne.Window {
	if drv, ok := fyneApp.Driver().(desktop.Driver); ok {
		win := drv.CreateSplashWindow()
		win.SetTitle(title)
		return win
	}
	return fyneApp.NewWindow(title)
}
