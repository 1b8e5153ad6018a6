package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"image/color"

	"github.com/flybench/flyviz/cmd/flyviz/uihelpers"
	"github.com/flybench/flyviz/src/dataset"
	"github.com/flybench/flyviz/src/render"
	"github.com/flybench/flyviz/src/views"
)

type uiState struct {
	app    fyne.App
	window fyne.Window

	filePath string
	viewName string

	ds     *dataset.Dataset
	figure *render.Figure

	viewSelect   *widget.Select
	chartsColumn *fyne.Container
}

// dark theme wrapper
type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func main() {
	var fileFlag, viewFlag string
	flag.StringVar(&fileFlag, "file", "", "Path to a measurement CSV file")
	flag.StringVar(&viewFlag, "view", "", "Preset view to open with")
	flag.Parse()

	a := app.NewWithID("com.flybench.flyviz")
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow("FlyViz")
	w.Resize(fyne.NewSize(1100, 800))

	state := &uiState{
		app:      a,
		window:   w,
		filePath: fileFlag,
		viewName: viewFlag,
	}
	if _, ok := views.Lookup(state.viewName); !ok {
		state.viewName = views.All()[0].Name
	}

	fileLabel := widget.NewLabel(uihelpers.TruncatePath(state.filePath, 60))

	state.viewSelect = widget.NewSelect(views.Names(), nil)
	state.viewSelect.Selected = state.viewName

	state.chartsColumn = container.NewVBox()
	chartsScroll := container.NewVScroll(state.chartsColumn)
	chartsScroll.SetMinSize(fyne.NewSize(900, 650))

	top := container.NewHBox(
		widget.NewButton("Open…", func() { openFileDialog(state, fileLabel) }),
		widget.NewButton("Reload", func() { loadAll(state, fileLabel) }),
		widget.NewLabel("View:"), state.viewSelect,
		widget.NewLabel("File:"), fileLabel,
	)
	content := container.NewBorder(top, nil, nil, nil, chartsScroll)
	w.SetContent(content)

	// Redraw charts on window resize so panels scale with width
	if w.Canvas() != nil {
		prevW := int(w.Canvas().Size().Width)
		done := make(chan struct{})
		w.SetOnClosed(func() {
			savePrefs(state)
			close(done)
		})
		go func() {
			t := time.NewTicker(300 * time.Millisecond)
			defer t.Stop()
			for {
				select {
				case <-done:
					return
				case <-t.C:
					c := w.Canvas()
					if c == nil {
						continue
					}
					curW := int(c.Size().Width)
					if curW != prevW {
						prevW = curW
						fyne.Do(func() { redrawCharts(state) })
					}
				}
			}
		}()
	}

	// Wire the select after the charts column exists
	state.viewSelect.OnChanged = func(v string) {
		if _, ok := views.Lookup(v); !ok {
			return
		}
		state.viewName = v
		savePrefs(state)
		redrawCharts(state)
	}

	buildMenus(state, fileLabel)
	loadPrefs(state, fileLabel, fileFlag == "", viewFlag == "")
	loadAll(state, fileLabel)

	w.ShowAndRun()
}

// menus and dialogs
func buildMenus(state *uiState, fileLabel *widget.Label) {
	if state == nil || state.window == nil || state.app == nil {
		return
	}
	var items []*fyne.MenuItem
	for _, f := range recentFiles(state) {
		f := f
		items = append(items, fyne.NewMenuItem(uihelpers.TruncatePath(f, 60), func() {
			state.filePath = f
			fileLabel.SetText(uihelpers.TruncatePath(state.filePath, 60))
			savePrefs(state)
			loadAll(state, fileLabel)
		}))
	}
	clearRecent := fyne.NewMenuItem("Clear Recent", func() { clearRecentFiles(state); buildMenus(state, fileLabel) })
	recentMenu := fyne.NewMenu("Open Recent", append(items, clearRecent)...)
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open…", func() { openFileDialog(state, fileLabel) }),
		fyne.NewMenuItem("Reload", func() { loadAll(state, fileLabel) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Figure…", func() { exportFigure(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	mainMenu := fyne.NewMainMenu(fileMenu, recentMenu)
	state.window.SetMainMenu(mainMenu)

	canv := state.window.Canvas()
	if canv != nil {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { openFileDialog(state, fileLabel) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { openFileDialog(state, fileLabel) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { loadAll(state, fileLabel) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { loadAll(state, fileLabel) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { state.window.Close() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { state.window.Close() })
	}
}

// file open dialog
func openFileDialog(state *uiState, fileLabel *widget.Label) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		state.filePath = rc.URI().Path()
		fileLabel.SetText(uihelpers.TruncatePath(state.filePath, 60))
		addRecentFile(state, state.filePath)
		savePrefs(state)
		loadAll(state, fileLabel)
	}, state.window)
	d.Show()
}

// load data and render
func loadAll(state *uiState, fileLabel *widget.Label) {
	if state.filePath == "" {
		// fall back to the selected view's conventional file name
		if v, ok := views.Lookup(state.viewName); ok {
			if _, err := os.Stat(v.DefaultCSV); err == nil {
				state.filePath = v.DefaultCSV
				if fileLabel != nil {
					fileLabel.SetText(uihelpers.TruncatePath(state.filePath, 60))
				}
			}
		}
		if state.filePath == "" {
			dataset.Warnf("no input file; use Open to pick a measurement CSV")
			return
		}
	}
	ds, err := dataset.Load(state.filePath)
	if err != nil {
		dialog.ShowError(err, state.window)
		return
	}
	state.ds = ds
	dataset.Infof("loaded %s: %d rows, columns: %s", state.filePath, ds.Len(), strings.Join(ds.Columns(), ", "))
	redrawCharts(state)
}

func redrawCharts(state *uiState) {
	if state.ds == nil {
		return
	}
	view, ok := views.Lookup(state.viewName)
	if !ok {
		return
	}
	cw, chh := panelSize(state)
	fig, err := render.Render(render.ChartRequest{
		Dataset:     state.ds,
		Panels:      view.Panels(),
		Title:       view.Title,
		PanelWidth:  cw,
		PanelHeight: chh,
	})
	if err != nil {
		// keep the previous figure on screen; the failure is a config/data mismatch
		dataset.Errorf("render %s: %v", view.Name, err)
		dialog.ShowError(fmt.Errorf("render %s: %w", view.Name, err), state.window)
		return
	}
	state.figure = fig

	state.chartsColumn.Objects = nil
	for i, p := range fig.Panels {
		if i > 0 {
			state.chartsColumn.Add(widget.NewSeparator())
		}
		img := canvas.NewImageFromImage(p.Image)
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(float32(cw), float32(chh)))
		state.chartsColumn.Add(img)
	}
	state.chartsColumn.Refresh()
}

// panelSize computes panel dimensions from the current window width so charts
// use the available horizontal space.
func panelSize(state *uiState) (int, int) {
	if state == nil || state.window == nil || state.window.Canvas() == nil {
		return render.DefaultPanelWidth, render.DefaultPanelHeight
	}
	sz := state.window.Canvas().Size()
	w := int(sz.Width*0.95) - 12
	return uihelpers.ComputePanelDimensions(w)
}

// export the whole rendered figure as one PNG
func exportFigure(state *uiState) {
	if state == nil || state.window == nil || state.figure == nil {
		dialog.ShowInformation("Export", "No figure to export.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := state.figure.EncodePNG(wc); err != nil {
			dialog.ShowError(err, state.window)
		}
	}, state.window)
	fs.SetFileName(state.viewName + ".png")
	fs.Show()
}

// recent files helpers
func recentFiles(state *uiState) []string {
	prefs := state.app.Preferences()
	raw := prefs.StringWithFallback("recentFiles", "")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func addRecentFile(state *uiState, path string) {
	prefs := state.app.Preferences()
	list := recentFiles(state)
	filtered := []string{path}
	for _, f := range list {
		if f != path && len(filtered) < 10 {
			filtered = append(filtered, f)
		}
	}
	prefs.SetString("recentFiles", strings.Join(filtered, "\n"))
}

func clearRecentFiles(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	state.app.Preferences().SetString("recentFiles", "")
}

// prefs
func savePrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	prefs.SetString("lastFile", state.filePath)
	prefs.SetString("lastView", state.viewName)
}

// loadPrefs restores the last session. Command line flags win over saved
// preferences, signalled by applyFile/applyView.
func loadPrefs(state *uiState, fileLabel *widget.Label, applyFile, applyView bool) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	if f := prefs.StringWithFallback("lastFile", state.filePath); applyFile && f != "" {
		state.filePath = f
		if fileLabel != nil {
			fileLabel.SetText(uihelpers.TruncatePath(state.filePath, 60))
		}
	}
	if v := prefs.StringWithFallback("lastView", state.viewName); applyView && v != "" {
		if _, ok := views.Lookup(v); ok {
			state.viewName = v
			if state.viewSelect != nil {
				state.viewSelect.Selected = v
			}
		}
	}
}
