package app

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/sqweek/dialog"

	"canvasedit/internal/config"
	"canvasedit/internal/editor"
	"canvasedit/internal/logger"
	"canvasedit/internal/measure"
	"canvasedit/internal/platform"
	"canvasedit/internal/render"
	"canvasedit/internal/ui"
	"canvasedit/pkg/richdoc"
)

// doubleClickTicks is the longest gap between presses counted as one
// multi-click, at 60 ticks per second.
const doubleClickTicks = 24

// keyBindings is scanned in order each tick, so keys pressed in the same
// frame are dispatched in a stable order.
var keyBindings = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeyArrowLeft, platform.KeyLeft},
	{ebiten.KeyArrowRight, platform.KeyRight},
	{ebiten.KeyArrowUp, platform.KeyUp},
	{ebiten.KeyArrowDown, platform.KeyDown},
	{ebiten.KeyHome, platform.KeyHome},
	{ebiten.KeyEnd, platform.KeyEnd},
	{ebiten.KeyBackspace, platform.KeyBackspace},
	{ebiten.KeyDelete, platform.KeyDelete},
	{ebiten.KeyEnter, platform.KeyEnter},
	{ebiten.KeyKPEnter, platform.KeyEnter},
	{ebiten.KeyTab, platform.KeyTab},
	{ebiten.KeyA, "a"},
	{ebiten.KeyB, "b"},
	{ebiten.KeyC, "c"},
	{ebiten.KeyI, "i"},
	{ebiten.KeyV, "v"},
	{ebiten.KeyX, "x"},
	{ebiten.KeyY, "y"},
	{ebiten.KeyZ, "z"},
	{ebiten.Key0, "0"},
	{ebiten.Key1, "1"},
	{ebiten.Key2, "2"},
}

// keyEvents turns the keys justPressed reports into key-down events in
// keyBindings order.
func keyEvents(justPressed func(ebiten.Key) bool, mods platform.Modifiers) []platform.Event {
	var events []platform.Event
	for _, b := range keyBindings {
		if justPressed(b.key) {
			events = append(events, platform.Event{Type: platform.EventKeyDown, Key: b.name, Mods: mods})
		}
	}
	return events
}

// systemClipboard is the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

type App struct {
	theme ui.Theme
	ed    *editor.Editor
	faces *measure.FaceMeasurer
	clip  platform.Clipboard
	opts  editor.Options

	frameBuffer *render.FrameBuffer
	canvas      *ebiten.Image
	layout      ui.Layout

	filePath  string
	status    string
	frameTick uint64
	scrollY   float64

	dragSelecting bool
	lastClickTick uint64
	clicks        int
}

// New builds the editor window state. docPath, when set, is opened as a
// JSON document.
func New(cfg *config.Config, docPath string) (*App, error) {
	faces, err := measure.NewFaceMeasurer()
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}
	presets, err := cfg.Presets()
	if err != nil {
		return nil, err
	}
	a := &App{
		theme: ui.DefaultTheme(),
		faces: faces,
		opts: editor.Options{
			Presets:      presets,
			Width:        cfg.Editor.Width,
			HistoryLimit: cfg.Editor.HistoryLimit,
		},
		status: "Ready",
	}
	if cfg.Editor.SystemClipboard {
		a.clip = systemClipboard{}
	} else {
		a.clip = &platform.MemoryClipboard{}
	}

	a.ed = editor.New(nil, faces, a.opts)
	if docPath != "" {
		if err := a.openPath(docPath); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *App) Run() error {
	ebiten.SetWindowTitle(a.title())
	ebiten.SetWindowSize(1024, 768)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(480, 360, -1, -1)
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("run game loop: %w", err)
	}
	return nil
}

func (a *App) title() string {
	name := "Untitled"
	if a.filePath != "" {
		name = filepath.Base(a.filePath)
	}
	return "canvasedit - " + name
}

func (a *App) Update() error {
	a.frameTick++
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	alt := ebiten.IsKeyPressed(ebiten.KeyAlt)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyO) {
		a.reportErr("Open failed", a.openDocumentDialog())
		return nil
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.reportErr("Save failed", a.saveDocument(shift || a.filePath == ""))
		return nil
	}

	w, h := ebiten.WindowSize()
	a.layout = ui.ComputeLayout(w, h, a.theme, 1, a.opts.Width)
	if cw := a.layout.Content.Dx(); cw > 0 && float64(cw) != a.ed.Width() {
		a.dispatch(platform.Event{Type: platform.EventResize, Width: cw})
	}

	_, wheelY := ebiten.Wheel()
	a.scrollY -= wheelY * 42
	a.clampScroll()

	for _, ev := range a.inputEvents(ctrl, shift, alt) {
		a.dispatch(ev)
	}
	return nil
}

func (a *App) inputEvents(ctrl, shift, alt bool) []platform.Event {
	var mods platform.Modifiers
	if ctrl {
		mods |= platform.ModCtrl
	}
	if shift {
		mods |= platform.ModShift
	}
	if alt {
		mods |= platform.ModAlt
	}

	var events []platform.Event
	toDoc := func(x, y int) (float64, float64) {
		o := a.layout.Content.Min
		return float64(x - o.X), float64(y-o.Y) + a.scrollY
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if a.frameTick-a.lastClickTick <= doubleClickTicks {
			a.clicks++
		} else {
			a.clicks = 1
		}
		a.lastClickTick = a.frameTick
		dx, dy := toDoc(x, y)
		events = append(events, platform.Event{Type: platform.EventMouseDown, X: dx, Y: dy, Clicks: a.clicks, Mods: mods})
		a.dragSelecting = a.clicks == 1
	} else if a.dragSelecting && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		dx, dy := toDoc(ebiten.CursorPosition())
		events = append(events, platform.Event{Type: platform.EventMouseDrag, X: dx, Y: dy, Mods: mods})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		a.dragSelecting = false
	}

	events = append(events, keyEvents(inpututil.IsKeyJustPressed, mods)...)
	if !ctrl {
		if chars := ebiten.AppendInputChars(nil); len(chars) > 0 {
			events = append(events, platform.Event{Type: platform.EventTextInput, Text: string(chars)})
		}
	}
	return events
}

func (a *App) dispatch(ev platform.Event) {
	if _, err := platform.Dispatch(a.ed, ev, a.clip); err != nil {
		a.reportErr("Edit failed", err)
	}
}

func (a *App) reportErr(prefix string, err error) {
	if err == nil || errors.Is(err, dialog.ErrCancelled) {
		return
	}
	logger.Errorf("app: %s: %v", prefix, err)
	a.status = prefix + ": " + err.Error()
}

func (a *App) clampScroll() {
	lines := a.ed.Lines()
	bottom := lines[len(lines)-1].Y()
	maxY := math.Max(0, bottom-float64(a.layout.Content.Dy()))
	a.scrollY = math.Min(math.Max(a.scrollY, 0), maxY)
}

func (a *App) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if a.frameBuffer == nil || a.frameBuffer.W != w || a.frameBuffer.H != h {
		a.frameBuffer = render.NewFrameBuffer(w, h)
		a.canvas = ebiten.NewImage(w, h)
	}

	showCaret := (a.frameTick/uint64(max(a.theme.CaretBlinkFrames, 1)))%2 == 0
	layout, err := ui.DrawEditor(a.frameBuffer, a.ed, a.theme, 1, int(a.scrollY), showCaret)
	if err != nil {
		logger.Errorf("app: selection geometry: %v", err)
	}
	a.layout = layout
	a.canvas.WritePixels(a.frameBuffer.Pixels)
	screen.DrawImage(a.canvas, nil)

	a.drawDocumentText(screen)

	statusFace := a.faces.Face(richdoc.Font{Size: 12})
	text.Draw(screen, ui.StatusLine(a.ed, a.filePath, a.status), statusFace, 12, h-10, a.theme.StatusText)
}

// drawDocumentText draws glyphs over the uploaded buffer, skipping rows
// outside the content box.
func (a *App) drawDocumentText(screen *ebiten.Image) {
	content := a.layout.Content
	doc := screen.SubImage(content).(*ebiten.Image)
	o := a.layout.Origin
	for _, line := range a.ed.Lines() {
		top := o.Y + int(line.Y()-line.LineHeight())
		if top > content.Max.Y || o.Y+int(line.Y()) < content.Min.Y {
			continue
		}
		for _, f := range line.Fragments {
			if f.Width <= 0 {
				continue
			}
			var clr color.Color = render.RGBA(f.Style.TextColor)
			text.Draw(doc, f.Text, a.faces.Face(f.Style.Font()), o.X+int(math.Round(f.X)), o.Y+render.Baseline(f), clr)
		}
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return max(outsideWidth, 1), max(outsideHeight, 1)
}

func (a *App) openDocumentDialog() error {
	path, err := dialog.File().Filter("Canvas documents", "json").Load()
	if err != nil {
		return err
	}
	return a.openPath(path)
}

func (a *App) openPath(path string) error {
	path = filepath.Clean(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	ed, err := editor.Load(data, a.faces, a.opts)
	if err != nil {
		return err
	}
	a.ed = ed
	a.filePath = path
	a.scrollY = 0
	a.status = "Opened " + filepath.Base(path)
	ebiten.SetWindowTitle(a.title())
	logger.Infof("app: opened %s (%d runs)", path, len(ed.Runs()))
	return nil
}

func (a *App) saveDocument(saveAs bool) error {
	path := a.filePath
	if saveAs {
		p, err := dialog.File().Filter("Canvas documents", "json").Save()
		if err != nil {
			return err
		}
		path = p
	}
	data, err := richdoc.MarshalIndent(a.ed.Runs())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	a.filePath = path
	a.status = "Saved " + filepath.Base(path)
	ebiten.SetWindowTitle(a.title())
	return nil
}
