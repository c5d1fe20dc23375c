// Package tui runs the arena in a terminal through tcell. One cell covers
// CellWidth x CellHeight world pixels.
package tui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"zombie-arena/internal/clock"
	"zombie-arena/internal/component"
	"zombie-arena/internal/input"
	"zombie-arena/internal/scene"
)

const (
	CellWidth  = 10.0
	CellHeight = 20.0

	// Terminals report key presses only; a movement key counts as held until
	// this long after its last press or auto-repeat.
	holdWindow = 150 * time.Millisecond
)

var floorGlyphs = [...]rune{'.', ',', ':'}

// Terminal is both the input source and the presenter of the terminal
// frontend. Events are pumped by tcell on its own goroutine and drained at
// poll time.
type Terminal struct {
	screen tcell.Screen
	time   clock.TimeProvider
	events chan tcell.Event
	quit   chan struct{}
	closed bool

	held      map[rune]time.Time
	mouse     component.Vec2 // cell coordinates
	mouseDown bool
	edges     input.Snapshot
}

// NewTerminal initialises screen and starts the event pump.
func NewTerminal(screen tcell.Screen, provider clock.TimeProvider) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init terminal: %w", err)
	}
	if provider == nil {
		provider = clock.NewMonotonicTimeProvider()
	}
	screen.EnableMouse()
	screen.HideCursor()

	t := &Terminal{
		screen: screen,
		time:   provider,
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
		held:   make(map[rune]time.Time),
	}
	go screen.ChannelEvents(t.events, t.quit)
	return t, nil
}

// Poll drains pending events and reports the input as of now.
func (t *Terminal) Poll(camera component.Vec2) input.Snapshot {
drain:
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				t.edges.Quit = true
				break drain
			}
			t.handleEvent(ev)
		default:
			break drain
		}
	}
	return t.snapshot(camera)
}

func (t *Terminal) snapshot(camera component.Vec2) input.Snapshot {
	in := t.edges
	t.edges = input.Snapshot{}

	now := t.time.Now()
	in.Up = t.isHeld('w', now)
	in.Down = t.isHeld('s', now)
	in.Left = t.isHeld('a', now)
	in.Right = t.isHeld('d', now)
	in.Fire = t.mouseDown || t.isHeld(' ', now)

	w, h := t.screen.Size()
	in.PointerScreen = component.Vec2{X: t.mouse.X * CellWidth, Y: t.mouse.Y * CellHeight}
	in.PointerWorld = input.ScreenToWorld(in.PointerScreen, camera, float64(w)*CellWidth, float64(h)*CellHeight)
	return in
}

func (t *Terminal) isHeld(key rune, now time.Time) bool {
	at, ok := t.held[key]
	return ok && now.Sub(at) < holdWindow
}

func (t *Terminal) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		t.handleKey(ev)
	case *tcell.EventMouse:
		x, y := ev.Position()
		t.mouse = component.Vec2{X: float64(x), Y: float64(y)}
		t.mouseDown = ev.Buttons()&tcell.Button1 != 0
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func (t *Terminal) handleKey(ev *tcell.EventKey) {
	now := t.time.Now()
	switch ev.Key() {
	case tcell.KeyEnter:
		t.edges.Confirm = true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.edges.Quit = true
	case tcell.KeyUp:
		t.held['w'] = now
	case tcell.KeyDown:
		t.held['s'] = now
	case tcell.KeyLeft:
		t.held['a'] = now
	case tcell.KeyRight:
		t.held['d'] = now
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'w', 'a', 's', 'd', ' ':
			t.held[r] = now
		case 'W', 'A', 'S', 'D':
			t.held[r+'a'-'A'] = now
		case 'r', 'R':
			t.edges.Reload = true
		case 'q':
			t.edges.Quit = true
		case '1', '2', '3', '4', '5', '6':
			t.edges.Upgrade = int(r - '0')
		}
	}
}

// Present draws f: arena tiles, sprites, HUD and the phase banner.
func (t *Terminal) Present(f scene.Frame) error {
	if t.closed {
		return fmt.Errorf("terminal closed")
	}
	t.screen.Clear()
	w, h := t.screen.Size()

	if f.HasWave() {
		t.drawArena(f, w, h)
		for _, z := range f.Pursuers {
			t.plot(f.Camera, z.Pos, 'Z', styleOf(z.Color), w, h)
		}
		for _, b := range f.Projectiles {
			t.plot(f.Camera, b.Pos, '*', styleOf(b.Color), w, h)
		}
		t.plot(f.Camera, f.Player.Pos, '@', styleOf(f.Player.Color).Bold(true), w, h)
		t.plot(f.Camera, f.Crosshair, '+', tcell.StyleDefault, w, h)
	}

	t.drawText(0, 0, f.StatusLine(), tcell.StyleDefault.Reverse(true))
	if alert := f.Alert(); alert != "" {
		t.drawText(0, 1, alert, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	}

	banner := f.Banner()
	top := (h - len(banner)) / 2
	for i, line := range banner {
		t.drawText((w-len(line))/2, top+i, line, tcell.StyleDefault.Bold(i == 0))
	}

	t.screen.Show()
	return nil
}

func (t *Terminal) drawArena(f scene.Frame, w, h int) {
	bg := f.Background
	wall := tcell.StyleDefault.Foreground(tcell.ColorGray)
	floor := tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			p := t.cellToWorld(f.Camera, col, row, w, h)
			if !f.Arena.Contains(p) {
				continue
			}
			tc := int((p.X - bg.Origin.X) / float64(bg.TileSize))
			tr := int((p.Y - bg.Origin.Y) / float64(bg.TileSize))
			kind := bg.At(tc, tr)
			if kind == scene.Wall {
				t.screen.SetContent(col, row, '#', nil, wall)
				continue
			}
			t.screen.SetContent(col, row, floorGlyphs[int(kind)%len(floorGlyphs)], nil, floor)
		}
	}
}

// cellToWorld returns the world point at the centre of a cell.
func (t *Terminal) cellToWorld(camera component.Vec2, col, row, w, h int) component.Vec2 {
	screen := component.Vec2{X: (float64(col) + 0.5) * CellWidth, Y: (float64(row) + 0.5) * CellHeight}
	return input.ScreenToWorld(screen, camera, float64(w)*CellWidth, float64(h)*CellHeight)
}

func (t *Terminal) plot(camera, world component.Vec2, glyph rune, style tcell.Style, w, h int) {
	s := input.WorldToScreen(world, camera, float64(w)*CellWidth, float64(h)*CellHeight)
	col, row := int(s.X/CellWidth), int(s.Y/CellHeight)
	if s.X < 0 || s.Y < 0 || col >= w || row >= h {
		return
	}
	t.screen.SetContent(col, row, glyph, nil, style)
}

func (t *Terminal) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func styleOf(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// Close stops the event pump and restores the terminal.
func (t *Terminal) Close() {
	if t.closed {
		return
	}
	t.closed = true
	close(t.quit)
	t.screen.Fini()
}
