// Package window implements the display and input of the emulator as an
// ebiten desktop window.
package window

import (
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/scheduler"
	"github.com/retroenv/retrogolib/log"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

// Options of the window.
type Options struct {
	Title      string
	Scale      int
	Foreground color.RGBA
	Background color.RGBA
}

// Window is a scheduler.InputSource and scheduler.DisplaySink. The
// scheduler runs in its own goroutine, ebiten owns the main thread, and
// both sides only exchange copies under the mutex.
type Window struct {
	logger  *log.Logger
	options Options
	keys    map[ebiten.Key]machine.Key
	held    [machine.KeyCount]int // host keys down per keypad key

	mu     sync.Mutex
	pixels []byte
	status machine.Status
	screen string
	events []scheduler.KeyEvent
	quit   bool
	reset  bool

	stopped atomic.Bool
	image   *ebiten.Image

	clipboardOnce sync.Once
	clipboardOK   bool
}

// New returns a window. It is shown by Run.
func New(logger *log.Logger, options Options) *Window {
	options.Scale = max(options.Scale, 1)

	w := &Window{
		logger:  logger,
		options: options,
		keys:    keyMap(),
		pixels:  make([]byte, machine.ScreenWidth*machine.ScreenHeight*4),
	}

	var fb machine.Framebuffer
	w.copyFrame(&fb)
	return w
}

// Run opens the window and blocks until Close is called or ebiten fails.
// It has to be called from the main goroutine.
func (w *Window) Run() error {
	ebiten.SetWindowSize(machine.ScreenWidth*w.options.Scale, machine.ScreenHeight*w.options.Scale)
	ebiten.SetWindowTitle(w.options.Title)
	ebiten.SetWindowResizable(true)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetRunnableOnUnfocused(true)

	return ebiten.RunGame(w)
}

// Close ends the ebiten game loop.
func (w *Window) Close() {
	w.stopped.Store(true)
}

// Present copies the framebuffer for the next window draw.
func (w *Window) Present(fb *machine.Framebuffer, status machine.Status) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.copyFrame(fb)
	w.status = status
	w.screen = fb.String()
	return nil
}

// Poll returns the key events since the last call and whether the user
// closed the window.
func (w *Window) Poll() ([]scheduler.KeyEvent, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	events := w.events
	w.events = nil
	return events, w.quit
}

// ResetRequested returns whether the user requested to restart the
// program since the last call.
func (w *Window) ResetRequested() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	reset := w.reset
	w.reset = false
	return reset
}

// Update implements ebiten.Game and collects the input of the frame.
func (w *Window) Update() error {
	if w.stopped.Load() {
		return ebiten.Termination
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.quit = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		w.reset = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		w.copyScreen()
	}

	for hostKey, key := range w.keys {
		switch {
		case inpututil.IsKeyJustPressed(hostKey):
			w.hostKey(key, true)
		case inpututil.IsKeyJustReleased(hostKey):
			w.hostKey(key, false)
		}
	}
	return nil
}

// hostKey records a host key change of a keypad key. A keypad key is
// pressed by the first of its host keys going down and released by the last
// one going up. The mutex has to be held.
func (w *Window) hostKey(key machine.Key, pressed bool) {
	if pressed {
		w.held[key]++
		if w.held[key] == 1 {
			w.events = append(w.events, scheduler.KeyEvent{Key: key, Pressed: true})
		}
		return
	}

	if w.held[key] == 0 {
		return
	}
	w.held[key]--
	if w.held[key] == 0 {
		w.events = append(w.events, scheduler.KeyEvent{Key: key, Pressed: false})
	}
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.image == nil {
		w.image = ebiten.NewImage(machine.ScreenWidth, machine.ScreenHeight)
	}

	w.mu.Lock()
	w.image.WritePixels(w.pixels)
	status := w.status
	w.mu.Unlock()

	opts := &ebiten.DrawImageOptions{}
	scale := float64(w.options.Scale)
	opts.GeoM.Scale(scale, scale)
	screen.DrawImage(w.image, opts)

	if label := overlayLabel(status); label != "" {
		face := basicfont.Face7x13
		text.Draw(screen, label, face, 4, face.Height+2, overlayColor(w.options))
	}
}

// Layout implements ebiten.Game.
func (w *Window) Layout(_, _ int) (int, int) {
	return machine.ScreenWidth * w.options.Scale, machine.ScreenHeight * w.options.Scale
}

func (w *Window) copyFrame(fb *machine.Framebuffer) {
	img := frontend.Image(fb, w.options.Foreground, w.options.Background)
	copy(w.pixels, img.Pix)
}

// copyScreen writes the text dump of the last frame to the clipboard.
func (w *Window) copyScreen() {
	w.clipboardOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			w.logger.Warn("Clipboard is not available", log.Err(err))
			return
		}
		w.clipboardOK = true
	})
	if !w.clipboardOK {
		return
	}

	clipboard.Write(clipboard.FmtText, []byte(w.screen))
	w.logger.Info("Copied screen to clipboard")
}

func overlayLabel(status machine.Status) string {
	switch status {
	case machine.Halted:
		return "HALTED"
	case machine.WaitingForKey:
		return "WAITING"
	default:
		return ""
	}
}

// overlayColor returns the inverted background color, which is readable on
// both pixel states for the default color scheme.
func overlayColor(options Options) color.RGBA {
	bg := options.Background
	return color.RGBA{R: 0xFF - bg.R, G: 0xFF - bg.G, B: 0xFF - bg.B, A: 0xFF}
}
