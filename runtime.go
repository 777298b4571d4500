package rowan

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game is implemented by the application. Load runs once before the first
// Update and again after a Reload; Update runs every frame with the fixed
// timestep in seconds.
type Game interface {
	Load(rt *Runtime)
	Update(rt *Runtime, dt float64)
}

// Config controls window and runtime setup. Zero values fall back to the
// manifest (or its defaults).
type Config struct {
	Title     string
	Width     int
	Height    int
	ShowFPS   bool
	Resizable bool

	// Manifest describes the game; nil selects DefaultManifest.
	Manifest *Manifest
	// FS is where resources are read from; nil selects the current
	// directory.
	FS FileSystem
}

// Runtime owns the engine subsystems and drives the per-frame contract:
// input snapshot, input events, resource ticks, queued console commands,
// then the game's Load/Update callback. It implements ebiten.Game.
type Runtime struct {
	game     Game
	manifest *Manifest

	bus     *Bus
	events  SystemEvents
	console *Console
	input   *Input
	res     *Resources
	canvas  *Canvas
	store   *Store

	fps     *fpsOverlay
	showFPS bool

	pendingCmds []string
	loaded      bool
}

// NewRuntime wires the subsystems together. It does not open a window; pass
// the runtime to Run (or drive Update/Draw yourself in tests).
func NewRuntime(game Game, cfg Config) *Runtime {
	m := cfg.Manifest
	if m == nil {
		m = DefaultManifest()
	}
	w, h := cfg.Width, cfg.Height
	if w == 0 {
		w = m.ScreenWidth
	}
	if h == 0 {
		h = m.ScreenHeight
	}
	fs := cfg.FS
	if fs == nil {
		fs = DirFS{Root: "."}
	}

	bus := NewBus()
	events := newSystemEvents(bus)
	console := NewConsole()
	rt := &Runtime{
		game:     game,
		manifest: m,
		bus:      bus,
		events:   events,
		console:  console,
		input:    NewInput(float64(w), float64(h)),
		res:      NewResources(fs, events.ResourceReady, console),
		canvas:   NewCanvas(Viewport{float64(w), float64(h)}, console),
		store:    NewStore(),
		showFPS:  cfg.ShowFPS,
	}
	if cfg.ShowFPS {
		rt.fps = newFPSOverlay()
	}
	return rt
}

// Update runs one frame of the engine contract. Part of ebiten.Game.
func (rt *Runtime) Update() error {
	rt.input.Tick()
	rt.pumpInputEvents()
	rt.res.Tick()
	rt.pumpCommands()

	dt := 1 / float64(ebiten.TPS())
	if !rt.loaded {
		rt.loaded = true
		rt.game.Load(rt)
	}
	rt.game.Update(rt, dt)

	if rt.fps != nil {
		rt.fps.update(dt)
	}
	return nil
}

// Draw flushes the canvas queue onto the screen. Part of ebiten.Game.
func (rt *Runtime) Draw(screen *ebiten.Image) {
	rt.canvas.submit(screen)
	if rt.fps != nil && rt.showFPS {
		rt.fps.draw(screen)
	}
}

// Layout reports the drawing surface size and keeps the viewport in sync
// with the window. Part of ebiten.Game.
func (rt *Runtime) Layout(outsideWidth, outsideHeight int) (int, int) {
	rt.input.setWindowSize(float64(outsideWidth), float64(outsideHeight))
	rt.canvas.setViewport(Viewport{float64(outsideWidth), float64(outsideHeight)})
	return outsideWidth, outsideHeight
}

func (rt *Runtime) pumpInputEvents() {
	for _, key := range rt.input.justPressedKeys() {
		rt.events.KeyDown.Emit(KeyPayload{Key: key})
	}
	for _, key := range rt.input.justReleasedKeys() {
		rt.events.KeyUp.Emit(KeyPayload{Key: key})
	}
	if typed := rt.input.TypedText(); typed != "" {
		rt.events.TextInput.Emit(typed)
	}
	pressed, released := rt.input.mouseEdges()
	pos := rt.input.Mouse()
	for _, b := range pressed {
		rt.events.MouseDown.Emit(MousePayload{Pos: pos, Button: b})
	}
	for _, b := range released {
		rt.events.MouseUp.Emit(MousePayload{Pos: pos, Button: b})
		rt.events.MouseClick.Emit(MousePayload{Pos: pos, Button: b})
	}
}

func (rt *Runtime) pumpCommands() {
	if len(rt.pendingCmds) == 0 {
		return
	}
	cmds := rt.pendingCmds
	rt.pendingCmds = nil
	for _, line := range cmds {
		rt.events.ConsoleCommand.Emit(line)
	}
}

// ExecCommand queues a console command line. It is echoed to the console
// immediately and dispatched on the consoleCommand event at the start of the
// next frame.
func (rt *Runtime) ExecCommand(line string) {
	rt.console.Infof("> %s", line)
	rt.pendingCmds = append(rt.pendingCmds, line)
}

// Reload tears down script-side state and schedules Load to run again on the
// next frame. Event subscribers are cleared; the store and loaded resources
// survive.
func (rt *Runtime) Reload() {
	rt.bus.ClearAll()
	rt.loaded = false
	rt.console.Infof("reload requested")
}

// --- Accessors ---

// Manifest returns the game manifest.
func (rt *Runtime) Manifest() *Manifest { return rt.manifest }

// Resources returns the resource manager.
func (rt *Runtime) Resources() *Resources { return rt.res }

// Input returns the input tracker.
func (rt *Runtime) Input() *Input { return rt.input }

// Canvas returns the drawing queue.
func (rt *Runtime) Canvas() *Canvas { return rt.canvas }

// Console returns the message console.
func (rt *Runtime) Console() *Console { return rt.console }

// Store returns the persistent value store.
func (rt *Runtime) Store() *Store { return rt.store }

// Bus returns the event registry for user-defined events.
func (rt *Runtime) Bus() *Bus { return rt.bus }

// Events returns the built-in system events.
func (rt *Runtime) Events() SystemEvents { return rt.events }

// KeyDownEvent returns the built-in key press event.
func (rt *Runtime) KeyDownEvent() *Event { return rt.events.KeyDown }

// ResourceReadyEvent returns the built-in resource settlement event.
func (rt *Runtime) ResourceReadyEvent() *Event { return rt.events.ResourceReady }

// ConsoleCommandEvent returns the built-in console command event.
func (rt *Runtime) ConsoleCommandEvent() *Event { return rt.events.ConsoleCommand }

// Run opens a window and drives the game until it exits.
func Run(game Game, cfg Config) error {
	rt := NewRuntime(game, cfg)

	title := cfg.Title
	if title == "" {
		title = rt.manifest.Title
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(rt.canvas.Viewport().Width), int(rt.canvas.Viewport().Height))
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if err := ebiten.RunGame(rt); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
