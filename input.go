package rowan

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyNames maps the script-facing key names to ebiten keys. Lookup is
// case-insensitive; unknown names are simply "not pressed" rather than an
// error.
var keyNames = map[string]ebiten.Key{}

// canonicalKeyName maps back to the documented spelling.
var canonicalKeyName = map[ebiten.Key]string{}

func registerKey(name string, k ebiten.Key) {
	keyNames[strings.ToLower(name)] = k
	canonicalKeyName[k] = name
}

func init() {
	for i := 0; i < 26; i++ {
		registerKey(string(rune('A'+i)), ebiten.KeyA+ebiten.Key(i))
	}
	for i := 0; i < 10; i++ {
		registerKey(string(rune('0'+i)), ebiten.KeyDigit0+ebiten.Key(i))
	}
	for i := 0; i < 12; i++ {
		registerKey(fmt.Sprintf("F%d", i+1), ebiten.KeyF1+ebiten.Key(i))
	}
	registerKey("Space", ebiten.KeySpace)
	registerKey("Enter", ebiten.KeyEnter)
	registerKey("Escape", ebiten.KeyEscape)
	registerKey("Tab", ebiten.KeyTab)
	registerKey("Backspace", ebiten.KeyBackspace)
	registerKey("Delete", ebiten.KeyDelete)
	registerKey("Insert", ebiten.KeyInsert)
	registerKey("Home", ebiten.KeyHome)
	registerKey("End", ebiten.KeyEnd)
	registerKey("PageUp", ebiten.KeyPageUp)
	registerKey("PageDown", ebiten.KeyPageDown)
	registerKey("Left", ebiten.KeyArrowLeft)
	registerKey("Right", ebiten.KeyArrowRight)
	registerKey("Up", ebiten.KeyArrowUp)
	registerKey("Down", ebiten.KeyArrowDown)
	registerKey("LeftShift", ebiten.KeyShiftLeft)
	registerKey("RightShift", ebiten.KeyShiftRight)
	registerKey("LeftCtrl", ebiten.KeyControlLeft)
	registerKey("RightCtrl", ebiten.KeyControlRight)
	registerKey("LeftAlt", ebiten.KeyAltLeft)
	registerKey("RightAlt", ebiten.KeyAltRight)
	registerKey("LeftMeta", ebiten.KeyMetaLeft)
	registerKey("RightMeta", ebiten.KeyMetaRight)
	registerKey("CapsLock", ebiten.KeyCapsLock)
	registerKey("Minus", ebiten.KeyMinus)
	registerKey("Equal", ebiten.KeyEqual)
	registerKey("Comma", ebiten.KeyComma)
	registerKey("Period", ebiten.KeyPeriod)
	registerKey("Slash", ebiten.KeySlash)
	registerKey("Backslash", ebiten.KeyBackslash)
	registerKey("Semicolon", ebiten.KeySemicolon)
	registerKey("Quote", ebiten.KeyQuote)
	registerKey("LeftBracket", ebiten.KeyBracketLeft)
	registerKey("RightBracket", ebiten.KeyBracketRight)
	registerKey("Backquote", ebiten.KeyBackquote)
}

// inputFrame is one frame's device snapshot.
type inputFrame struct {
	keys   map[string]bool // lowercase key name -> held
	mouseX float64
	mouseY float64
	left   bool
	right  bool
	middle bool
	typed  []rune
}

func newInputFrame() inputFrame {
	return inputFrame{keys: make(map[string]bool)}
}

func (f *inputFrame) copyFrom(o *inputFrame) {
	for k := range f.keys {
		delete(f.keys, k)
	}
	for k, v := range o.keys {
		if v {
			f.keys[k] = true
		}
	}
	f.mouseX, f.mouseY = o.mouseX, o.mouseY
	f.left, f.right, f.middle = o.left, o.right, o.middle
	f.typed = append(f.typed[:0], o.typed...)
}

// Input answers the script-facing device queries. It keeps the current and
// previous frame snapshots so just-pressed edges stay stable for the whole
// frame.
//
// By default Tick polls the real devices through ebiten. Once any Inject*
// method is called the Input switches permanently to synthetic mode:
// injected state replaces device polling, which keeps tests display-free.
type Input struct {
	curr inputFrame
	prev inputFrame

	synthetic bool
	injected  inputFrame

	winW, winH float64
}

// NewInput creates an input tracker. Width and height seed the reported
// window size until the layout callback updates it.
func NewInput(width, height float64) *Input {
	return &Input{
		curr:     newInputFrame(),
		prev:     newInputFrame(),
		injected: newInputFrame(),
		winW:     width,
		winH:     height,
	}
}

// Tick snapshots device state for the coming frame. Called by the runtime
// once per frame, before resource and game updates.
func (in *Input) Tick() {
	in.prev.copyFrom(&in.curr)
	if in.synthetic {
		in.curr.copyFrom(&in.injected)
		in.injected.typed = in.injected.typed[:0]
		return
	}
	in.pollDevice()
}

func (in *Input) pollDevice() {
	for k := range in.curr.keys {
		delete(in.curr.keys, k)
	}
	for name, key := range keyNames {
		if ebiten.IsKeyPressed(key) {
			in.curr.keys[name] = true
		}
	}
	mx, my := ebiten.CursorPosition()
	in.curr.mouseX, in.curr.mouseY = float64(mx), float64(my)
	in.curr.left = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.curr.right = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	in.curr.middle = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	in.curr.typed = ebiten.AppendInputChars(in.curr.typed[:0])
}

// TypedText returns the characters typed this frame.
func (in *Input) TypedText() string {
	return string(in.curr.typed)
}

// --- Queries ---

// IsKeyDown reports whether the named key is held this frame. Unknown key
// names return false.
func (in *Input) IsKeyDown(name string) bool {
	return in.curr.keys[strings.ToLower(name)]
}

// IsKeyJustPressed reports whether the named key went down this frame.
// Unknown key names return false.
func (in *Input) IsKeyJustPressed(name string) bool {
	lower := strings.ToLower(name)
	return in.curr.keys[lower] && !in.prev.keys[lower]
}

// KeysDown returns the documented names of all held keys, sorted for
// deterministic iteration.
func (in *Input) KeysDown() []string {
	names := make([]string, 0, len(in.curr.keys))
	for lower := range in.curr.keys {
		if key, ok := keyNames[lower]; ok {
			names = append(names, canonicalKeyName[key])
		}
	}
	sort.Strings(names)
	return names
}

// Mouse returns the cursor position in pixels.
func (in *Input) Mouse() Vec2 {
	return Vec2{in.curr.mouseX, in.curr.mouseY}
}

// MouseState returns the current button snapshot.
func (in *Input) MouseState() MouseState {
	return MouseState{
		LeftDown:   in.curr.left,
		RightDown:  in.curr.right,
		MiddleDown: in.curr.middle,
	}
}

// WindowSize returns the window size in pixels.
func (in *Input) WindowSize() Vec2 {
	return Vec2{in.winW, in.winH}
}

func (in *Input) setWindowSize(w, h float64) {
	in.winW, in.winH = w, h
}

// --- Edge detection for the runtime's event pump ---

// justPressedKeys returns keys that went down this frame, sorted.
func (in *Input) justPressedKeys() []string {
	var names []string
	for lower := range in.curr.keys {
		if !in.prev.keys[lower] {
			names = append(names, canonicalKeyName[keyNames[lower]])
		}
	}
	sort.Strings(names)
	return names
}

// justReleasedKeys returns keys that went up this frame, sorted.
func (in *Input) justReleasedKeys() []string {
	var names []string
	for lower := range in.prev.keys {
		if !in.curr.keys[lower] {
			names = append(names, canonicalKeyName[keyNames[lower]])
		}
	}
	sort.Strings(names)
	return names
}

// mouseEdges reports press and release edges per button for this frame.
func (in *Input) mouseEdges() (pressed, released []MouseButton) {
	check := func(now, before bool, b MouseButton) {
		if now && !before {
			pressed = append(pressed, b)
		}
		if !now && before {
			released = append(released, b)
		}
	}
	check(in.curr.left, in.prev.left, MouseButtonLeft)
	check(in.curr.right, in.prev.right, MouseButtonRight)
	check(in.curr.middle, in.prev.middle, MouseButtonMiddle)
	return pressed, released
}

// --- Synthetic input ---

// InjectKeyDown marks the named key held from the next Tick on. The first
// injection switches the Input to synthetic mode for its lifetime.
func (in *Input) InjectKeyDown(name string) {
	in.synthetic = true
	if _, ok := keyNames[strings.ToLower(name)]; !ok {
		return
	}
	in.injected.keys[strings.ToLower(name)] = true
}

// InjectKeyUp releases a previously injected key.
func (in *Input) InjectKeyUp(name string) {
	in.synthetic = true
	delete(in.injected.keys, strings.ToLower(name))
}

// InjectMouse sets the synthetic cursor position and button state.
func (in *Input) InjectMouse(x, y float64, left, right, middle bool) {
	in.synthetic = true
	in.injected.mouseX, in.injected.mouseY = x, y
	in.injected.left, in.injected.right, in.injected.middle = left, right, middle
}

// InjectText queues synthetic typed characters for the next Tick.
func (in *Input) InjectText(s string) {
	in.synthetic = true
	in.injected.typed = append(in.injected.typed, []rune(s)...)
}

// InjectWindowSize overrides the reported window size.
func (in *Input) InjectWindowSize(w, h float64) {
	in.winW, in.winH = w, h
}
