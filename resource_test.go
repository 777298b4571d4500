package rowan

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"
)

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 1, color.RGBA{0, 0, 255, 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// tickUntilSettled drives Tick until the handle leaves Loading or the
// deadline passes. Fetches run on goroutines, so a real wait is needed.
func tickUntilSettled(t *testing.T, r *Resources, h *Handle) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		r.Tick()
		if s := h.Status(); s == StatusLoaded || s == StatusError {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("handle %v never settled", h)
}

func newTestResources(fs FileSystem) (*Resources, *Event) {
	ready := NewBus().NewEvent(EventResourceReady)
	console := NewConsole()
	console.SetOutput(nil)
	return NewResources(fs, ready, console), ready
}

func TestLoadDedupReturnsSameHandle(t *testing.T) {
	r, _ := newTestResources(MapFS{"scripts/a.luau": []byte("x")})

	a := r.LoadScript("scripts/a.luau")
	b := r.LoadScript("scripts/a.luau")
	if a != b {
		t.Fatal("same kind and path returned distinct handles")
	}

	// A different kind with the same path is a different resource.
	c := r.LoadShader("scripts/a.luau")
	if c == a {
		t.Error("different kinds share a handle")
	}
}

func TestHandleStartsNotLoadedUntilTick(t *testing.T) {
	r, _ := newTestResources(MapFS{"a.txt": []byte("x")})

	h := r.LoadScript("a.txt")
	if h.Status() != StatusNotLoaded {
		t.Fatalf("status before any tick = %v, want NotLoaded", h.Status())
	}

	r.Tick()
	if h.Status() != StatusLoading {
		t.Fatalf("status after first tick = %v, want Loading", h.Status())
	}
}

func TestScriptLoadsAndCarriesData(t *testing.T) {
	r, _ := newTestResources(MapFS{"scripts/game.luau": []byte("print('hi')")})

	h := r.LoadScript("scripts/game.luau")
	tickUntilSettled(t, r, h)

	if !h.IsReady() {
		t.Fatalf("status = %v (%s), want Loaded", h.Status(), h.Err())
	}
	if string(h.Data()) != "print('hi')" {
		t.Errorf("data = %q", h.Data())
	}
}

func TestImageLoadsAndDecodes(t *testing.T) {
	r, _ := newTestResources(MapFS{"assets/logo.png": testPNG(t)})

	h := r.LoadImage("assets/logo.png")
	tickUntilSettled(t, r, h)

	if !h.IsReady() {
		t.Fatalf("status = %v (%s), want Loaded", h.Status(), h.Err())
	}
	img := h.Image()
	if img == nil {
		t.Fatal("loaded image handle has nil image")
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("image bounds = %v, want 2x2", b)
	}
}

func TestMissingFileReachesTerminalError(t *testing.T) {
	r, _ := newTestResources(MapFS{})

	h := r.LoadScript("missing.luau")
	tickUntilSettled(t, r, h)

	if h.Status() != StatusError {
		t.Fatalf("status = %v, want Error", h.Status())
	}
	if h.Err() == "" {
		t.Error("error handle has empty message")
	}

	// Error is terminal: further ticks never revive the handle.
	for i := 0; i < 5; i++ {
		r.Tick()
	}
	if h.Status() != StatusError {
		t.Errorf("status after extra ticks = %v, want Error", h.Status())
	}

	// Re-requesting returns the same failed handle, not a retry.
	again := r.LoadScript("missing.luau")
	if again != h {
		t.Error("re-request created a new handle for a failed resource")
	}
}

func TestCorruptImageFailsToDecode(t *testing.T) {
	r, _ := newTestResources(MapFS{"bad.png": []byte("not a png")})

	h := r.LoadImage("bad.png")
	tickUntilSettled(t, r, h)

	if h.Status() != StatusError {
		t.Fatalf("status = %v, want Error", h.Status())
	}
	if h.Image() != nil {
		t.Error("failed image handle carries an image")
	}
}

func TestStatusOnlyChangesInsideTick(t *testing.T) {
	r, _ := newTestResources(MapFS{"a.txt": []byte("x")})

	h := r.LoadScript("a.txt")
	r.Tick() // NotLoaded -> Loading, fetch starts

	// Give the fetch ample time to finish. Without a tick the completion
	// must stay invisible.
	time.Sleep(50 * time.Millisecond)
	if h.Status() != StatusLoading {
		t.Fatalf("status changed outside a tick: %v", h.Status())
	}

	r.Tick()
	if h.Status() != StatusLoaded {
		t.Fatalf("status after draining tick = %v, want Loaded", h.Status())
	}
}

func TestReadyEventFiresOnLoadAndError(t *testing.T) {
	r, ready := newTestResources(MapFS{"ok.txt": []byte("x")})

	var settled []*Handle
	ready.On(func(p any) { settled = append(settled, p.(*Handle)) })

	ok := r.LoadScript("ok.txt")
	bad := r.LoadScript("nope.txt")
	tickUntilSettled(t, r, ok)
	tickUntilSettled(t, r, bad)

	if len(settled) != 2 {
		t.Fatalf("ready event fired %d times, want 2", len(settled))
	}
	seen := map[*Handle]bool{settled[0]: true, settled[1]: true}
	if !seen[ok] || !seen[bad] {
		t.Error("ready event payloads do not cover both handles")
	}
}

func TestLookup(t *testing.T) {
	r, _ := newTestResources(MapFS{})

	if r.Lookup(ResourceImage, "x.png") != nil {
		t.Error("Lookup before load returned non-nil")
	}
	h := r.LoadImage("x.png")
	if r.Lookup(ResourceImage, "x.png") != h {
		t.Error("Lookup missed a registered handle")
	}
	if r.Lookup(ResourceFont, "x.png") != nil {
		t.Error("Lookup matched across kinds")
	}
}

func TestFailedLoadHitsConsole(t *testing.T) {
	ready := NewBus().NewEvent(EventResourceReady)
	console := NewConsole()
	console.SetOutput(nil)
	r := NewResources(MapFS{}, ready, console)

	h := r.LoadScript("gone.luau")
	tickUntilSettled(t, r, h)

	last, ok := console.Last()
	if !ok || last.Level != LevelError {
		t.Fatalf("expected an error console entry, got %v %v", last, ok)
	}
}

func TestHandleString(t *testing.T) {
	r, _ := newTestResources(MapFS{})
	h := r.LoadImage("a.png")
	if got := h.String(); got != "Image:a.png (NotLoaded)" {
		t.Errorf("String() = %q", got)
	}
}
