package rowan

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // register decoders for LoadImage
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ResourceKind distinguishes the asset types the loader understands.
type ResourceKind uint8

const (
	ResourceImage ResourceKind = iota
	ResourceFont
	ResourceScript
	ResourceShader
	ResourceAudio
)

// String returns the capitalized kind name, e.g. "Image".
func (k ResourceKind) String() string {
	switch k {
	case ResourceImage:
		return "Image"
	case ResourceFont:
		return "Font"
	case ResourceScript:
		return "Script"
	case ResourceShader:
		return "Shader"
	case ResourceAudio:
		return "Audio"
	default:
		return "Unknown"
	}
}

// Status is the lifecycle state of a resource handle.
//
// NotLoaded -> Loading -> Loaded | Error. A handle leaves NotLoaded on the
// tick after it was requested, and reaches a terminal state on a later tick
// when its fetch completes. Error is terminal; there is no retry.
type Status uint8

const (
	StatusNotLoaded Status = iota
	StatusLoading
	StatusLoaded
	StatusError
)

// String returns the status name as exposed to scripts.
func (s Status) String() string {
	switch s {
	case StatusNotLoaded:
		return "NotLoaded"
	case StatusLoading:
		return "Loading"
	case StatusLoaded:
		return "Loaded"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Handle references a requested resource. Handles are deduplicated: loading
// the same path and kind twice returns the identical pointer, so handles
// compare with ==.
//
// All fields are owned by the frame goroutine; loader goroutines never touch
// a Handle directly.
type Handle struct {
	kind   ResourceKind
	path   string
	status Status
	errMsg string

	img  *ebiten.Image
	font *text.GoTextFaceSource
	data []byte
}

// Kind returns the resource kind.
func (h *Handle) Kind() ResourceKind { return h.kind }

// Path returns the path the resource was requested with.
func (h *Handle) Path() string { return h.path }

// Status returns the current lifecycle state.
func (h *Handle) Status() Status { return h.status }

// IsReady reports whether the resource finished loading successfully.
func (h *Handle) IsReady() bool { return h.status == StatusLoaded }

// Err returns the failure description for a handle in the Error state, or
// "" otherwise.
func (h *Handle) Err() string { return h.errMsg }

// Image returns the decoded image, or nil while the handle is not Loaded or
// is not an image resource.
func (h *Handle) Image() *ebiten.Image { return h.img }

// FontSource returns the parsed font, or nil while the handle is not Loaded
// or is not a font resource.
func (h *Handle) FontSource() *text.GoTextFaceSource { return h.font }

// Data returns the raw bytes of a script, shader, or audio resource, or nil
// while the handle is not Loaded.
func (h *Handle) Data() []byte { return h.data }

func (h *Handle) String() string {
	return fmt.Sprintf("%s:%s (%s)", h.kind, h.path, h.status)
}

type resourceKey struct {
	kind ResourceKind
	path string
}

type loadResult struct {
	h    *Handle
	img  *ebiten.Image
	font *text.GoTextFaceSource
	data []byte
	err  error
}

// Resources tracks every requested asset and drives its lifecycle. Loads
// run on background goroutines, but their results only become observable
// inside Tick, which the runtime calls once per frame: scripts can never see
// a status change between two queries within the same frame.
type Resources struct {
	fs      FileSystem
	handles map[resourceKey]*Handle
	pending []*Handle
	done    chan loadResult
	ready   *Event
	console *Console
}

// NewResources creates a resource manager reading from fs. ready (emitted
// with a *Handle payload when a handle reaches Loaded or Error) and console
// may be nil.
func NewResources(fs FileSystem, ready *Event, console *Console) *Resources {
	return &Resources{
		fs:      fs,
		handles: make(map[resourceKey]*Handle),
		done:    make(chan loadResult, 16),
		ready:   ready,
		console: console,
	}
}

// LoadImage requests an image asset (png or jpeg).
func (r *Resources) LoadImage(path string) *Handle { return r.load(ResourceImage, path) }

// LoadFont requests a TTF/OTF font asset.
func (r *Resources) LoadFont(path string) *Handle { return r.load(ResourceFont, path) }

// LoadScript requests a script source asset. The bytes are fetched and
// retained; executing them is the script host's concern.
func (r *Resources) LoadScript(path string) *Handle { return r.load(ResourceScript, path) }

// LoadShader requests a shader source asset.
func (r *Resources) LoadShader(path string) *Handle { return r.load(ResourceShader, path) }

// LoadAudio requests an audio asset.
func (r *Resources) LoadAudio(path string) *Handle { return r.load(ResourceAudio, path) }

// load returns the existing handle for kind+path, or registers a new one in
// the NotLoaded state. The fetch is scheduled for the next Tick.
func (r *Resources) load(kind ResourceKind, path string) *Handle {
	key := resourceKey{kind: kind, path: path}
	if h, ok := r.handles[key]; ok {
		return h
	}
	h := &Handle{kind: kind, path: path, status: StatusNotLoaded}
	r.handles[key] = h
	r.pending = append(r.pending, h)
	return h
}

// Lookup returns the handle previously registered for kind and path, or nil.
func (r *Resources) Lookup(kind ResourceKind, path string) *Handle {
	return r.handles[resourceKey{kind: kind, path: path}]
}

// Tick advances resource lifecycles at the frame boundary: completed
// fetches transition to Loaded or Error first, then freshly requested
// handles transition NotLoaded -> Loading and their fetches start. The
// ordering guarantees a handle makes at most one transition per tick.
func (r *Resources) Tick() {
	for {
		select {
		case res := <-r.done:
			r.apply(res)
			continue
		default:
		}
		break
	}

	if len(r.pending) == 0 {
		return
	}
	starting := r.pending
	r.pending = nil
	for _, h := range starting {
		h.status = StatusLoading
		go r.fetch(h)
	}
}

// fetch runs off the frame goroutine. It reads and decodes the asset and
// reports through the done channel; it never mutates the handle.
func (r *Resources) fetch(h *Handle) {
	data, err := r.fs.ReadFile(h.path)
	if err != nil {
		r.done <- loadResult{h: h, err: err}
		return
	}

	switch h.kind {
	case ResourceImage:
		src, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			r.done <- loadResult{h: h, err: fmt.Errorf("decode image: %w", err)}
			return
		}
		r.done <- loadResult{h: h, img: ebiten.NewImageFromImage(src)}
	case ResourceFont:
		src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			r.done <- loadResult{h: h, err: fmt.Errorf("parse font: %w", err)}
			return
		}
		r.done <- loadResult{h: h, font: src}
	default:
		r.done <- loadResult{h: h, data: data}
	}
}

func (r *Resources) apply(res loadResult) {
	h := res.h
	if h.status != StatusLoading {
		// Error is terminal and Loaded never regresses; a stray second
		// completion is dropped.
		return
	}
	if res.err != nil {
		h.status = StatusError
		h.errMsg = res.err.Error()
		if r.console != nil {
			r.console.Errorf("failed to load %s %q: %s", h.kind, h.path, h.errMsg)
		}
	} else {
		h.status = StatusLoaded
		h.img = res.img
		h.font = res.font
		h.data = res.data
	}
	if r.ready != nil {
		r.ready.Emit(h)
	}
}
