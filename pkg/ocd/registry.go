package ocd

import (
	"sync"
)

// WriterHandle is an opaque reference to a Writer owned by a Registry.
// The zero value is never issued.
type WriterHandle uint64

// Registry owns Writers on behalf of callers that refer to them by handle.
//
// Handles are slot positions plus one and are never reused, so a destroyed
// handle stays invalid for the life of the Registry. Lookups are guarded by
// a mutex; operations on one Writer must still come from one goroutine.
type Registry struct {
	mu    sync.Mutex
	slots []*Writer // nil once destroyed
	opts  Options
}

// NewRegistry returns an empty Registry whose writers use default options.
func NewRegistry() *Registry {
	return NewRegistryWithOptions(DefaultOptions())
}

// NewRegistryWithOptions returns an empty Registry whose writers use opts.
func NewRegistryWithOptions(opts Options) *Registry {
	return &Registry{opts: opts}
}

// CreateWriter creates a writing context and returns its handle.
func (r *Registry) CreateWriter(originX, originY, scale float64) WriterHandle {
	w := NewWriterWithOptions(originX, originY, scale, r.opts)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots = append(r.slots, w)
	return WriterHandle(len(r.slots))
}

// Writer resolves h to its Writer. Closing the returned Writer directly
// releases its contents and removes it from Live; the handle then fails
// every operation until DestroyWriter frees the slot.
func (r *Registry) Writer(h WriterHandle) (*Writer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookup(h)
}

func (r *Registry) lookup(h WriterHandle) (*Writer, error) {
	if h == 0 || uint64(h) > uint64(len(r.slots)) {
		return nil, &ErrInvalidHandle{Kind: "writer", Handle: uint64(h)}
	}
	w := r.slots[h-1]
	if w == nil {
		return nil, &ErrInvalidHandle{Kind: "writer", Handle: uint64(h)}
	}
	return w, nil
}

// AddColor registers a color in the writer behind h.
func (r *Registry) AddColor(h WriterHandle, name string) (ColorHandle, error) {
	w, err := r.Writer(h)
	if err != nil {
		return ColorHandle{}, err
	}
	return w.AddColor(name)
}

// AddAreaSymbol registers an area symbol in the writer behind h. A color
// handle issued by a different writer yields ErrUnknownColor.
func (r *Registry) AddAreaSymbol(h WriterHandle, name string, code SymbolCode, color ColorHandle) (SymbolHandle, error) {
	w, err := r.Writer(h)
	if err != nil {
		return SymbolHandle{}, err
	}
	return w.AddAreaSymbol(name, code, color)
}

// ExportArea appends an area built from the first count points.
func (r *Registry) ExportArea(h WriterHandle, points []Point, count int, code SymbolCode) error {
	w, err := r.Writer(h)
	if err != nil {
		return err
	}
	return w.ExportAreaN(points, count, code)
}

// WriteFile serializes the writer behind h to path.
func (r *Registry) WriteFile(h WriterHandle, path string) error {
	w, err := r.Writer(h)
	if err != nil {
		return err
	}
	return w.WriteFile(path)
}

// DestroyWriter releases the writer behind h. A writer already closed
// through Writer(h) is released without error. Later use of h, including a
// second DestroyWriter, returns ErrInvalidHandle.
func (r *Registry) DestroyWriter(h WriterHandle) error {
	r.mu.Lock()
	w, err := r.lookup(h)
	if err != nil {
		r.mu.Unlock()
		return err
	}
	r.slots[h-1] = nil
	r.mu.Unlock()

	if w.closed.Load() {
		return nil
	}
	return w.Close()
}

// Live returns the number of writers neither destroyed nor closed.
func (r *Registry) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, w := range r.slots {
		if w != nil && !w.closed.Load() {
			n++
		}
	}
	return n
}

// Default is the process-wide Registry used by the package-level functions.
var Default = NewRegistry()

// CreateWriter creates a writer in the Default registry.
func CreateWriter(originX, originY, scale float64) WriterHandle {
	return Default.CreateWriter(originX, originY, scale)
}

// AddColor registers a color with a writer in the Default registry.
func AddColor(h WriterHandle, name string) (ColorHandle, error) {
	return Default.AddColor(h, name)
}

// AddAreaSymbol registers an area symbol with a writer in the Default registry.
func AddAreaSymbol(h WriterHandle, name string, code SymbolCode, color ColorHandle) (SymbolHandle, error) {
	return Default.AddAreaSymbol(h, name, code, color)
}

// ExportArea exports an area through a writer in the Default registry.
func ExportArea(h WriterHandle, points []Point, count int, code SymbolCode) error {
	return Default.ExportArea(h, points, count, code)
}

// WriteFile writes a map file from a writer in the Default registry.
func WriteFile(h WriterHandle, path string) error {
	return Default.WriteFile(h, path)
}

// DestroyWriter releases a writer in the Default registry.
func DestroyWriter(h WriterHandle) error {
	return Default.DestroyWriter(h)
}
