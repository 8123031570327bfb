package format

import (
	"fmt"
	"sort"

	"github.com/puzpuzpuz/xsync/v3"
)

// CodecInfo describes a registered serialization format
type CodecInfo struct {
	// New creates a fresh codec instance for the format
	New func() ICodec
	// Binary reports whether the format produces a binary encoding
	// (as opposed to human-readable text)
	Binary bool
}

// Registry maps format names to codec factories. It also provides the
// binary/text classification used for temporary file handling and reporting.
type Registry struct {
	codecs *xsync.MapOf[string, CodecInfo]
}

// NewRegistry creates a registry pre-populated with all built-in formats
func NewRegistry() *Registry {
	r := &Registry{codecs: xsync.NewMapOf[string, CodecInfo]()}
	r.Register("json", CodecInfo{New: NewJSONCodec, Binary: false})
	r.Register("gob", CodecInfo{New: NewGOBCodec, Binary: true})
	r.Register("cbor", CodecInfo{New: NewCBORCodec, Binary: true})
	r.Register("packed", CodecInfo{New: NewPackedCodec, Binary: true})
	return r
}

// Register adds or replaces a format under the given name
func (r *Registry) Register(name string, info CodecInfo) {
	r.codecs.Store(name, info)
}

// Get creates a codec for the named format.
// It returns an error for unknown format names.
func (r *Registry) Get(name string) (ICodec, error) {
	info, ok := r.codecs.Load(name)
	if !ok {
		return nil, fmt.Errorf("unknown format %q (available: %v)", name, r.Names())
	}
	return info.New(), nil
}

// IsBinary reports whether the named format is classified as binary.
// Unknown formats are reported as binary.
func (r *Registry) IsBinary(name string) bool {
	info, ok := r.codecs.Load(name)
	if !ok {
		return true
	}
	return info.Binary
}

// Names returns all registered format names in sorted order
func (r *Registry) Names() []string {
	var names []string
	r.codecs.Range(func(name string, _ CodecInfo) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}

// --------------------------------------------------------------------------
// Default registry
// --------------------------------------------------------------------------

var defaultRegistry = NewRegistry()

// Default returns the registry holding the built-in formats
func Default() *Registry {
	return defaultRegistry
}

// Get creates a codec for the named format from the default registry
func Get(name string) (ICodec, error) {
	return defaultRegistry.Get(name)
}

// IsBinary reports the binary classification of the named format in the
// default registry
func IsBinary(name string) bool {
	return defaultRegistry.IsBinary(name)
}

// Names returns the format names registered in the default registry
func Names() []string {
	return defaultRegistry.Names()
}
