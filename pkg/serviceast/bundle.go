package serviceast

import "time"

// Source is one generated output file.
type Source struct {
	Name    string // File name (e.g., "hello.bal")
	Content []byte
}

// Metadata stores information about how and when the bundle was generated.
type Metadata struct {
	Format    string            // Format identifier ("bal", "yaml")
	Backend   string            // Backend name that generated this bundle
	Generated time.Time         // Timestamp when the bundle was created
	Version   string            // Optional version tag
	Custom    map[string]string // Backend-specific extras, e.g. node counts
}

// Bundle is the complete output of a render operation.
type Bundle struct {
	Sources  []Source
	Metadata Metadata
}

// NewBundle creates an empty Bundle with initialized metadata.
// The Generated timestamp is set to the current time.
func NewBundle(format, backend string) *Bundle {
	return &Bundle{
		Sources: make([]Source, 0),
		Metadata: Metadata{
			Format:    format,
			Backend:   backend,
			Generated: time.Now(),
			Custom:    make(map[string]string),
		},
	}
}

// Source returns the source named name, if present.
func (b *Bundle) Source(name string) (Source, bool) {
	if b == nil {
		return Source{}, false
	}
	for _, s := range b.Sources {
		if s.Name == name {
			return s, true
		}
	}
	return Source{}, false
}
