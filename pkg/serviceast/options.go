package serviceast

// DefaultIndent is used when RenderOptions.Indent is empty.
const DefaultIndent = "    "

// RenderOptions controls rendering of a document.
type RenderOptions struct {
	Indent                  string // Indentation unit for nested blocks
	IncludeEmptyAnnotations bool   // Render annotations whose value is empty
	IncludeNodeIDs          bool   // Emit node ids where the format allows it
	GenerationTag           string // Optional tag emitted as a leading comment
}

// IndentUnit returns Indent or DefaultIndent.
func (o RenderOptions) IndentUnit() string {
	if o.Indent == "" {
		return DefaultIndent
	}
	return o.Indent
}

// ParseOptions controls parsing of native output.
type ParseOptions struct {
	SourceMetadata map[string]string // Metadata about the source, e.g. "path"
}

// Origin returns the "path" entry of SourceMetadata, or fallback.
func (o ParseOptions) Origin(fallback string) string {
	if p := o.SourceMetadata["path"]; p != "" {
		return p
	}
	return fallback
}
