package integration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/honeybbq/serviceast/pkg/serviceast"
)

func testdataPath(name string) string {
	return filepath.Join("..", "testdata", "service", name)
}

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	raw, err := os.ReadFile(testdataPath(name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return raw
}

func decodeDocument(t *testing.T, raw []byte) *structpb.Struct {
	t.Helper()
	var msg structpb.Struct
	if err := protojson.Unmarshal(raw, &msg); err != nil {
		t.Fatalf("unmarshal document: %v", err)
	}
	return &msg
}

// bundleToText joins the bundle sources; several sources get a name header.
func bundleToText(bundle *serviceast.Bundle) string {
	if len(bundle.Sources) == 1 {
		return string(bundle.Sources[0].Content)
	}
	var b strings.Builder
	for i, src := range bundle.Sources {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "// ==> %s\n", src.Name)
		b.Write(src.Content)
	}
	return b.String()
}

// normalizeSource trims surrounding whitespace and unifies line endings.
func normalizeSource(text string) string {
	text = strings.TrimSpace(text)
	return strings.ReplaceAll(text, "\r\n", "\n")
}

func compareSources(got, want string) bool {
	return normalizeSource(got) == normalizeSource(want)
}

// formatSourceDiff reports the differing lines of two sources.
func formatSourceDiff(got, want string) string {
	gotNorm := normalizeSource(got)
	wantNorm := normalizeSource(want)
	if gotNorm == wantNorm {
		return "sources match (after normalization)"
	}

	gotLines := strings.Split(gotNorm, "\n")
	wantLines := strings.Split(wantNorm, "\n")

	var b strings.Builder
	fmt.Fprintf(&b, "source mismatch (got %d lines, want %d lines)\n", len(gotLines), len(wantLines))
	fmt.Fprintf(&b, "--- got (normalized) ---\n%s\n", gotNorm)
	fmt.Fprintf(&b, "--- want (normalized) ---\n%s\n", wantNorm)

	fmt.Fprintf(&b, "--- line-by-line diff ---\n")
	for i := 0; i < max(len(gotLines), len(wantLines)); i++ {
		var gotLine, wantLine string
		if i < len(gotLines) {
			gotLine = gotLines[i]
		}
		if i < len(wantLines) {
			wantLine = wantLines[i]
		}
		if gotLine != wantLine {
			fmt.Fprintf(&b, "Line %d differs:\n", i+1)
			fmt.Fprintf(&b, "  got:  %q\n", gotLine)
			fmt.Fprintf(&b, "  want: %q\n", wantLine)
		}
	}
	return b.String()
}
