// Package document reads service documents for the CLI. Inputs may be JSON
// or YAML; several inputs are layered with serviceast.MergeJSON.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"

	"github.com/honeybbq/serviceast/pkg/serviceast"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Load reads and layers the documents at paths. An empty list reads stdin.
func Load(stdin io.Reader, paths []string, identifiers []string) (*structpb.Struct, error) {
	if len(paths) == 0 {
		paths = []string{Stdin}
	}
	layers := make([][]byte, 0, len(paths))
	for _, path := range paths {
		raw, err := ReadInput(stdin, path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", displayName(path), err)
		}
		data, err := ToJSON(path, raw)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", displayName(path), err)
		}
		layers = append(layers, data)
	}

	payload := layers[0]
	if len(layers) > 1 {
		merged, err := serviceast.MergeJSON(layers, identifiers)
		if err != nil {
			return nil, fmt.Errorf("merge documents: %w", err)
		}
		payload = merged
	}

	var msg structpb.Struct
	if err := protojson.Unmarshal(payload, &msg); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &msg, nil
}

// ReadInput reads path, or stdin when path is empty or "-".
func ReadInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == Stdin {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// ToJSON returns raw as JSON. YAML is detected by extension, or by content
// when the input does not start with '{'.
func ToJSON(path string, raw []byte) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(path))
	trimmed := bytes.TrimSpace(raw)
	if ext == ".json" || (ext != ".yaml" && ext != ".yml" && bytes.HasPrefix(trimmed, []byte("{"))) {
		return trimmed, nil
	}

	var v any
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	if v == nil {
		return []byte("{}"), nil
	}
	if _, ok := v.(map[string]any); !ok {
		return nil, fmt.Errorf("document must be a mapping, got %T", v)
	}
	return json.Marshal(v)
}

// Marshal encodes msg as JSON. Backends return documents as proto.Message,
// so any message is accepted.
func Marshal(msg proto.Message, pretty bool) ([]byte, error) {
	opts := protojson.MarshalOptions{}
	if pretty {
		opts.Multiline = true
		opts.Indent = "  "
	}
	return opts.Marshal(msg)
}

func displayName(path string) string {
	if path == "" || path == Stdin {
		return "stdin"
	}
	return path
}
