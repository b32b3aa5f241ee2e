package document

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Encoder writes a document tree to w as a single value
type Encoder interface {
	Encode(w io.Writer, n *Node) error
}

// JSONEncoder writes compact JSON followed by a newline. Markup characters in
// node text are written as-is rather than \u-escaped.
type JSONEncoder struct{}

func (JSONEncoder) Encode(w io.Writer, n *Node) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(n); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// YAMLEncoder writes the same tree as a YAML document
type YAMLEncoder struct {
	Indent int
}

func (e YAMLEncoder) Encode(w io.Writer, n *Node) error {
	enc := yaml.NewEncoder(w)
	if e.Indent > 0 {
		enc.SetIndent(e.Indent)
	}
	if err := enc.Encode(n); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
