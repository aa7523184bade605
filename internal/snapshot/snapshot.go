// Package snapshot marshals a decoded document for downstream
// consumers. The engine does not dictate the persistence format; these
// writers cover the two plain-text encodings the toolchain uses.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ECB2020/Hobyah-sub001/internal/document"
)

// Format selects a snapshot encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown snapshot format %q (want json or yaml)", s)
}

// Write encodes the document to w in the chosen format.
func Write(w io.Writer, doc *document.Document, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(doc)
	}
	return fmt.Errorf("unknown snapshot format %q", f)
}

// Ext returns the conventional file extension for a format.
func (f Format) Ext() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return ".json"
}
