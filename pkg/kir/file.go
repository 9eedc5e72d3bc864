package kir

import (
	"fmt"
	"os"

	"github.com/kryon-dev/kir/pkg/ir"
)

// ReadFile loads and decodes one KIR document from path.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("kir: read %s: %w", path, err)
	}
	return Unmarshal(data)
}

// ReadTree loads a document from path and reconstructs its tree.
func ReadTree(path string) (*ir.Node, error) {
	doc, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(doc)
}

// WriteFile writes one document to path, pretty-printed when pretty is set.
func WriteFile(doc *Document, path string, pretty bool) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = MarshalIndent(doc)
	} else {
		data, err = Marshal(doc)
	}
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("kir: write %s: %w", path, err)
	}
	return nil
}
