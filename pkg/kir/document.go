package kir

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/kryon-dev/kir/pkg/ir"
)

// Wire format constants.
const (
	FormatVersion = "2.0"
	FormatName    = "KIR"

	// DefaultLanguage is the metadata language tag stamped on documents
	// produced by this package.
	DefaultLanguage = "go"
)

var (
	ErrMalformedDocument = errors.New("kir: malformed document")
	ErrMissingRoot       = errors.New("kir: document has no root node")
)

// Metadata identifies the document format and the source language of the
// tree.
type Metadata struct {
	Format   string `json:"format"`
	Language string `json:"language"`
}

// Document is the top-level KIR wrapper: one tree per document.
type Document struct {
	Version  string   `json:"version"`
	Metadata Metadata `json:"metadata"`
	Root     *Node    `json:"root"`
}

// Node is the wire form of one tree node. Optional fields marshal to
// nothing (not null) when empty.
type Node struct {
	Type       string         `json:"type"`
	ID         uint32         `json:"id,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
	Style      map[string]any `json:"style,omitempty"`
	Layout     map[string]any `json:"layout,omitempty"`
	Children   []*Node        `json:"children,omitempty"`
	Events     []ir.Event     `json:"events,omitempty"`
}

// MarshalJSON writes the node field by field. The codec's compiled
// encoder cannot walk this self-referential type once nested nodes
// carry map fields, so the recursion over children stays out of it;
// every field value it does see is a flat, non-recursive shape.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"type":`)
	name, err := json.Marshal(n.Type)
	if err != nil {
		return nil, err
	}
	buf.Write(name)
	if n.ID != 0 {
		buf.WriteString(`,"id":`)
		buf.WriteString(strconv.FormatUint(uint64(n.ID), 10))
	}
	if err := writeMapField(&buf, "properties", n.Properties); err != nil {
		return nil, err
	}
	if err := writeMapField(&buf, "style", n.Style); err != nil {
		return nil, err
	}
	if err := writeMapField(&buf, "layout", n.Layout); err != nil {
		return nil, err
	}
	if len(n.Children) > 0 {
		buf.WriteString(`,"children":[`)
		for i, child := range n.Children {
			if i > 0 {
				buf.WriteByte(',')
			}
			if child == nil {
				buf.WriteString("null")
				continue
			}
			data, err := child.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(data)
		}
		buf.WriteByte(']')
	}
	if len(n.Events) > 0 {
		data, err := json.Marshal(n.Events)
		if err != nil {
			return nil, err
		}
		buf.WriteString(`,"events":`)
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMapField(buf *bytes.Buffer, name string, m map[string]any) error {
	if len(m) == 0 {
		return nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	buf.WriteString(`,"`)
	buf.WriteString(name)
	buf.WriteString(`":`)
	buf.Write(data)
	return nil
}

// Marshal renders the document as compact JSON.
func Marshal(doc *Document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("kir: marshal: %w", err)
	}
	return data, nil
}

// MarshalIndent renders the document as pretty-printed JSON.
func MarshalIndent(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("kir: marshal: %w", err)
	}
	return data, nil
}

// Unmarshal parses document JSON. Syntax errors are reported as
// ErrMalformedDocument.
func Unmarshal(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if doc.Root == nil {
		// Tolerate a bare node object with no wrapper.
		var node Node
		if err := json.Unmarshal(data, &node); err != nil || node.Type == "" {
			return nil, ErrMissingRoot
		}
		doc = Document{
			Version:  FormatVersion,
			Metadata: Metadata{Format: FormatName, Language: DefaultLanguage},
			Root:     &node,
		}
	}
	return &doc, nil
}
