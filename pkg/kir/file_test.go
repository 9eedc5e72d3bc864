package kir

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kryon-dev/kir/pkg/ir"
)

func TestWriteReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.kir")

	doc := Encode(ir.Column().AddChild(ir.Text("hello")))
	if err := WriteFile(doc, path, true); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(raw), "\n") {
		t.Error("written file should end with a newline")
	}

	back, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if back.Root.Type != "Column" {
		t.Errorf("Root.Type = %q", back.Root.Type)
	}

	tree, err := ReadTree(path)
	if err != nil {
		t.Fatal(err)
	}
	if tree.Kind != ir.KindColumn || len(tree.Children) != 1 {
		t.Errorf("tree = %+v", tree)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.kir")); err == nil {
		t.Error("ReadFile should fail on a missing file")
	}
}
