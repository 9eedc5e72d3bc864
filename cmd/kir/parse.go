package main

import (
	stderrors "errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kryon-dev/kir/internal/errors"
	"github.com/kryon-dev/kir/pkg/ir"
	"github.com/kryon-dev/kir/pkg/kir"
)

// readDocument loads and decodes a document, mapping failures onto
// structured CLI errors.
func readDocument(path string) (*kir.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E300").WithMessagef("Input file not found: %s", path).Wrap(err)
	}
	doc, err := kir.Unmarshal(data)
	if err != nil {
		return nil, errors.FromDecodeError(path, data, err)
	}
	return doc, nil
}

// decodeError maps a tree decode failure onto its registered code.
func decodeError(err error) error {
	var verr *ir.ValidationError
	var ferr *ir.FormatError
	switch {
	case stderrors.Is(err, kir.ErrMissingRoot):
		return errors.New("E002").Wrap(err)
	case stderrors.As(err, &verr) && verr.Field == "heading level":
		return errors.New("E100").Wrap(err)
	case stderrors.As(err, &ferr) && ferr.Kind == "dimension":
		return errors.New("E102").Wrap(err)
	case stderrors.As(err, &verr), stderrors.As(err, &ferr):
		return errors.New("E101").Wrap(err)
	default:
		return errors.New("E002").Wrap(err)
	}
}

func parseCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Decode a document and report its shape",
		Long: `Decode a document, validate it, and print a summary of the tree.

With --json the canonical re-encoding is printed instead of the
summary, which makes parse --json a quick validity check that shows
exactly what the decoder understood.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the canonical re-encoding instead of a summary")

	return cmd
}

func runParse(path string, asJSON bool) error {
	doc, err := readDocument(path)
	if err != nil {
		return err
	}

	if asJSON {
		data, err := kir.MarshalIndent(doc)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	root, err := kir.Decode(doc)
	if err != nil {
		return decodeError(err)
	}

	var nodes, withID, events int
	depth := treeDepth(root, 1)
	kinds := make(map[string]int)
	root.Walk(func(n *ir.Node) bool {
		nodes++
		if n.ID != 0 {
			withID++
		}
		events += len(n.Events)
		kinds[n.Kind.String()]++
		return true
	})

	success("%s parsed", path)
	info("version:  %s", doc.Version)
	info("format:   %s (%s)", doc.Metadata.Format, doc.Metadata.Language)
	info("nodes:    %d (%d with explicit ids)", nodes, withID)
	info("depth:    %d", depth)
	info("events:   %d", events)

	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		info("  %-18s %d", name, kinds[name])
	}

	return nil
}

func treeDepth(n *ir.Node, d int) int {
	if n == nil {
		return d - 1
	}
	max := d
	for _, c := range n.Children {
		if cd := treeDepth(c, d+1); cd > max {
			max = cd
		}
	}
	return max
}
