package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/kryon-dev/kir/pkg/ir"
	"github.com/kryon-dev/kir/pkg/kir"
)

var (
	delLine = color.New(color.FgRed).SprintFunc()
	addLine = color.New(color.FgGreen).SprintFunc()
)

func diffCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "diff <file-a> <file-b>",
		Short: "Compare two documents structurally",
		Long: `Canonicalize two documents and print a line diff between them.

Both documents are decoded and re-encoded before comparison, so
formatting, key casing, and id assignment differences do not show up;
only structural differences do. Exits 1 when the documents differ.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args[0], args[1], quiet)
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Report only whether the documents differ")

	return cmd
}

// canonicalize renders a document in canonical indented form with ids
// reassigned, so equivalent trees compare byte-identical.
func canonicalize(path string) (string, error) {
	doc, err := readDocument(path)
	if err != nil {
		return "", err
	}
	root, err := kir.Decode(doc)
	if err != nil {
		return "", decodeError(err)
	}
	root.Walk(func(n *ir.Node) bool {
		n.ID = 0
		return true
	})
	data, err := kir.MarshalIndent(kir.Encode(root))
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

func runDiff(pathA, pathB string, quiet bool) error {
	a, err := canonicalize(pathA)
	if err != nil {
		return err
	}
	b, err := canonicalize(pathB)
	if err != nil {
		return err
	}

	if a == b {
		success("%s and %s are structurally equivalent", pathA, pathB)
		return nil
	}

	if !quiet {
		dmp := diffpatch.New()
		chA, chB, lines := dmp.DiffLinesToChars(a, b)
		diffs := dmp.DiffCharsToLines(dmp.DiffMain(chA, chB, false), lines)

		for _, d := range diffs {
			for _, line := range splitLines(d.Text) {
				switch d.Type {
				case diffpatch.DiffDelete:
					fmt.Println(delLine("- " + line))
				case diffpatch.DiffInsert:
					fmt.Println(addLine("+ " + line))
				case diffpatch.DiffEqual:
					fmt.Println("  " + line)
				}
			}
		}
	}

	return fmt.Errorf("%s and %s differ", pathA, pathB)
}

func splitLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
