package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kryon-dev/kir/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	successMark = color.New(color.FgGreen).Sprint("✓")
	warnMark    = color.New(color.FgYellow).Sprint("⚠")
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kir",
		Short: "Work with KIR interface documents",
		Long: `kir reads, validates, and transforms KIR interface documents.

A KIR document is a JSON encoding of a declarative interface tree:
a versioned wrapper around a root node, where every node carries a
type, properties, optional style and layout, children, and event
bindings. The CLI covers the document lifecycle:

  • parse     Decode a document and report its shape
  • convert   Regenerate Go source that rebuilds the tree
  • fmt       Rewrite a document in canonical form
  • diff      Compare two documents structurally
  • preview   Serve a live view of a document
  • publish   Push a document to a disk or S3 store`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		parseCmd(),
		convertCmd(),
		fmtCmd(),
		diffCmd(),
		previewCmd(),
		publishCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("%s %s\n", successMark, fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("%s %s\n", warnMark, fmt.Sprintf(format, args...))
}
