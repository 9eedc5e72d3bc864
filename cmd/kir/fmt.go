package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kryon-dev/kir/internal/errors"
	"github.com/kryon-dev/kir/pkg/kir"
)

func fmtCmd() *cobra.Command {
	var (
		write   bool
		compact bool
	)

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Rewrite a document in canonical form",
		Long: `Decode a document and re-encode it canonically.

Canonical form normalizes key casing, drops empty collections, assigns
ids to nodes that lack them, and indents with two spaces. Explicit
node ids are preserved. With --write the file is rewritten in place,
otherwise the result goes to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(args[0], write, compact)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Rewrite the file in place")
	cmd.Flags().BoolVar(&compact, "compact", false, "Emit compact output without indentation")

	return cmd
}

func runFmt(path string, write, compact bool) error {
	doc, err := readDocument(path)
	if err != nil {
		return err
	}
	root, err := kir.Decode(doc)
	if err != nil {
		return decodeError(err)
	}
	language := doc.Metadata.Language
	if language == "" {
		language = kir.DefaultLanguage
	}
	doc = kir.EncodeWithLanguage(root, language)

	var data []byte
	if compact {
		data, err = kir.Marshal(doc)
	} else {
		data, err = kir.MarshalIndent(doc)
	}
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if !write {
		fmt.Print(string(data))
		return nil
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New("E301").Wrap(err)
	}
	success("formatted %s", path)
	return nil
}
