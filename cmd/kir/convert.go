package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kryon-dev/kir/internal/errors"
	"github.com/kryon-dev/kir/pkg/codegen"
	"github.com/kryon-dev/kir/pkg/kir"
)

func convertCmd() *cobra.Command {
	var (
		output   string
		pkgName  string
		funcName string
	)

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Regenerate Go source from a document",
		Long: `Decode a document and emit Go source that rebuilds the same tree.

The generated program uses the el package constructors, so running it
and re-encoding the result reproduces a structurally equivalent
document. Output goes to stdout unless --output is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args[0], output, pkgName, funcName)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&pkgName, "package", "", `Generated package name (default: "main")`)
	cmd.Flags().StringVar(&funcName, "func", "", `Generated function name (default: "BuildTree")`)

	return cmd
}

func runConvert(path, output, pkgName, funcName string) error {
	doc, err := readDocument(path)
	if err != nil {
		return err
	}
	root, err := kir.Decode(doc)
	if err != nil {
		return decodeError(err)
	}

	src := codegen.GenerateWithConfig(root, codegen.Config{
		PackageName: pkgName,
		FuncName:    funcName,
	})

	if output == "" {
		fmt.Print(src)
		return nil
	}

	if err := os.WriteFile(output, []byte(src), 0o644); err != nil {
		return errors.New("E301").Wrap(err)
	}
	success("wrote %s", output)
	return nil
}
