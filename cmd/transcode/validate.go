package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/amurant/transcode"
)

func init() {
	cmd := &cobra.Command{
		Use:     "validate <file>",
		Short:   "Check whether a file is well-formed UTF-8",
		Example: `  transcode validate input.txt`,
		Args:    cobra.ExactArgs(1),
		RunE:    runValidate,
	}
	rootCmd.AddCommand(cmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := readInput(args[0])
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", args[0], err)
	}

	if transcode.IsUTF8(data) {
		fmt.Fprintln(cmd.OutOrStdout(), "ok: valid UTF-8")
		return nil
	}

	upTo := transcode.ValidUpTo(data)
	return fmt.Errorf("invalid UTF-8 at byte offset %d", upTo)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
