package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amurant/transcode"
)

func init() {
	cmd := &cobra.Command{
		Use:     "sniff <file>",
		Short:   "Report the encoding implied by a file's byte-order-mark",
		Example: `  transcode sniff input.txt`,
		Args:    cobra.ExactArgs(1),
		RunE:    runSniff,
	}
	rootCmd.AddCommand(cmd)
}

func runSniff(cmd *cobra.Command, args []string) error {
	data, err := readInput(args[0])
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", args[0], err)
	}

	enc, bomLen := transcode.SniffEncoding(data)
	if bomLen == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (no byte-order-mark)\n", enc)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%d byte-order-mark bytes)\n", enc, bomLen)
	return nil
}
