package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "transcode",
	Short: "Inspect and convert text between UTF-8, UTF-16 and Latin-1",
	Long: `transcode provides three features:
- Validates whether a file is well-formed UTF-8.
- Sniffs a file's encoding from its byte-order-mark prefix.
- Converts a file between UTF-8, UTF-16 (native-endian) and Latin-1.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
