package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rushhour/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration file. Save it as
~/.rushhour/config.yaml or ./configs/rushhour.yaml and edit to override.`,
	Run: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	if err := writeDefaultConfig(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		os.Exit(1)
	}
}

func writeDefaultConfig(w io.Writer) error {
	_, err := w.Write(config.DefaultYAML())
	return err
}
