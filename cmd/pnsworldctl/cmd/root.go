package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pnsworldctl",
	Short: "pnsworldctl inspects a KiCad board's push-and-shove world model",
	Long: `pnsworldctl loads a .kicad_pcb file into the spatial world model
(pads, vias, and tracks as solids/vias/segments, indexed with joints) and
reports on its structure.

Examples:
  pnsworldctl inspect board.kicad_pcb
  pnsworldctl inspect --net GND board.kicad_pcb`,
	Version: "0.1.0",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
