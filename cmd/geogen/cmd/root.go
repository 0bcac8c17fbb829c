package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "geogen",
	Short: "generate random planar geometries",
	Long: `geogen draws random points, segments, contours, polygons with
holes and heterogeneous mixes of them, for use as inputs to property-based
tests:
	- generate one shape from coordinate-range flags,
	- write a settings file prefilled with default bounds (YAML),
	- replay a generation against a fixed point corpus loaded from OBJ,
	- show the configuration a settings file resolves to.`,
}

// Execute adds all child commands to the root command and runs it. Called
// once from main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
