package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Settings is the YAML-backed configuration for a generate run: coordinate
// ranges, size bounds, and the component bounds composite geometries need.
// Mirrors recast.Config's plain-struct-plus-YAML-file approach.
type Settings struct {
	// Kind selects the entry point: point, segment, box, multipoint,
	// multisegment, contour, convex-contour, concave-contour, star-contour,
	// triangular-contour, rectangular-contour, multicontour, polygon,
	// multipolygon, or mix.
	Kind string `yaml:"kind"`

	XMin float32 `yaml:"x_min"`
	XMax float32 `yaml:"x_max"`
	YMin float32 `yaml:"y_min"`
	YMax float32 `yaml:"y_max"`

	MinSize int `yaml:"min_size"`
	MaxSize int `yaml:"max_size"`

	// HoleSizes bounds each hole of a polygon/multipolygon, one [min,max]
	// pair per hole.
	HoleSizes [][2]int `yaml:"hole_sizes"`

	// ComponentSizes bounds each component of a multicontour/multipolygon,
	// one [min,max] pair per component.
	ComponentSizes [][2]int `yaml:"component_sizes"`

	Seed int64 `yaml:"seed"`
}

// DefaultSettings returns the settings a fresh config file is prefilled
// with: a modest contour over [0,100]x[0,100].
func DefaultSettings() Settings {
	return Settings{
		Kind:    "contour",
		XMin:    0,
		XMax:    100,
		YMin:    0,
		YMax:    100,
		MinSize: 5,
		MaxSize: 10,
		Seed:    1,
	}
}

var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a generate settings file",
	Long: `Create a generate settings file in YAML format, prefilled with
default values.

If FILE is not provided, 'geogen.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "geogen.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		ok, err := confirmIfExists(path, fmt.Sprintf("file %s already exists, overwrite? [y/N]", path))
		if err != nil {
			fmt.Println("aborted,", err)
			return
		}
		if !ok {
			fmt.Println("aborted by user")
			return
		}
		check(marshalYAMLFile(path, DefaultSettings()))
		fmt.Printf("settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
