package cmd

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/arl/geogen"
	"github.com/arl/geogen/oracle"
	"github.com/arl/geogen/predicate"
)

var (
	genConfigPath string
	genKind       string
	genSeed       int64
	genMinSize    int
	genMaxSize    int
	genXMin       float32
	genXMax       float32
	genYMin       float32
	genYMax       float32
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "draw one random geometry and print it",
	Long: `Draw a single geometry of the requested kind from coordinate-range
and size-bound flags (or a settings file loaded with --config) and print it
to standard output.`,
	Run: runGenerate,
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "load settings from a YAML file instead of flags")
	generateCmd.Flags().StringVar(&genKind, "kind", "contour", "geometry kind to draw")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 1, "draw oracle seed")
	generateCmd.Flags().IntVar(&genMinSize, "min-size", 5, "minimum size")
	generateCmd.Flags().IntVar(&genMaxSize, "max-size", 10, "maximum size")
	generateCmd.Flags().Float32Var(&genXMin, "x-min", 0, "minimum x coordinate")
	generateCmd.Flags().Float32Var(&genXMax, "x-max", 100, "maximum x coordinate")
	generateCmd.Flags().Float32Var(&genYMin, "y-min", 0, "minimum y coordinate")
	generateCmd.Flags().Float32Var(&genYMax, "y-max", 100, "maximum y coordinate")
}

func runGenerate(cmd *cobra.Command, args []string) {
	settings := Settings{
		Kind: genKind, Seed: genSeed,
		MinSize: genMinSize, MaxSize: genMaxSize,
		XMin: genXMin, XMax: genXMax, YMin: genYMin, YMax: genYMax,
	}
	if genConfigPath != "" {
		check(unmarshalYAMLFile(genConfigPath, &settings))
	}

	o := oracle.NewRand(settings.Seed)
	rnd := rand.New(rand.NewSource(settings.Seed + 1))
	x := func() float32 { return settings.XMin + rnd.Float32()*(settings.XMax-settings.XMin) }
	y := func() float32 { return settings.YMin + rnd.Float32()*(settings.YMax-settings.YMin) }

	log := geogen.NewBuildLog()
	cfg := geogen.Config{Predicate: predicate.Context{}, Log: log}
	bounds := geogen.Bounds{Min: settings.MinSize, Max: settings.MaxSize}

	out, err := drawKind(cfg, o, x, y, bounds, settings)
	for _, m := range log.Messages() {
		fmt.Println(m)
	}
	check(err)
	fmt.Println(out)
}

func drawKind(cfg geogen.Config, o oracle.Oracle, x, y geogen.CoordFn, bounds geogen.Bounds, settings Settings) (string, error) {
	switch settings.Kind {
	case "point":
		return fmt.Sprint(geogen.GenPoint(x, y)), nil
	case "segment":
		s, err := geogen.GenSegment(x, y)
		return fmt.Sprint(s), err
	case "box":
		return fmt.Sprint(geogen.GenBox(x, y)), nil
	case "multipoint":
		m, err := geogen.GenMultipoint(cfg, x, y, bounds)
		return fmt.Sprint(m), err
	case "multisegment":
		m, err := geogen.GenMultisegment(cfg, o, x, y, bounds)
		return fmt.Sprint(m), err
	case "contour":
		c, err := geogen.GenContour(cfg, o, x, y, bounds)
		return fmt.Sprint(c), err
	case "convex-contour":
		c, err := geogen.GenConvexContour(cfg, o, x, y, bounds)
		return fmt.Sprint(c), err
	case "concave-contour":
		c, err := geogen.GenConcaveContour(cfg, o, x, y, bounds)
		return fmt.Sprint(c), err
	case "star-contour":
		c, err := geogen.GenStarContour(cfg, o, x, y, bounds)
		return fmt.Sprint(c), err
	case "triangular-contour":
		c, err := geogen.GenTriangularContour(x, y, cfg.Predicate.Orientation)
		return fmt.Sprint(c), err
	case "rectangular-contour":
		return fmt.Sprint(geogen.GenRectangularContour(x, y)), nil
	case "polygon":
		holeBounds := holeBoundsOf(settings)
		p, err := geogen.GenPolygon(cfg, o, x, y, bounds, holeBounds)
		return fmt.Sprint(p), err
	case "multicontour":
		comp := componentBoundsOf(settings)
		m, err := geogen.GenMulticontour(cfg, o, x, y, comp, cfg.ChiContourBuilder())
		return fmt.Sprint(m), err
	case "multipolygon":
		comp := componentBoundsOf(settings)
		holeBounds := make([][]geogen.Bounds, len(comp))
		for i := range holeBounds {
			holeBounds[i] = holeBoundsOf(settings)
		}
		m, err := geogen.GenMultipolygon(cfg, o, x, y, comp, holeBounds)
		return fmt.Sprint(m), err
	case "mix":
		sizes := geogen.MixSizes{
			Points:     bounds,
			Segments:   bounds,
			BorderSize: bounds,
			HoleSizes:  holeBoundsOf(settings),
		}
		m, err := geogen.GenMix(cfg, o, x, y, sizes)
		return fmt.Sprint(m), err
	default:
		return "", fmt.Errorf("unknown kind %q", settings.Kind)
	}
}

func holeBoundsOf(settings Settings) []geogen.Bounds {
	hb := make([]geogen.Bounds, len(settings.HoleSizes))
	for i, h := range settings.HoleSizes {
		hb[i] = geogen.Bounds{Min: h[0], Max: h[1]}
	}
	return hb
}

func componentBoundsOf(settings Settings) []geogen.Bounds {
	cb := make([]geogen.Bounds, len(settings.ComponentSizes))
	for i, c := range settings.ComponentSizes {
		cb[i] = geogen.Bounds{Min: c[0], Max: c[1]}
	}
	return cb
}
