package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/geogen"
	"github.com/arl/geogen/internal/objdump"
	"github.com/arl/geogen/oracle"
	"github.com/arl/geogen/predicate"
)

var (
	fixtureSeed    int64
	fixtureMinSize int
	fixtureMaxSize int
)

var fixtureCmd = &cobra.Command{
	Use:   "fixture OBJFILE",
	Short: "replay a contour generation against a fixed point corpus",
	Long: `Load a point corpus from a Wavefront OBJ file and run the
chi-algorithm contour generator against it, in place of coordinates drawn
live from a generator. Useful for pinning a regression down to a concrete
set of input points.`,
	Args: cobra.ExactArgs(1),
	Run:  runFixture,
}

func init() {
	RootCmd.AddCommand(fixtureCmd)

	fixtureCmd.Flags().Int64Var(&fixtureSeed, "seed", 1, "draw oracle seed")
	fixtureCmd.Flags().IntVar(&fixtureMinSize, "min-size", 3, "minimum contour size")
	fixtureCmd.Flags().IntVar(&fixtureMaxSize, "max-size", 0, "maximum contour size (0 = corpus size)")
}

func runFixture(cmd *cobra.Command, args []string) {
	pts, err := objdump.LoadPoints(args[0])
	check(err)
	if len(pts) < 3 {
		check(fmt.Errorf("fixture: corpus %q has fewer than 3 points", args[0]))
	}

	maxSize := fixtureMaxSize
	if maxSize == 0 {
		maxSize = len(pts)
	}

	o := oracle.NewRand(fixtureSeed)
	log := geogen.NewBuildLog()
	cfg := geogen.Config{Predicate: predicate.Context{}, Log: log}

	size := oracle.ListSize(o, fixtureMinSize, maxSize)
	ring := cfg.ChiContourBuilder()(pts, size)

	for _, m := range log.Messages() {
		fmt.Println(m)
	}
	fmt.Println(objdump.DumpRing(ring))
}
