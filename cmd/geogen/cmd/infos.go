package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infosCmd = &cobra.Command{
	Use:   "infos FILE",
	Short: "show the settings a generate config would use",
	Long: `Read a generate settings file and print the resolved
configuration, without drawing anything. Useful for checking a YAML file
before handing it to 'geogen generate --config FILE'.`,
	Args: cobra.ExactArgs(1),
	Run:  doInfos,
}

func init() {
	RootCmd.AddCommand(infosCmd)
}

func doInfos(cmd *cobra.Command, args []string) {
	var s Settings
	check(unmarshalYAMLFile(args[0], &s))
	fmt.Printf("kind:            %s\n", s.Kind)
	fmt.Printf("x range:         [%g, %g]\n", s.XMin, s.XMax)
	fmt.Printf("y range:         [%g, %g]\n", s.YMin, s.YMax)
	fmt.Printf("size:            [%d, %d]\n", s.MinSize, s.MaxSize)
	fmt.Printf("seed:            %d\n", s.Seed)
	fmt.Printf("hole sizes:      %v\n", s.HoleSizes)
	fmt.Printf("component sizes: %v\n", s.ComponentSizes)
}
