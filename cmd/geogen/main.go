// Command geogen exercises the geogen library from the command line: draw a
// single geometry from flags, write a settings file, replay a fixture, or
// print the configuration a settings file resolves to.
package main

import "github.com/arl/geogen/cmd/geogen/cmd"

func main() {
	cmd.Execute()
}
