// Command mcq-angles prints the torsion angle types known to the registry,
// or resolves a comma-separated angle list the way the other commands do.
package main

import (
	"flag"
	"fmt"

	"github.com/tzok/mcq-cli/torsion"
	"github.com/tzok/mcq-cli/util"
)

var flagAngles = ""

func init() {
	flag.StringVar(&flagAngles, "a", flagAngles, "Alias for -angles.")
	flag.StringVar(&flagAngles, "angles", flagAngles,
		"Torsion angle types (separated by comma without space) to resolve\n"+
			"against the registry. When absent, the registry itself is printed.")

	util.FlagParse("",
		"Print the known torsion angle types and the default main angle "+
			"subset, or validate an -angles list against the registry.")
	util.AssertNArg(0)
}

func main() {
	if len(flagAngles) == 0 {
		fmt.Printf("available: %s\n", torsion.Join(torsion.All()))
		fmt.Printf("main: %s\n", torsion.Join(torsion.MainAngles()))
		return
	}

	angles, err := torsion.Parse(flagAngles)
	util.Assert(err)
	for _, angle := range angles {
		fmt.Println(angle)
	}
}
