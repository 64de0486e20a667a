// Command mcq-select loads a native 3D RNA target and a batch of models,
// resolves a display name for each and carves every structure into the
// named selection that torsion angle comparison consumes. The resulting
// selections are summarized on stdout.
package main

import (
	"flag"
	"fmt"
	"runtime/pprof"

	"github.com/tzok/mcq-cli/batch"
	"github.com/tzok/mcq-cli/matching"
	"github.com/tzok/mcq-cli/structures"
	"github.com/tzok/mcq-cli/torsion"
	"github.com/tzok/mcq-cli/util"
)

var (
	flagTarget          = ""
	flagThreshold       = 0.0
	flagSelectionTarget = ""
	flagSelectionModel  = ""
	flagAngles          = ""
	flagNames           = ""
)

func init() {
	flag.StringVar(&flagTarget, "t", flagTarget, "Alias for -target.")
	flag.StringVar(&flagTarget, "target", flagTarget,
		"Path to PDB file of the native 3D RNA target. Required.")
	flag.Float64Var(&flagThreshold, "v", flagThreshold,
		"Alias for -mcq-threshold.")
	flag.Float64Var(&flagThreshold, "mcq-threshold", flagThreshold,
		"Value of MCQ threshold in degrees. Required.")
	flag.StringVar(&flagSelectionTarget, "T", flagSelectionTarget,
		"Alias for -selection-target.")
	flag.StringVar(&flagSelectionTarget, "selection-target", flagSelectionTarget,
		"Selection query for the target. An asterisk '*' selects all\n"+
			"residues in file order as a single fragment. An empty string\n"+
			"divides the structure into compact fragments automatically.")
	flag.StringVar(&flagSelectionModel, "M", flagSelectionModel,
		"Alias for -selection-model.")
	flag.StringVar(&flagSelectionModel, "selection-model", flagSelectionModel,
		"Selection query for every model; same syntax as -selection-target.")
	flag.StringVar(&flagAngles, "a", flagAngles, "Alias for -angles.")
	flag.StringVar(&flagAngles, "angles", flagAngles,
		"Torsion angle types (separated by comma without space).\n"+
			"Select from: "+torsion.Join(torsion.All())+".\n"+
			"Default is: "+torsion.Join(torsion.MainAngles())+".")
	flag.StringVar(&flagNames, "n", flagNames, "Alias for -names.")
	flag.StringVar(&flagNames, "names", flagNames,
		"Model names to be used in output (separated by comma without\n"+
			"space), one per model path. On a count mismatch the list is\n"+
			"ignored and names are derived from the files instead.")

	util.FlagUse("cpu", "cpuprof", "quiet", "verbose")
	util.FlagParse("model-path [model-path ...]",
		"Load the target and every model structure, resolve display names "+
			"and make the selections consumed by torsion angle comparison. "+
			"One selection summary is printed per structure, in input order.")
	util.AssertLeastNArg(1)
}

func main() {
	if len(util.FlagCpuProf) > 0 {
		f := util.CreateFile(util.FlagCpuProf)
		pprof.StartCPUProfile(f)
		defer f.Close()
		defer pprof.StopCPUProfile()
	}
	if len(flagTarget) == 0 {
		util.Fatalf("The -target flag is required.")
	}
	if flagThreshold <= 0 {
		util.Fatalf("The -mcq-threshold flag must be a positive number " +
			"of degrees.")
	}

	angles, err := torsion.Parse(flagAngles)
	util.Assert(err)

	pipeline := &batch.Pipeline{
		Workers: util.FlagCpu,
		Warn: func(w structures.Warning) {
			util.Warnf("%s", util.WarningMessage(w))
		},
	}

	target, err := pipeline.SelectTarget(flagTarget, flagSelectionTarget)
	util.Assert(err, "Could not select target '%s'", flagTarget)

	progress := util.NewProgress(util.NArg())
	pipeline.Done = progress.JobDone
	models, err := pipeline.SelectModels(flag.Args(), flagSelectionModel,
		flagNames)
	progress.Close()
	util.Assert(err)

	fmt.Printf("mcq-threshold: %g degrees\n", flagThreshold)
	fmt.Printf("angles: %s\n", torsion.Join(angles))
	printSelection("target", target)
	for _, sel := range models {
		printSelection("model", sel)
	}
}

func printSelection(role string, sel matching.Selection) {
	fmt.Printf("%s: %s (%d fragments, %d residues)\n",
		role, sel.Name, len(sel.Fragments), sel.ResidueCount())
	for _, frag := range sel.Fragments {
		fmt.Printf("  %s (%d residues)\n", frag.Name, len(frag.Residues))
	}
}
