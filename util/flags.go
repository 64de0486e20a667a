package util

import (
	"flag"
	"fmt"
	"os"
	"path"
	"runtime"
	"strings"
)

// Flags shared between commands. Each command opts in to the ones it needs
// with FlagUse before calling FlagParse.
var (
	FlagCpu     = runtime.NumCPU()
	FlagCpuProf = ""
	FlagQuiet   = false
	FlagVerbose = false
)

// FlagUse registers shared flags by name: "cpu", "cpuprof", "quiet" and
// "verbose". Unknown names are a programming error.
func FlagUse(names ...string) {
	for _, name := range names {
		switch name {
		case "cpu":
			flag.IntVar(&FlagCpu, "cpu", FlagCpu,
				"The maximum number of CPUs that can be executing "+
					"simultaneously.")
		case "cpuprof":
			flag.StringVar(&FlagCpuProf, "cpuprof", FlagCpuProf,
				"When set, a CPU profile will be written to the file path "+
					"provided.")
		case "quiet":
			flag.BoolVar(&FlagQuiet, "quiet", FlagQuiet,
				"When set, warnings will not be emitted to stderr.")
		case "verbose":
			flag.BoolVar(&FlagVerbose, "verbose", FlagVerbose,
				"When set, progress information will be emitted to stderr.")
		default:
			panic(fmt.Sprintf("BUG: unknown shared flag '%s'", name))
		}
	}
}

// FlagParse parses the command line with a usage message built from the
// positional argument synopsis and the command description given.
func FlagParse(positionalUsage, desc string) {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] %s\n\n",
			path.Base(os.Args[0]), positionalUsage)
		if len(desc) > 0 {
			fmt.Fprintf(os.Stderr, "%s\n\n", wrap(desc, 78))
		}
		flag.PrintDefaults()
	}
	flag.Parse()
}

// AssertNArg exits with usage information when the number of positional
// arguments is not exactly n.
func AssertNArg(n int) {
	if flag.NArg() != n {
		Usage()
	}
}

// AssertLeastNArg exits with usage information when fewer than n positional
// arguments are given.
func AssertLeastNArg(n int) {
	if flag.NArg() < n {
		Usage()
	}
}

func Usage() {
	flag.Usage()
	os.Exit(1)
}

func Arg(i int) string {
	return flag.Arg(i)
}

func NArg() int {
	return flag.NArg()
}

func wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	lines := []string{words[0]}
	for _, word := range words[1:] {
		last := lines[len(lines)-1]
		if len(last)+1+len(word) > width {
			lines = append(lines, word)
		} else {
			lines[len(lines)-1] = last + " " + word
		}
	}
	return strings.Join(lines, "\n")
}
