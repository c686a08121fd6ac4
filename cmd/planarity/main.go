// Command planarity is the reference driver over core/ioadj/builder/k23/
// k33/k4/drawplanar, grounded on spec.md 6's legacy -test/-s/-r/-rm/-rn
// surface and reimplemented as cobra subcommands (test, run, random,
// random-maximal, random-maximal-plus-edge). legacyArgs translates the
// original single-dash verbs to subcommand names before cobra parses, so
// scripts written against the legacy surface still work.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var quiet bool

func main() {
	os.Exit(run())
}

// run returns the legacy exit code (spec.md 6): 0 OK, 1 NonEmbeddable, -1
// internal error. cobra itself only distinguishes zero/nonzero, so each
// subcommand stashes its intended code in exitCode before returning.
func run() int {
	root := &cobra.Command{
		Use:   "planarity",
		Short: "Boyer-Myrvold edge-addition planarity embedding engine",
		Long: `planarity tests graphs for planarity, outerplanarity, draw-planar
embeddability, and K2,3/K3,3/K4 subgraph homeomorphism, and can build random
test fixtures.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")

	root.AddCommand(
		newTestCmd(),
		newRunCmd(),
		newRandomCmd(),
		newRandomMaximalCmd(),
		newRandomMaximalPlusEdgeCmd(),
	)
	root.SetArgs(legacyArgs(os.Args[1:]))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCode
	}
	return exitCode
}

// legacyArgs rewrites spec.md 6's single-dash leading flag (-h, -test, -s,
// -r, -rm, -rn) into the matching cobra subcommand name and strips the dash
// from a legacy command code (-p, -o, -d, -2, -3, -4) among the later
// arguments, leaving the rest untouched, so scripts written against the
// original CLI surface still parse without teaching cobra about single-dash
// verbs.
func legacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	legacy := map[string]string{
		"-h":    "help",
		"-menu": "help",
		"-test": "test",
		"-s":    "run",
		"-r":    "random",
		"-rm":   "random-maximal",
		"-rn":   "random-maximal-plus-edge",
	}
	if verb, ok := legacy[args[0]]; ok {
		out := append([]string{verb}, args[1:]...)
		for i := 1; i < len(out); i++ {
			switch out[i] {
			case "-p", "-o", "-d", "-2", "-3", "-4":
				out[i] = out[i][1:]
			}
		}
		return out
	}
	return args
}

// exitCode lets a subcommand's RunE communicate the legacy tri-state result
// (0/1/-1) back to run() without cobra's own binary exit semantics getting
// in the way.
var exitCode int

func logf(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
