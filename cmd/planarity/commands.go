package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lvlath/planarity/core"
	"github.com/lvlath/planarity/drawplanar"
	"github.com/lvlath/planarity/ioadj"
	"github.com/lvlath/planarity/k23"
	"github.com/lvlath/planarity/k33"
	"github.com/lvlath/planarity/k4"
)

// applyCommand dispatches spec.md 6's single-letter command codes
// (-p/-o/-d/-2/-3/-4) against an already-read graph, returning the
// algorithmic verdict plus the witness/embedding graph to write back out.
func applyCommand(letter string, g *core.Graph) (core.Result, *core.Graph, error) {
	switch letter {
	case "p":
		res, err := g.Embed(core.FlagPlanar)
		return res, g, err
	case "o":
		res, err := g.Embed(core.FlagOuterplanar)
		return res, g, err
	case "d":
		res, err := g.Embed(core.FlagPlanar | core.FlagDrawPlanar)
		if err != nil || res != core.Embedded {
			return res, g, err
		}
		if _, err := drawplanar.Draw(g); err != nil {
			return core.Embedded, g, err
		}
		return res, g, nil
	case "2":
		return k23.Search(g)
	case "3":
		return k33.Search(g)
	case "4":
		return k4.Search(g)
	default:
		return core.Embedded, nil, fmt.Errorf("planarity: unknown command %q", letter)
	}
}

func writeResult(res core.Result, witness *core.Graph, outPath string) error {
	if witness == nil {
		return nil
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("planarity: create %s: %w", outPath, err)
	}
	defer f.Close()
	if err := ioadj.WriteAdjList(witness, f); err != nil {
		return fmt.Errorf("planarity: write %s: %w", outPath, err)
	}
	logf("planarity: %s -> %s (%s)\n", outPath, res, outPath)
	return nil
}

// newRunCmd mirrors spec.md 6's `planarity -s [-q] <cmd> <infile> <outfile>
// [<outfile2>]`: cmd is one of p|o|d|2|3|4, positional exactly as legacy.
func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run <cmd> <infile> <outfile> [outfile2]",
		Aliases: []string{"s"},
		Short:   "Run one command (p|o|d|2|3|4) on a specific graph",
		Args:    cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			letter, inPath, outPath := args[0], args[1], args[2]
			in, err := os.Open(inPath)
			if err != nil {
				exitCode = -1
				return err
			}
			defer in.Close()
			g, err := ioadj.ReadAdjList(in)
			if err != nil {
				exitCode = -1
				return err
			}
			res, witness, err := applyCommand(letter, g)
			if err != nil {
				exitCode = -1
				return err
			}
			if err := writeResult(res, witness, outPath); err != nil {
				exitCode = -1
				return err
			}
			if res == core.NonEmbeddable {
				exitCode = 1
			} else {
				exitCode = 0
			}
			return nil
		},
	}
	return cmd
}

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "test [samples_dir]",
		Aliases: []string{"selftest"},
		Short:   "Built-in regression over bundled sample graphs",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "samples"
			if len(args) == 1 {
				dir = args[0]
			}
			entries, err := os.ReadDir(dir)
			if err != nil {
				exitCode = -1
				return fmt.Errorf("planarity test: %w", err)
			}
			failures := 0
			for _, e := range entries {
				if e.IsDir() {
					continue
				}
				path := dir + "/" + e.Name()
				f, err := os.Open(path)
				if err != nil {
					failures++
					logf("planarity test: %s: open failed: %v\n", path, err)
					continue
				}
				g, err := ioadj.ReadAdjList(f)
				f.Close()
				if err != nil {
					failures++
					logf("planarity test: %s: read failed: %v\n", path, err)
					continue
				}
				if _, err := g.Embed(core.FlagPlanar); err != nil {
					failures++
					logf("planarity test: %s: embed failed: %v\n", path, err)
					continue
				}
				logf("planarity test: %s: ok\n", path)
			}
			if failures > 0 {
				exitCode = 1
				return fmt.Errorf("planarity test: %d failure(s)", failures)
			}
			exitCode = 0
			return nil
		},
	}
	return cmd
}
