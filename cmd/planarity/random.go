package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lvlath/planarity/builder"
	"github.com/lvlath/planarity/core"
)

func newRandomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "random <cmd> <K> <N>",
		Aliases: []string{"r"},
		Short:   "Run one command on K random sparse graphs of N vertices",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			letter := args[0]
			k, n, err := parseKN(args[1], args[2])
			if err != nil {
				exitCode = -1
				return err
			}
			nonEmbeddable := 0
			for i := 0; i < k; i++ {
				g, runID, err := builder.BuildGraph(n, []builder.BuilderOption{builder.WithSeed(time.Now().UnixNano() + int64(i))}, builder.RandomSparse(0.5))
				if err != nil {
					exitCode = -1
					return fmt.Errorf("planarity random: build run %s: %w", runID, err)
				}
				res, _, err := applyCommand(letter, g)
				if err != nil {
					exitCode = -1
					return fmt.Errorf("planarity random: run %s: %w", runID, err)
				}
				logf("planarity random: run %s: graph %d/%d: %s\n", runID, i+1, k, res)
				if res == core.NonEmbeddable {
					nonEmbeddable++
				}
			}
			if nonEmbeddable > 0 {
				exitCode = 1
			} else {
				exitCode = 0
			}
			return nil
		},
	}
	return cmd
}

func newRandomMaximalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "random-maximal <N> <outfile> [outfile2]",
		Aliases: []string{"rm"},
		Short:   "Build a random maximal planar graph on N vertices",
		Args:    cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseN(args[0])
			if err != nil {
				exitCode = -1
				return err
			}
			g, runID, err := builder.BuildGraph(n, []builder.BuilderOption{builder.WithSeed(time.Now().UnixNano())}, builder.RandomMaximalPlanar())
			if err != nil {
				exitCode = -1
				return fmt.Errorf("planarity random-maximal: build run %s: %w", runID, err)
			}
			if err := writeResult(core.Embedded, g, args[1]); err != nil {
				exitCode = -1
				return err
			}
			logf("planarity random-maximal: run %s: wrote %s\n", runID, args[1])
			exitCode = 0
			return nil
		},
	}
	return cmd
}

func newRandomMaximalPlusEdgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "random-maximal-plus-edge <N> <outfile> [outfile2]",
		Aliases: []string{"rn"},
		Short:   "Build a random maximal planar graph plus one extra edge (never planar)",
		Args:    cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseN(args[0])
			if err != nil {
				exitCode = -1
				return err
			}
			g, runID, err := builder.BuildGraph(n, []builder.BuilderOption{builder.WithSeed(time.Now().UnixNano())}, builder.RandomMaximalPlanarPlusEdge())
			if err != nil {
				exitCode = -1
				return fmt.Errorf("planarity random-maximal-plus-edge: build run %s: %w", runID, err)
			}
			if err := writeResult(core.Embedded, g, args[1]); err != nil {
				exitCode = -1
				return err
			}
			logf("planarity random-maximal-plus-edge: run %s: wrote %s\n", runID, args[1])
			exitCode = 0
			return nil
		},
	}
	return cmd
}

func parseN(s string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, fmt.Errorf("planarity: invalid N %q: %w", s, err)
	}
	return n, nil
}

func parseKN(ks, ns string) (int, int, error) {
	k, err := parseN(ks)
	if err != nil {
		return 0, 0, err
	}
	n, err := parseN(ns)
	if err != nil {
		return 0, 0, err
	}
	return k, n, nil
}
