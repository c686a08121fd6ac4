// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/lvlath/planarity/core"
)

// Constructor applies one deterministic graph mutation to an already-sized
// g. Constructors validate their own size requirement against g.N() and
// return only sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph allocates an n-vertex graph, resolves bopts into a
// builderConfig, and applies cons in order, wrapping the first error with
// the constructor's index. It returns the run's UUID alongside the graph so
// callers (notably the CLI's random subcommands) can log which run produced
// a given graph, mirroring the teacher builder's single-orchestrator design.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, string, error) {
	g := core.NewGraph()
	if err := g.InitGraph(n, 0); err != nil {
		return nil, "", err
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, "", fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, "", fmt.Errorf("BuildGraph: constructor %d: %w", i, err)
		}
	}

	return g, cfg.runID, nil
}
