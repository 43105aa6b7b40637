package cli

import (
	"context"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/hailam/chessplay/internal/pcgraph"
)

// runGraphBuild runs C10: forward-explore the PC graph from the empty board
// using the tessellations read from --input, prune to the co-reachable set,
// and write the packed edge list to --output.
func runGraphBuild(ctx context.Context, args []string) error {
	fs := newFlagSet("graph-build")
	input := fs.String("input", envOrDefault("TETRISPLAY_INPUT", "tessellations.bin"), "path to packed tessellations")
	output := fs.String("output", envOrDefault("TETRISPLAY_OUTPUT", "edges.bin"), "path to write packed edges")
	if err := fs.Parse(args); err != nil {
		return err
	}

	raw, err := os.ReadFile(*input)
	if err != nil {
		return err
	}
	tessellations, err := pcgraph.UnpackTessellations(raw)
	if err != nil {
		return err
	}
	Logger.Printf("loaded %s tessellations from %s", humanize.Comma(int64(len(tessellations))), *input)

	Logger.Printf("exploring graph edges")
	edges, err := pcgraph.ExploreGraph(ctx, tessellations)
	if err != nil {
		return err
	}
	Logger.Printf("explored %s edges, pruning to co-reachable set", humanize.Comma(int64(len(edges))))

	pruned := pcgraph.PruneToCoReachable(edges)
	Logger.Printf("pruned to %s edges", humanize.Comma(int64(len(pruned))))

	data := pcgraph.PackEdges(pruned)
	if err := os.WriteFile(*output, data, 0644); err != nil {
		return err
	}
	Logger.Printf("wrote %s (%s) to %s", humanize.Comma(int64(len(data))), humanize.Bytes(uint64(len(data))), *output)
	return nil
}
