package cli

import (
	"context"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/hailam/chessplay/internal/pcgraph"
)

// runPcTableDump runs C11: build the compact per-(board,piece) action table
// from the pruned edge list read from --input and write the packed table to
// --output.
func runPcTableDump(ctx context.Context, args []string) error {
	fs := newFlagSet("pc-table-dump")
	input := fs.String("input", envOrDefault("TETRISPLAY_INPUT", "edges.bin"), "path to packed pruned edges")
	output := fs.String("output", envOrDefault("TETRISPLAY_OUTPUT", "pc-table.bin"), "path to write the packed action table")
	if err := fs.Parse(args); err != nil {
		return err
	}

	raw, err := os.ReadFile(*input)
	if err != nil {
		return err
	}
	edges, err := pcgraph.UnpackEdges(raw)
	if err != nil {
		return err
	}
	Logger.Printf("loaded %s edges from %s", humanize.Comma(int64(len(edges))), *input)

	Logger.Printf("constructing action table")
	table, err := pcgraph.BuildActionTable(ctx, edges)
	if err != nil {
		return err
	}

	data := table.Pack()
	if err := os.WriteFile(*output, data, 0644); err != nil {
		return err
	}
	Logger.Printf("wrote %s (%s) to %s", humanize.Comma(int64(len(data))), humanize.Bytes(uint64(len(data))), *output)
	return nil
}
