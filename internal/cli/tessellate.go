package cli

import (
	"context"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/hailam/chessplay/internal/pcgraph"
)

// runTessellate runs C9: enumerate every canonical tessellation of the
// four-row perfect-clear region and write the packed result to --output.
func runTessellate(ctx context.Context, args []string) error {
	fs := newFlagSet("tessellate")
	output := fs.String("output", envOrDefault("TETRISPLAY_OUTPUT", "tessellations.bin"), "path to write packed tessellations")
	if err := fs.Parse(args); err != nil {
		return err
	}

	Logger.Printf("generating tessellations")
	tessellations, err := pcgraph.GenerateTessellations(ctx)
	if err != nil {
		return err
	}
	Logger.Printf("generated %s tessellations", humanize.Comma(int64(len(tessellations))))

	data := pcgraph.PackTessellations(tessellations)
	if err := os.WriteFile(*output, data, 0644); err != nil {
		return err
	}
	Logger.Printf("wrote %s (%s) to %s", humanize.Comma(int64(len(data))), humanize.Bytes(uint64(len(data))), *output)
	return nil
}
