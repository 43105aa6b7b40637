package cli

import (
	"context"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hailam/chessplay/internal/board"
	"github.com/hailam/chessplay/internal/engine"
)

// defaultBenchWeights is a plausible, untuned C8 weight vector used only to
// exercise the search at a realistic branching factor: heavy penalties on
// height and holes, a milder bumpiness penalty, and rewards for clearing
// more lines at once (T-spins scored higher than equivalent standard
// clears). The genetic driver that actually tunes these is out of scope.
func defaultBenchWeights() engine.Weights {
	return engine.Weights{
		F1: -1.0,
		F2: -0.2,
		F3: -3.0,
		G:  [5]float64{0, 1, 2, 4, 8},
		H:  [4]float64{3, 6, 9, 12},
	}
}

// runBench drives the C7 search over a run of randomly bagged games,
// reporting nodes/sec and elapsed time — the Tetris analogue of a chess
// engine's "bench" perft-and-search-speed smoke test.
func runBench(ctx context.Context, args []string) error {
	fs := newFlagSet("bench")
	seed := fs.Int64("seed", mustParseInt64(envOrDefault("TETRISPLAY_SEED", "1")), "RNG seed for the piece bag")
	moves := fs.Int("moves", 200, "number of Evaluate calls to run")
	if err := fs.Parse(args); err != nil {
		return err
	}

	eng := engine.NewEngine(defaultBenchWeights(), 64)
	var totalNodes uint64
	eng.OnInfo = func(info engine.Info) {
		totalNodes += info.Nodes
	}

	bag := board.NewRng7Bag(*seed)
	g := board.NewGame(bag)

	start := time.Now()
	played := 0
	for i := 0; i < *moves; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if g.ToppedOut {
			break
		}
		result := eng.Evaluate(g)
		if result.Err != "" {
			break
		}
		for _, a := range result.Moves {
			g.Apply(a)
		}
		board.RefillQueue(&g.Queue, bag)
		played++
	}
	elapsed := time.Since(start)

	nps := float64(0)
	if elapsed > 0 {
		nps = float64(totalNodes) / elapsed.Seconds()
	}
	Logger.Printf("played %d moves in %s (%s nodes, %s nodes/sec)",
		played, elapsed, humanize.Comma(int64(totalNodes)), humanize.Comma(int64(nps)))
	return nil
}

func mustParseInt64(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 1
	}
	return v
}
