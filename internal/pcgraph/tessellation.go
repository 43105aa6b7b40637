package pcgraph

import (
	"context"

	"github.com/hailam/chessplay/internal/board"
)

// piecesPerTess is the number of tetrominoes needed to fill the 4x10
// tessellation region: 10 pieces x 4 cells = 40 cells = 4 rows x 10 columns.
const piecesPerTess = 10

// Tess is one canonical tessellation of the tessellation region: ten
// NormPiece placements, in canonical order, whose shapes exactly partition
// the region with no overlap.
type Tess struct {
	Pieces [piecesPerTess]NormPiece
}

// GenerateTessellations runs C9: recursive canonical-order placement with a
// parity check and multiplicity caps, producing every way to tile the
// tessellation region with ten tetrominoes where each PieceType appears once
// or twice and at most three piece types appear twice. Ported from
// original_source/pc-finder/src/generate/tessellation.rs's recurse.
func GenerateTessellations(ctx context.Context) ([]Tess, error) {
	all := allNormPieces()
	var out []Tess
	var flags [board.NumPieceTypes]int
	var pieces [piecesPerTess]NormPiece
	var cancelErr error
	recurseTess(ctx, &cancelErr, Empty, pieces, 0, flags, all, &out)
	if cancelErr != nil {
		return nil, cancelErr
	}
	return out, nil
}

func recurseTess(ctx context.Context, cancelErr *error, b PcBoard, pieces [piecesPerTess]NormPiece, n int, flags [board.NumPieceTypes]int, all []NormPiece, out *[]Tess) {
	if *cancelErr != nil {
		return
	}
	if n == 0 {
		if err := ctx.Err(); err != nil {
			*cancelErr = err
			return
		}
	}
	for _, piece := range all {
		if n >= 1 && !piece.geq(pieces[n-1]) {
			continue
		}

		flags[piece.Type]++
		if flags[piece.Type] > 2 {
			flags[piece.Type]--
			continue
		}
		if countAt(flags, 2) > 3 {
			flags[piece.Type]--
			continue
		}

		if b.Intersects(piece.Shape) {
			flags[piece.Type]--
			continue
		}
		nb := b.Lock(piece.Shape)
		if !parityOK(nb) {
			flags[piece.Type]--
			continue
		}

		pieces[n] = piece
		if n+1 == piecesPerTess {
			*out = append(*out, Tess{Pieces: pieces})
		} else {
			recurseTess(ctx, cancelErr, nb, pieces, n+1, flags, all, out)
		}
		flags[piece.Type]--
	}
}

func countAt(flags [board.NumPieceTypes]int, v int) int {
	c := 0
	for _, f := range flags {
		if f == v {
			c++
		}
	}
	return c
}

// parityOK reports whether every maximal 4-connected region of b (filled or
// empty cells alike) has a cell count divisible by 4 — a necessary
// condition for the remaining empty cells to ever be filled by whole
// tetrominoes. Ported from tessellation.rs's parity_check.
func parityOK(b PcBoard) bool {
	var visited [board.Width][pcRows]bool
	type cell struct{ x, y int }
	for x := 0; x < board.Width; x++ {
		for y := 0; y < pcRows; y++ {
			if visited[x][y] {
				continue
			}
			visited[x][y] = true
			want := b.Get(x, y)
			queue := []cell{{x, y}}
			count := 1
			for len(queue) > 0 {
				c := queue[0]
				queue = queue[1:]
				for _, d := range [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}} {
					nx, ny := c.x+d[0], c.y+d[1]
					if nx < 0 || nx >= board.Width || ny < 0 || ny >= pcRows {
						continue
					}
					if visited[nx][ny] {
						continue
					}
					if b.Get(nx, ny) != want {
						continue
					}
					visited[nx][ny] = true
					count++
					queue = append(queue, cell{nx, ny})
				}
			}
			if count%4 != 0 {
				return false
			}
		}
	}
	return true
}
