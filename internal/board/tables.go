package board

// Piece tables: process-wide immutable constants computed once at package
// init, the same way chess attack tables (pawn/knight/king move
// masks) are built by an init() loop over every square. Here the "squares"
// are (PieceType, rotation) pairs, and the payload is the SRS shape data
// rather than attack rays.

const (
	shapeSize    = 4 // local frame is always 4x4
	numRotations = 4

	// SpawnColumn is the local frame's leftmost board column at spawn,
	// standard SRS: the 4-wide frame is centered over columns 3-6.
	SpawnColumn = 3
)

// HeightEntry is (low, height) for one local column of a shape: low is the
// local row of the bottom-most filled cell, height is the run length. Both
// are -1 if the column is empty in that rotation.
type HeightEntry struct {
	Low, Height int
}

// Bounds gives the inclusive range of legal absolute piece origins.
type Bounds struct {
	XMin, XMax, YMin, YMax int
}

// Kick is one (dx, dy) offset tried during an SRS rotation.
type Kick struct {
	DX, DY int
}

type rotationData struct {
	shape     [shapeSize][shapeSize]bool // [localCol][localRow]
	heightMap [shapeSize]HeightEntry
	bounds    Bounds
	bitShapes [][4]uint16 // index i == x - bounds.XMin
}

type pieceData struct {
	rotations      [numRotations]rotationData
	kicks          [numRotations][numRotations][]Kick
	spawnX, spawnY int
}

var pieceTables [NumPieceTypes]pieceData

func init() {
	sizes := [NumPieceTypes]int{2, 4, 3, 3, 3, 3, 3}
	spawnY := [NumPieceTypes]int{20, 19, 20, 20, 20, 20, 20}
	base := baseShapes()
	kicks := buildKickTables()

	for p := PieceType(0); p < NumPieceTypes; p++ {
		pd := &pieceTables[p]
		pd.spawnX = SpawnColumn
		pd.spawnY = spawnY[p]
		pd.kicks = kicks[p]

		shape := base[p]
		for r := 0; r < numRotations; r++ {
			pd.rotations[r].shape = shape
			if p != O {
				shape = rotateShape(shape, sizes[p])
			}
		}
		for r := 0; r < numRotations; r++ {
			computeRotationTables(&pd.rotations[r])
		}
	}
}

// rotateShape rotates a shapeSize x shapeSize local frame 90 degrees,
// operating only within the leading size x size sub-block (the rest of the
// frame is padding and stays false). Ported verbatim from the Rust
// PieceInfo::new()'s local rotate_shape helper.
func rotateShape(arr [shapeSize][shapeSize]bool, size int) [shapeSize][shapeSize]bool {
	var out [shapeSize][shapeSize]bool
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			out[j][size-i-1] = arr[i][j]
		}
	}
	return out
}

func baseShapes() [NumPieceTypes][shapeSize][shapeSize]bool {
	return [NumPieceTypes][shapeSize][shapeSize]bool{
		O: {
			{false, false, false, false},
			{false, true, true, false},
			{false, true, true, false},
			{false, false, false, false},
		},
		I: {
			{false, false, true, false},
			{false, false, true, false},
			{false, false, true, false},
			{false, false, true, false},
		},
		T: {
			{false, true, false, false},
			{false, true, true, false},
			{false, true, false, false},
			{false, false, false, false},
		},
		L: {
			{false, true, false, false},
			{false, true, false, false},
			{false, true, true, false},
			{false, false, false, false},
		},
		J: {
			{false, true, true, false},
			{false, true, false, false},
			{false, true, false, false},
			{false, false, false, false},
		},
		S: {
			{false, true, false, false},
			{false, true, true, false},
			{false, false, true, false},
			{false, false, false, false},
		},
		Z: {
			{false, false, true, false},
			{false, true, true, false},
			{false, true, false, false},
			{false, false, false, false},
		},
	}
}

// computeRotationTables fills in heightMap, bounds and bitShapes for a
// single rotation from its shape, following the same derivation as the Rust
// PieceInfo::new(): height map first, then location bounds from the
// height map's leading/trailing empty columns and the shape's leading/
// trailing empty rows, then a bit_shape entry for every legal x.
func computeRotationTables(rd *rotationData) {
	shape := rd.shape

	var hm [shapeSize]HeightEntry
	for i := 0; i < shapeSize; i++ {
		hm[i] = HeightEntry{-1, -1}
		for j := 0; j < shapeSize; j++ {
			if !shape[i][j] {
				continue
			}
			if hm[i].Low == -1 {
				hm[i] = HeightEntry{j, 1}
			} else {
				hm[i].Height++
			}
		}
	}
	rd.heightMap = hm

	left := 0
	for i := 0; i < shapeSize; i++ {
		if hm[i].Low == -1 {
			left--
		} else {
			break
		}
	}
	right := Width - shapeSize
	for i := shapeSize - 1; i >= 0; i-- {
		if hm[i].Low == -1 {
			right++
		} else {
			break
		}
	}

	rowFilled := func(j int) bool {
		for i := 0; i < shapeSize; i++ {
			if shape[i][j] {
				return true
			}
		}
		return false
	}
	bottom := 0
	for j := 0; j < shapeSize; j++ {
		if !rowFilled(j) {
			bottom--
		} else {
			break
		}
	}
	top := Height - shapeSize
	for j := shapeSize - 1; j >= 0; j-- {
		if !rowFilled(j) {
			top++
		} else {
			break
		}
	}
	rd.bounds = Bounds{XMin: left, XMax: right, YMin: bottom, YMax: top}

	n := right - left + 1
	rd.bitShapes = make([][4]uint16, n)
	for idx := 0; idx < n; idx++ {
		x := left + idx
		var rows [4]uint16
		for i := 0; i < shapeSize; i++ {
			col := x + i
			if col < 0 || col >= Width {
				continue
			}
			for j := 0; j < shapeSize; j++ {
				if shape[i][j] {
					rows[j] |= 1 << uint(col)
				}
			}
		}
		rd.bitShapes[idx] = rows
	}
}

// Shape returns the local 4x4 footprint of pt at rotation r.
func Shape(pt PieceType, r int) [4][4]bool {
	return pieceTables[pt].rotations[r&3].shape
}

// PieceHeightMap returns the per-local-column (low, height) pairs of pt at
// rotation r.
func PieceHeightMap(pt PieceType, r int) [4]HeightEntry {
	return pieceTables[pt].rotations[r&3].heightMap
}

// LocationBounds returns the legal absolute-origin bounds of pt at
// rotation r.
func LocationBounds(pt PieceType, r int) Bounds {
	return pieceTables[pt].rotations[r&3].bounds
}

// BitShape returns the 4-row bitmask of pt at rotation r with its local
// origin at absolute board column x. x must lie within LocationBounds(pt,
// r)'s [XMin, XMax]; out-of-range x returns an all-zero shape.
func BitShape(pt PieceType, r int, x int) [4]uint16 {
	rd := &pieceTables[pt].rotations[r&3]
	idx := x - rd.bounds.XMin
	if idx < 0 || idx >= len(rd.bitShapes) {
		return [4]uint16{}
	}
	return rd.bitShapes[idx]
}

// KickTable returns the ordered SRS kick offsets tried when rotating pt from
// rFrom to rTo.
func KickTable(pt PieceType, rFrom, rTo int) []Kick {
	return pieceTables[pt].kicks[rFrom&3][rTo&3]
}

// Spawn returns the spawn origin (x, y) for pt.
func Spawn(pt PieceType) (x, y int) {
	pd := &pieceTables[pt]
	return pd.spawnX, pd.spawnY
}

func buildKickTables() [NumPieceTypes][numRotations][numRotations][]Kick {
	none := func() []Kick { return nil }
	k := func(pairs ...[2]int) []Kick {
		out := make([]Kick, len(pairs))
		for i, p := range pairs {
			out[i] = Kick{p[0], p[1]}
		}
		return out
	}

	oTable := [numRotations][numRotations][]Kick{
		{none(), k([2]int{0, 0}), k([2]int{0, 0}), k([2]int{0, 0})},
		{k([2]int{0, 0}), none(), k([2]int{0, 0}), k([2]int{0, 0})},
		{k([2]int{0, 0}), k([2]int{0, 0}), none(), k([2]int{0, 0})},
		{k([2]int{0, 0}), k([2]int{0, 0}), k([2]int{0, 0}), none()},
	}

	iTable := [numRotations][numRotations][]Kick{
		{
			none(),
			k([2]int{0, 0}, [2]int{-2, 0}, [2]int{1, 0}, [2]int{-2, -1}, [2]int{1, 2}),
			k([2]int{0, 0}),
			k([2]int{0, 0}, [2]int{-1, 0}, [2]int{2, 0}, [2]int{-1, 2}, [2]int{2, -1}),
		},
		{
			k([2]int{0, 0}, [2]int{2, 0}, [2]int{-1, 0}, [2]int{2, 1}, [2]int{-1, -2}),
			none(),
			k([2]int{0, 0}, [2]int{-1, 0}, [2]int{2, 0}, [2]int{-1, 2}, [2]int{2, -1}),
			k([2]int{0, 0}),
		},
		{
			k([2]int{0, 0}),
			k([2]int{0, 0}, [2]int{1, 0}, [2]int{-2, 0}, [2]int{1, -2}, [2]int{-2, 1}),
			none(),
			k([2]int{0, 0}, [2]int{2, 0}, [2]int{-1, 0}, [2]int{2, 1}, [2]int{-1, -2}),
		},
		{
			k([2]int{0, 0}, [2]int{1, 0}, [2]int{-2, 0}, [2]int{1, -2}, [2]int{-2, 1}),
			k([2]int{0, 0}),
			k([2]int{0, 0}, [2]int{-2, 0}, [2]int{1, 0}, [2]int{-2, -1}, [2]int{1, 2}),
			none(),
		},
	}

	tljszTable := [numRotations][numRotations][]Kick{
		{
			none(),
			k([2]int{0, 0}, [2]int{-1, 0}, [2]int{-1, 1}, [2]int{0, -2}, [2]int{-1, -2}),
			k([2]int{0, 0}),
			k([2]int{0, 0}, [2]int{1, 0}, [2]int{1, 1}, [2]int{0, -2}, [2]int{1, -2}),
		},
		{
			k([2]int{0, 0}, [2]int{1, 0}, [2]int{1, -1}, [2]int{0, 2}, [2]int{1, 2}),
			none(),
			k([2]int{0, 0}, [2]int{1, 0}, [2]int{1, -1}, [2]int{0, 2}, [2]int{1, 2}),
			k([2]int{0, 0}),
		},
		{
			k([2]int{0, 0}),
			k([2]int{0, 0}, [2]int{-1, 0}, [2]int{-1, 1}, [2]int{0, -2}, [2]int{-1, -2}),
			none(),
			k([2]int{0, 0}, [2]int{1, 0}, [2]int{1, 1}, [2]int{0, -2}, [2]int{1, -2}),
		},
		{
			k([2]int{0, 0}, [2]int{-1, 0}, [2]int{-1, -1}, [2]int{0, 2}, [2]int{-1, 2}),
			k([2]int{0, 0}),
			k([2]int{0, 0}, [2]int{-1, 0}, [2]int{-1, -1}, [2]int{0, 2}, [2]int{-1, 2}),
			none(),
		},
	}

	var out [NumPieceTypes][numRotations][numRotations][]Kick
	out[O] = oTable
	out[I] = iTable
	out[T] = tljszTable
	out[L] = tljszTable
	out[J] = tljszTable
	out[S] = tljszTable
	out[Z] = tljszTable
	return out
}
