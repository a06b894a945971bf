package game2048

import (
	"math/rand"
	"testing"
)

func rowBoard(row [Size]int) *Board {
	return NewBoardFromGrid(Grid{row}, rand.New(rand.NewSource(1)))
}

// randomBoard fills roughly half the cells with small powers of two.
func randomBoard(rng *rand.Rand) *Board {
	var g Grid
	for r := range Size {
		for c := range Size {
			if rng.Intn(2) == 0 {
				g[r][c] = 1 << (1 + rng.Intn(4))
			}
		}
	}
	return NewBoardFromGrid(g, rng)
}

func isPowerOfTwo(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

func TestCompress(t *testing.T) {
	tests := []struct {
		name     string
		input    [Size]int
		expected [Size]int
		changed  bool
	}{
		{"empty row", [Size]int{0, 0, 0, 0}, [Size]int{0, 0, 0, 0}, false},
		{"already left", [Size]int{2, 4, 0, 0}, [Size]int{2, 4, 0, 0}, false},
		{"full row", [Size]int{2, 4, 8, 16}, [Size]int{2, 4, 8, 16}, false},
		{"gap in middle", [Size]int{2, 0, 4, 0}, [Size]int{2, 4, 0, 0}, true},
		{"right aligned", [Size]int{0, 0, 2, 2}, [Size]int{2, 2, 0, 0}, true},
		{"single tile", [Size]int{0, 0, 0, 8}, [Size]int{8, 0, 0, 0}, true},
		{"keeps order", [Size]int{0, 4, 0, 2}, [Size]int{4, 2, 0, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := rowBoard(tt.input)
			changed := b.Compress()

			if got := b.Cells()[0]; got != tt.expected {
				t.Errorf("Compress(%v) = %v, want %v", tt.input, got, tt.expected)
			}
			if changed != tt.changed {
				t.Errorf("Compress(%v) changed = %v, want %v", tt.input, changed, tt.changed)
			}
		})
	}
}

func TestCompressIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		b := randomBoard(rng)
		b.Compress()
		once := b.Cells()

		if b.Compress() {
			t.Fatalf("second Compress reported a change for %v", once)
		}
		if b.Cells() != once {
			t.Fatalf("second Compress altered the board: %v -> %v", once, b.Cells())
		}
	}
}

func TestTransposeTwice(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		b := randomBoard(rng)
		orig := b.Cells()

		b.Transpose()
		b.Transpose()

		if b.Cells() != orig {
			t.Fatalf("Transpose twice = %v, want %v", b.Cells(), orig)
		}
	}
}

func TestTranspose(t *testing.T) {
	b := NewBoardFromGrid(Grid{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}, nil)
	b.Transpose()

	expected := Grid{
		{1, 5, 9, 13},
		{2, 6, 10, 14},
		{3, 7, 11, 15},
		{4, 8, 12, 16},
	}
	if b.Cells() != expected {
		t.Errorf("Transpose = %v, want %v", b.Cells(), expected)
	}
}

func TestReverse(t *testing.T) {
	b := rowBoard([Size]int{2, 4, 8, 0})
	b.Reverse()

	if got := b.Cells()[0]; got != [Size]int{0, 8, 4, 2} {
		t.Errorf("Reverse = %v, want [0 8 4 2]", got)
	}

	b.Reverse()
	if got := b.Cells()[0]; got != [Size]int{2, 4, 8, 0} {
		t.Errorf("Reverse twice = %v, want original row", got)
	}
}

func TestReverseTwice(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 100; i++ {
		b := randomBoard(rng)
		orig := b.Cells()

		b.Reverse()
		b.Reverse()

		if b.Cells() != orig {
			t.Fatalf("Reverse twice = %v, want %v", b.Cells(), orig)
		}
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    [Size]int
		expected [Size]int
		score    int
		merged   bool
	}{
		{"simple pair", [Size]int{2, 2, 0, 0}, [Size]int{4, 0, 0, 0}, 4, true},
		{"chain of three", [Size]int{2, 2, 2, 0}, [Size]int{4, 0, 2, 0}, 4, true},
		{"two pairs", [Size]int{4, 4, 4, 4}, [Size]int{8, 0, 8, 0}, 16, true},
		{"no pairs", [Size]int{2, 4, 8, 16}, [Size]int{2, 4, 8, 16}, 0, false},
		{"empty row", [Size]int{0, 0, 0, 0}, [Size]int{0, 0, 0, 0}, 0, false},
		{"gap between equals", [Size]int{2, 0, 2, 0}, [Size]int{2, 0, 2, 0}, 0, false},
		{"doubled cell not re-merged", [Size]int{4, 2, 2, 8}, [Size]int{4, 4, 0, 8}, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := rowBoard(tt.input)
			merged := b.Merge()

			if got := b.Cells()[0]; got != tt.expected {
				t.Errorf("Merge(%v) = %v, want %v", tt.input, got, tt.expected)
			}
			if b.Score() != tt.score {
				t.Errorf("Merge(%v) score = %d, want %d", tt.input, b.Score(), tt.score)
			}
			if merged != tt.merged {
				t.Errorf("Merge(%v) merged = %v, want %v", tt.input, merged, tt.merged)
			}
		})
	}
}

func TestMergeKeepsPowersOfTwo(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for i := 0; i < 200; i++ {
		b := randomBoard(rng)
		b.Compress()
		b.Merge()

		cells := b.Cells()
		for r := range Size {
			for c := range Size {
				if v := cells[r][c]; v != 0 && !isPowerOfTwo(v) {
					t.Fatalf("Merge produced %d at (%d, %d) in %v", v, r, c, cells)
				}
			}
		}
	}
}

func TestMergeScoreEqualsMergedValues(t *testing.T) {
	b := NewBoardFromGrid(Grid{
		{8, 8, 0, 0},
		{2, 2, 4, 4},
		{0, 0, 0, 0},
		{16, 0, 0, 16},
	}, nil)
	b.Merge()

	// 16 from row 0, 4 + 8 from row 1; the 16s in row 3 are not adjacent
	if b.Score() != 28 {
		t.Errorf("score = %d, want 28", b.Score())
	}

	before := b.Score()
	b.Merge()
	if b.Score() < before {
		t.Errorf("score decreased from %d to %d", before, b.Score())
	}
}

func TestSpawnRandomTileFullBoard(t *testing.T) {
	full := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	b := NewBoardFromGrid(full, rand.New(rand.NewSource(1)))

	if _, ok := b.SpawnRandomTile(); ok {
		t.Error("SpawnRandomTile on a full board should report no spawn")
	}
	if b.Cells() != full {
		t.Error("SpawnRandomTile on a full board should not change it")
	}
}

func TestSpawnRandomTileSingleEmptyCell(t *testing.T) {
	cells := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 0, 4},
		{4, 2, 4, 2},
	}

	for seed := int64(0); seed < 20; seed++ {
		b := NewBoardFromGrid(cells, rand.New(rand.NewSource(seed)))
		p, ok := b.SpawnRandomTile()

		if !ok || p != (Position{Row: 2, Col: 2}) {
			t.Fatalf("seed %d: spawned at %+v (ok=%v), want (2, 2)", seed, p, ok)
		}
		if b.Cells()[2][2] != SpawnValue {
			t.Fatalf("seed %d: cell (2, 2) = %d, want %d", seed, b.Cells()[2][2], SpawnValue)
		}
	}
}

func TestSpawnRandomTileOnlyEmptyCells(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for i := 0; i < 100; i++ {
		b := randomBoard(rng)
		before := b.Cells()
		p, ok := b.SpawnRandomTile()
		if !ok {
			continue
		}
		if before[p.Row][p.Col] != 0 {
			t.Fatalf("spawned onto occupied cell %+v of %v", p, before)
		}
		if b.Cells()[p.Row][p.Col] != SpawnValue {
			t.Fatalf("spawned value = %d, want %d", b.Cells()[p.Row][p.Col], SpawnValue)
		}
	}
}

func TestCanMergeAdjacent(t *testing.T) {
	tests := []struct {
		name     string
		cells    Grid
		expected bool
	}{
		{
			name: "horizontal pair",
			cells: Grid{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{2, 4, 8, 16},
				{32, 64, 128, 256},
			},
			expected: true,
		},
		{
			name: "vertical pair",
			cells: Grid{
				{2, 4, 8, 16},
				{32, 4, 128, 256},
				{2, 8, 16, 32},
				{64, 128, 256, 512},
			},
			expected: true,
		},
		{
			name: "no pairs",
			cells: Grid{
				{2, 4, 8, 16},
				{16, 8, 4, 2},
				{2, 4, 8, 16},
				{16, 8, 4, 2},
			},
			expected: false,
		},
		{
			name: "adjacent empty cells are not a merge",
			cells: Grid{
				{2, 4, 8, 16},
				{16, 8, 4, 2},
				{2, 4, 8, 16},
				{16, 8, 0, 0},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoardFromGrid(tt.cells, nil)
			if got := b.CanMergeAdjacent(); got != tt.expected {
				t.Errorf("CanMergeAdjacent() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestHasEmptyCellAndValue(t *testing.T) {
	b := NewBoardFromGrid(Grid{
		{2, 4, 8, 16},
		{16, 8, 4, 2},
		{2, 4, 2048, 16},
		{16, 8, 4, 2},
	}, nil)

	if b.HasEmptyCell() {
		t.Error("full board should have no empty cell")
	}
	if !b.HasValue(2048) {
		t.Error("HasValue(2048) should be true")
	}
	if b.HasValue(1024) {
		t.Error("HasValue(1024) should be false")
	}
	if b.MaxTile() != 2048 {
		t.Errorf("MaxTile() = %d, want 2048", b.MaxTile())
	}
}

func TestEmptyCells(t *testing.T) {
	b := NewBoardFromGrid(Grid{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}, nil)

	cells := b.EmptyCells()
	if len(cells) != 8 {
		t.Errorf("EmptyCells count = %d, want 8", len(cells))
	}
	if cells[0] != (Position{Row: 0, Col: 1}) {
		t.Errorf("first empty cell = %+v, want (0, 1)", cells[0])
	}
}
