package core

import "math/bits"

// Color identifies a foreground/background style for a screen cell.
// The platform layer maps each value to a concrete terminal style.
type Color uint8

// Predefined colors for interface elements.
const (
	ColorDefault Color = iota
	ColorGrid
	ColorHUD
	ColorDim
	ColorOverlay
	ColorEmptyTile
)

// Tile colors, one per power of two from 2 to 2048.
const (
	ColorTile2 Color = iota + 16
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
)

// TilePaletteSize is the number of distinct tile colors.
const TilePaletteSize = int(ColorTile2048-ColorTile2) + 1

// TileColor returns the color for a tile value.
// The palette is indexed by log2(value)-1; values past 2048 reuse the last entry.
func TileColor(value int) Color {
	if value <= 0 {
		return ColorEmptyTile
	}
	idx := bits.Len(uint(value)) - 2 // log2(value) - 1
	idx = Clamp(idx, 0, TilePaletteSize-1)
	return ColorTile2 + Color(idx)
}

// IsTile reports whether the color is one of the tile palette entries.
func (c Color) IsTile() bool {
	return c >= ColorTile2 && c <= ColorTile2048
}
