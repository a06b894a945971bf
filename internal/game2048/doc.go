// Package game2048 implements the 2048 sliding-tile puzzle on a fixed 4x4 grid.
//
// Board holds the tiles and score and exposes four primitives: Reverse,
// Transpose, Compress and Merge. Engine expresses every direction as a
// pipeline of those primitives, so a single "compress, merge, compress" pass
// on rows serves all four moves. Game adapts an Engine to the terminal
// platform's input and render loop.
package game2048
