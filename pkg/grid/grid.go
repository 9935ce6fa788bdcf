// Package grid maps linear cell indices onto a fixed-width 2D layout. The
// desktop front-end uses it to place tape cells on the screen.
package grid

// GetGridCoords converts a linear index into (x, y) coordinates on a grid
// with the given number of columns.
func GetGridCoords(index int, cols int) (int, int) {
	return index % cols, index / cols
}

// GetGridIndex is the inverse of GetGridCoords.
func GetGridIndex(x, y int, cols int) int {
	return y*cols + x
}
