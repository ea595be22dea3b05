package model

// Position returns the board column and row of slot i.
func Position(i int) (col, row int) {
	return i % Columns, i / Columns
}

// Offsets returns the horizontal and vertical offset, in percent, of slot i's
// region inside the shared board picture: 0, 50 or 100 on each axis.
// Background slicing and the piece mask are both derived from this value.
func Offsets(i int) (x, y int) {
	col, row := Position(i)
	step := 100 / (Columns - 1)
	return col * step, row * step
}
