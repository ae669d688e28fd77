package core

// Size describes the dimensions of a map grid in cells.
type Size struct {
	W int
	H int
}

// Cells returns the total cell count, or zero for degenerate sizes.
func (s Size) Cells() int {
	if s.W <= 0 || s.H <= 0 {
		return 0
	}
	return s.W * s.H
}
