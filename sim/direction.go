package sim

import "github.com/jakecoffman/cp"

// Direction is one of the four cardinal door directions.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left

	DirCount = 4
)

var dirDeltas = [DirCount]struct{ dx, dy int }{
	{0, -1},
	{1, 0},
	{0, 1},
	{-1, 0},
}

var dirVecs = [DirCount]cp.Vector{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

var dirNames = [DirCount]string{"up", "right", "down", "left"}

// Opposite returns the facing direction on the neighboring room.
func (d Direction) Opposite() Direction {
	return (d + 2) % DirCount
}

// Delta returns the grid offset of the neighbor in this direction.
func (d Direction) Delta() (int, int) {
	return dirDeltas[d].dx, dirDeltas[d].dy
}

// Vec returns the unit vector pointing in this direction.
func (d Direction) Vec() cp.Vector {
	return dirVecs[d]
}

func (d Direction) String() string {
	if d < 0 || d >= DirCount {
		return "invalid"
	}
	return dirNames[d]
}
