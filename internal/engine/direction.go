package engine

// Direction is one of the eight move directions. North increases the row
// because device row 0 is the bottom of the matrix.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var directionNames = [...]string{"north", "north-east", "east", "south-east", "south", "south-west", "west", "north-west"}

var directionDeltas = [...][2]int{
	North:     {1, 0},
	NorthEast: {1, 1},
	East:      {0, 1},
	SouthEast: {-1, 1},
	South:     {-1, 0},
	SouthWest: {-1, -1},
	West:      {0, -1},
	NorthWest: {1, -1},
}

func (d Direction) String() string {
	if !d.Valid() {
		return "unknown"
	}
	return directionNames[d]
}

func (d Direction) Valid() bool {
	return d >= North && d <= NorthWest
}

// Delta returns the (row, col) unit step.
func (d Direction) Delta() (int, int) {
	v := directionDeltas[d]
	return v[0], v[1]
}

func (d Direction) Diagonal() bool {
	return d.Valid() && d%2 == 1
}

// Split breaks a diagonal into its vertical and horizontal components.
func (d Direction) Split() (Direction, Direction) {
	dRow, dCol := d.Delta()
	vertical, horizontal := North, East
	if dRow < 0 {
		vertical = South
	}
	if dCol < 0 {
		horizontal = West
	}
	return vertical, horizontal
}

func cardinal(dRow, dCol int) bool {
	return (dRow == 0) != (dCol == 0) && dRow >= -1 && dRow <= 1 && dCol >= -1 && dCol <= 1
}
