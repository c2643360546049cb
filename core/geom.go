package core

// directionVectors maps each Direction to its unit displacement.
// Read-only after initialization; indexed by the Direction constants.
var directionVectors = [4]Vector{
	Up:    {X: 0, Y: 1},
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: -1},
	Left:  {X: -1, Y: 0},
}

// Turn returns the heading faced after rotating d by t.
// Total: defined for every Direction/Turn pair.
// Complexity: O(1).
func (d Direction) Turn(t Turn) Direction {
	return Direction((int8(d) + int8(t) + 4) % 4)
}

// Vector returns the unit displacement of heading d.
// Complexity: O(1).
func (d Direction) Vector() Vector {
	return directionVectors[d%4]
}

// String returns the conventional name of the heading.
func (d Direction) String() string {
	switch d % 4 {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	default:
		return "Left"
	}
}

// Move returns the coordinate reached by travelling length units from c in
// heading d.
// Complexity: O(1).
func (c Coord) Move(d Direction, length Length) Coord {
	v := d.Vector()

	return Coord{
		X: c.X + v.X*int32(length),
		Y: c.Y + v.Y*int32(length),
	}
}
