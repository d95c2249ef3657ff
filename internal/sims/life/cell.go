package life

// Cell is the state of one grid position. Its row and column are the
// position in the grid's backing store and are never stored on the cell.
type Cell struct {
	Alive bool
	// Age counts consecutive generations alive and is 0 whenever the cell
	// is dead.
	Age int
	// Type is a display category drawn at birth. It is 0 when typing is
	// disabled and never changes while the cell survives.
	Type int
}

// Point addresses a cell by row and column.
type Point struct {
	Row, Col int
}

// moore lists the eight neighbour offsets as (dRow, dCol) pairs.
var moore = [8]Point{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
