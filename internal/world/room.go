package world

// Room represents a rectangular room in the map. The carved interior spans
// X1+1..X2 and Y1+1..Y2.
type Room struct {
	X1, Y1 int
	X2, Y2 int
}

// NewRoom creates a room with top-left corner (x, y) and the given size.
func NewRoom(x, y, width, height int) Room {
	return Room{X1: x, Y1: y, X2: x + width, Y2: y + height}
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Contains returns true if the given point is inside the carved interior.
func (r Room) Contains(x, y int) bool {
	return x > r.X1 && x <= r.X2 && y > r.Y1 && y <= r.Y2
}

// Intersects returns true if this room overlaps or touches another room.
// Touching rectangles count, so accepted rooms always keep a wall between them.
func (r Room) Intersects(other Room) bool {
	return r.X1 <= other.X2 &&
		r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 &&
		r.Y2 >= other.Y1
}
