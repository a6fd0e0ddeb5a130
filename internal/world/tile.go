// Package world provides the tile map, its rooms and procedural generation.
package world

// TileType classifies a map tile.
type TileType uint8

const (
	// TileWater blocks movement and sight.
	TileWater TileType = iota
	// TileGround can be walked on and seen through.
	TileGround
)

// IsBlocking returns true if the tile stops movement and sight.
func (t TileType) IsBlocking() bool {
	return t != TileGround
}

// String returns a human-readable tile name.
func (t TileType) String() string {
	switch t {
	case TileWater:
		return "water"
	case TileGround:
		return "ground"
	default:
		return "unknown"
	}
}

// Point is a tile coordinate.
type Point struct {
	X, Y int
}
