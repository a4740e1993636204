package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// TileType represents the type of a tile
type TileType int

const (
	TileFloor TileType = iota
	TileWall
	TileWater
)

// String returns the tile type name used in stage files
func (t TileType) String() string {
	switch t {
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileWater:
		return "water"
	default:
		return "unknown"
	}
}

// Tile represents a single tile in the map
type Tile struct {
	Type  TileType
	Solid bool
}

// Stage is the tile map the actors walk on
type Stage struct {
	Width    int // in tiles
	Height   int // in tiles
	TileSize int
	Tiles    [][]Tile
	SpawnX   int // pixels
	SpawnY   int // pixels
}

// GetTile returns the tile at the given tile coordinates.
// Anything outside the map reads as a solid wall.
func (s *Stage) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{Type: TileWall, Solid: true}
	}
	return s.Tiles[ty][tx]
}

// GetTileAtPixel returns the tile at the given pixel coordinates
func (s *Stage) GetTileAtPixel(px, py int) Tile {
	return s.GetTile(floorDiv(px, s.TileSize), floorDiv(py, s.TileSize))
}

// IsSolidAt checks if the tile at pixel coordinates is solid
func (s *Stage) IsSolidAt(px, py int) bool {
	return s.GetTileAtPixel(px, py).Solid
}

// PixelWidth returns the map width in pixels
func (s *Stage) PixelWidth() int {
	return s.Width * s.TileSize
}

// PixelHeight returns the map height in pixels
func (s *Stage) PixelHeight() int {
	return s.Height * s.TileSize
}

// floorDiv divides rounding toward negative infinity so that pixel -1 maps to tile -1.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
