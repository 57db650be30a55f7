package renderer

import (
	"image"
	"math/rand"
)

// Tile represents a rectangular, non-overlapping region of the image
// assigned as one unit of work to a worker
type Tile struct {
	ID      int             // Unique tile identifier
	Bounds  image.Rectangle // Pixel bounds, clipped to the image
	Samples int             // Samples per pixel for this tile
	Random  *rand.Rand      // Tile-specific generator for deterministic results
}

// NewTile creates a tile whose random stream is derived from its ID,
// so output is identical regardless of which worker renders it
func NewTile(id int, bounds image.Rectangle, samples int, seed int64) *Tile {
	return &Tile{
		ID:      id,
		Bounds:  bounds,
		Samples: samples,
		Random:  rand.New(rand.NewSource(seed + int64(id))),
	}
}

// NewTileGrid partitions a width×height image into tiles of at most
// tileSize×tileSize pixels. Edge tiles are clipped so the union covers
// every pixel exactly once.
func NewTileGrid(width, height, tileSize, samples int, seed int64) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), samples, seed))
			tileID++
		}
	}

	return tiles
}
