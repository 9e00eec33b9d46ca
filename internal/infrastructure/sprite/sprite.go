// Package sprite rasterizes the embedded SVG artwork into images.
package sprite

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/player.svg
var PlayerSVG []byte

//go:embed assets/enemy.svg
var EnemySVG []byte

// Rasterize renders SVG data into a width x height RGBA image
func Rasterize(svg []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid sprite size %dx%d", width, height)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

// Set holds the rasterized actor sprites
type Set struct {
	Player *image.RGBA
	Enemy  *image.RGBA
}

// Load rasterizes every embedded sprite at size x size
func Load(size int) (Set, error) {
	player, err := Rasterize(PlayerSVG, size, size)
	if err != nil {
		return Set{}, fmt.Errorf("player sprite: %w", err)
	}
	enemy, err := Rasterize(EnemySVG, size, size)
	if err != nil {
		return Set{}, fmt.Errorf("enemy sprite: %w", err)
	}
	return Set{Player: player, Enemy: enemy}, nil
}
