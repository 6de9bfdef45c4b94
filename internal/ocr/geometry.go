package ocr

import "github.com/veridoc/veridoc/internal/models"

// vertex is one polygon point in provider-neutral form.
type vertex struct {
	X float64
	Y float64
}

// boxFromPolygon derives an axis-aligned box from a provider polygon: the
// first vertex is the origin, the second and third supply the horizontal and
// vertical extents. Anything under 4 vertices falls back to the zero box.
func boxFromPolygon(vs []vertex) models.BoundingBox {
	if len(vs) < 4 {
		return models.BoundingBox{}
	}
	return models.BoundingBox{
		X:      vs[0].X,
		Y:      vs[0].Y,
		Width:  vs[1].X - vs[0].X,
		Height: vs[2].Y - vs[0].Y,
	}
}
