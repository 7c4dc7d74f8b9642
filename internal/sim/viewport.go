package sim

import "math"

// Viewport maps track coordinates to screen pixels. The rendering
// collaborator supplies one matching its layout; the zero value maps
// one track unit to one pixel with y pointing up from the origin.
type Viewport struct {
	OriginX float64 // screen x of track x = 0
	OriginY float64 // screen y of track y = 0
	Scale   float64 // pixels per track unit; 0 means 1
}

func (v Viewport) scale() float64 {
	if v.Scale == 0 {
		return 1
	}
	return v.Scale
}

func (v Viewport) ToScreen(x, y float64) (sx, sy float64) {
	s := v.scale()
	return v.OriginX + x*s, v.OriginY - y*s
}

// WorldX inverts the horizontal part of the mapping; dragging only
// steers the track parameter, the height follows from the curve.
func (v Viewport) WorldX(screenX float64) float64 {
	return (screenX - v.OriginX) / v.scale()
}

func screenDistance(ax, ay, bx, by float64) float64 {
	return math.Hypot(ax-bx, ay-by)
}
