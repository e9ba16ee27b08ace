package geometry

import (
	"math"

	"github.com/alexiusacademia/steelform/internal/profile"
)

// CircleSegments is the number of edges used to approximate round outlines.
const CircleSegments = 96

func rect(x0, y0, x1, y1 float64) Ring {
	return Ring{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func circle(cx, cy, r float64) Ring {
	ring := make(Ring, CircleSegments)
	for i := range ring {
		a := 2 * math.Pi * float64(i) / CircleSegments
		ring[i] = Point{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return ring
}

func mirrorX(r Ring, axis float64) Ring {
	out := make(Ring, len(r))
	// Reverse so the mirrored ring keeps counter-clockwise orientation.
	for i, v := range r {
		out[len(r)-1-i] = Point{2*axis - v.X, v.Y}
	}
	return out
}

// OutlineOf builds the cross-section of p in mm with the origin at the
// bottom-left of the bounding box, in the position the area formulas assume
// (angle on its short leg, channel opening right, tee flange up).
func OutlineOf(p profile.Profile) Outline {
	d := p.Dimensions()
	switch p.Shape() {
	case profile.Angle:
		a, b, t := d[0], d[1], d[2]
		return single(Ring{{0, 0}, {b, 0}, {b, t}, {t, t}, {t, a}, {0, a}})

	case profile.Channel:
		h, b, tw, tf := d[0], d[1], d[2], d[3]
		ch := Ring{{0, 0}, {b, 0}, {b, tf}, {tw, tf}, {tw, h - tf}, {b, h - tf}, {b, h}, {0, h}}
		switch p.Variant() {
		case profile.VariantBackToBack:
			// Webs touch along x = b.
			right := shift(ch, b)
			return Outline{Parts: []Polygon{{Outer: mirrorX(right, b)}, {Outer: right}}}
		case profile.VariantFaceToFace:
			// Flange toes touch along x = b.
			return Outline{Parts: []Polygon{{Outer: ch}, {Outer: mirrorX(ch, b)}}}
		}
		return single(ch)

	case profile.IBeam, profile.HBeam:
		h, b, tw, tf := d[0], d[1], d[2], d[3]
		wl, wr := (b-tw)/2, (b+tw)/2
		return single(Ring{
			{0, 0}, {b, 0}, {b, tf}, {wr, tf}, {wr, h - tf}, {b, h - tf},
			{b, h}, {0, h}, {0, h - tf}, {wl, h - tf}, {wl, tf}, {0, tf},
		})

	case profile.TSection:
		h, tw, b, tf := d[0], d[1], d[2], d[3]
		wl, wr := (b-tw)/2, (b+tw)/2
		return single(Ring{{wl, 0}, {wr, 0}, {wr, h - tf}, {b, h - tf}, {b, h}, {0, h}, {0, h - tf}, {wl, h - tf}})

	case profile.LippedChannel:
		h, b, c, t := d[0], d[1], d[2], d[3]
		return single(Ring{
			{0, 0}, {b, 0}, {b, c}, {b - t, c}, {b - t, t}, {t, t},
			{t, h - t}, {b - t, h - t}, {b - t, h - c}, {b, h - c}, {b, h}, {0, h},
		})

	case profile.CircularTube:
		r := d[0] / 2
		return Outline{Parts: []Polygon{{Outer: circle(r, r, r), Holes: []Ring{circle(r, r, r-d[1])}}}}

	case profile.RoundBar:
		r := d[0] / 2
		return single(circle(r, r, r))

	case profile.RectangularTube:
		h, b, t := d[0], d[1], d[2]
		return Outline{Parts: []Polygon{{Outer: rect(0, 0, b, h), Holes: []Ring{rect(t, t, b-t, h-t)}}}}

	case profile.SquareBar:
		return single(rect(0, 0, d[0], d[0]))

	case profile.Plate:
		return single(rect(0, 0, d[1], d[0]))

	case profile.FlatBar:
		return single(rect(0, 0, d[0], d[1]))

	case profile.BulbFlat:
		// Sketch only: a web with a sloped bulb on one side of the top edge.
		h, t := d[0], d[1]
		shoulder := math.Max(h-3*t, h/2)
		return single(Ring{{0, 0}, {t, 0}, {t, shoulder}, {2.5 * t, h - t}, {2.5 * t, h}, {0, h}})
	}
	return Outline{}
}

func single(r Ring) Outline {
	return Outline{Parts: []Polygon{{Outer: r}}}
}

func shift(r Ring, dx float64) Ring {
	out := make(Ring, len(r))
	for i, v := range r {
		out[i] = Point{v.X + dx, v.Y}
	}
	return out
}
