package formula

import "github.com/alexiusacademia/steelform/internal/profile"

// HasTopSurface reports whether the shape, laid in its usual position, has a
// flat upward face whose contribution can be left out of the surface area.
func HasTopSurface(s profile.ShapeType) bool {
	switch s {
	case profile.CircularTube, profile.RoundBar, profile.BulbFlat:
		return false
	}
	return s.Valid()
}

func top(e Expr) term { return term{expr: e, top: true} }
func t(e Expr) term   { return term{expr: e} }

// surfaceTerms returns the outer perimeter in mm as additive terms. Precisely
// is the exact perimeter of the outline without root fillets; Roughly drops
// thickness corrections. The shapes are taken as laid: angle on its short
// leg, channel and beams upright, tee flange up.
func surfaceTerms(p profile.Profile, acc Accuracy) ([]term, bool) {
	d := p.Dim
	rough := acc == Roughly
	switch p.Shape() {
	case profile.Angle:
		a, b, th := n(d(0)), n(d(1)), n(d(2))
		if rough {
			return []term{t(mul(n(2), a)), t(b), top(b)}, true
		}
		return []term{t(a), t(sub(a, th)), t(b), top(sub(b, th)), t(mul(n(2), th))}, true

	case profile.Channel:
		h, b, tw, tf := n(d(0)), n(d(1)), n(d(2)), n(d(3))
		if rough {
			return []term{t(mul(n(2), h)), top(b), t(mul(n(3), b))}, true
		}
		return []term{
			t(h), t(sub(h, mul(n(2), tf))),
			top(b), t(b),
			t(mul(n(2), sub(b, tw))), t(mul(n(2), tf)),
		}, true

	case profile.IBeam, profile.HBeam:
		h, b, tw, tf := n(d(0)), n(d(1)), n(d(2)), n(d(3))
		if rough {
			return []term{t(mul(n(2), h)), top(b), t(mul(n(3), b))}, true
		}
		return []term{
			top(b), t(b),
			t(mul(n(2), sub(b, tw))), t(mul(n(4), tf)),
			t(mul(n(2), sub(h, mul(n(2), tf)))),
		}, true

	case profile.TSection:
		h, tw, b, tf := n(d(0)), n(d(1)), n(d(2)), n(d(3))
		if rough {
			return []term{top(b), t(b), t(mul(n(2), h))}, true
		}
		return []term{
			top(b), t(sub(b, tw)), t(mul(n(2), tf)),
			t(mul(n(2), sub(h, tf))), t(tw),
		}, true

	case profile.LippedChannel:
		h, b, c, th := n(d(0)), n(d(1)), n(d(2)), n(d(3))
		if rough {
			return []term{t(mul(n(2), h)), top(b), t(mul(n(3), b)), t(mul(n(4), c))}, true
		}
		return []term{
			t(h), t(sub(h, mul(n(2), th))),
			top(b), t(b), t(mul(n(2), sub(b, mul(n(2), th)))),
			t(mul(n(2), c)), t(mul(n(2), sub(c, th))), t(mul(n(2), th)),
		}, true

	case profile.CircularTube, profile.RoundBar:
		return []term{t(mul(piConst{}, n(d(0))))}, true

	case profile.RectangularTube:
		h, b := n(d(0)), n(d(1))
		return []term{top(b), t(b), t(mul(n(2), h))}, true

	case profile.SquareBar:
		a := n(d(0))
		return []term{top(a), t(mul(n(3), a))}, true

	case profile.Plate:
		th, b := n(d(0)), n(d(1))
		if rough {
			return []term{top(b), t(b)}, true
		}
		return []term{top(b), t(b), t(mul(n(2), th))}, true

	case profile.FlatBar:
		b, th := n(d(0)), n(d(1))
		if rough {
			return []term{top(b), t(b)}, true
		}
		return []term{top(b), t(b), t(mul(n(2), th))}, true

	case profile.BulbFlat:
		// The bulb has no closed form; only the rough web envelope is offered.
		if rough {
			return []term{t(mul(n(2), n(d(0)))), t(mul(n(2), n(d(1))))}, true
		}
		return nil, false
	}
	return nil, false
}
