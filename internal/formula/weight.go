package formula

import (
	"github.com/alexiusacademia/steelform/internal/gb"
	"github.com/alexiusacademia/steelform/internal/profile"
)

// sectionArea is the exact cross-section area in mm², or nil when the shape
// has no closed form.
func sectionArea(p profile.Profile) Expr {
	d := p.Dim
	switch p.Shape() {
	case profile.Angle:
		a, b, th := n(d(0)), n(d(1)), n(d(2))
		return mul(sub(add(a, b), th), th)
	case profile.Channel:
		h, b, tw, tf := n(d(0)), n(d(1)), n(d(2)), n(d(3))
		return add(mul(h, tw), mul(n(2), sub(b, tw), tf))
	case profile.IBeam, profile.HBeam:
		h, b, tw, tf := n(d(0)), n(d(1)), n(d(2)), n(d(3))
		return add(mul(n(2), b, tf), mul(sub(h, mul(n(2), tf)), tw))
	case profile.TSection:
		h, tw, b, tf := n(d(0)), n(d(1)), n(d(2)), n(d(3))
		return add(mul(b, tf), mul(sub(h, tf), tw))
	case profile.LippedChannel:
		h, b, c, th := n(d(0)), n(d(1)), n(d(2)), n(d(3))
		return mul(sub(add(h, mul(n(2), b), mul(n(2), c)), mul(n(4), th)), th)
	case profile.CircularTube:
		dd, th := n(d(0)), n(d(1))
		return mul(piConst{}, sub(dd, th), th)
	case profile.RoundBar:
		return div(mul(piConst{}, sq(n(d(0)))), n(4))
	case profile.RectangularTube:
		h, b, th := n(d(0)), n(d(1)), n(d(2))
		return mul(sub(mul(n(2), add(h, b)), mul(n(4), th)), th)
	case profile.SquareBar:
		return sq(n(d(0)))
	case profile.Plate, profile.FlatBar:
		return mul(n(d(0)), n(d(1)))
	}
	return nil
}

// roughWeight uses the shop factors where the trade has one and a
// simplified area otherwise.
func roughWeight(p profile.Profile) Expr {
	d := p.Dim
	density := func(area Expr) Expr { return div(mul(area, n(gb.Density)), n(1000)) }
	switch p.Shape() {
	case profile.Angle:
		return density(mul(add(n(d(0)), n(d(1))), n(d(2))))
	case profile.Channel:
		h, b, tw, tf := n(d(0)), n(d(1)), n(d(2)), n(d(3))
		return density(add(mul(h, tw), mul(n(2), b, tf)))
	case profile.IBeam, profile.HBeam:
		h, b, tw, tf := n(d(0)), n(d(1)), n(d(2)), n(d(3))
		return density(add(mul(n(2), b, tf), mul(h, tw)))
	case profile.TSection:
		h, tw, b, tf := n(d(0)), n(d(1)), n(d(2)), n(d(3))
		return density(add(mul(b, tf), mul(h, tw)))
	case profile.LippedChannel:
		h, b, c, th := n(d(0)), n(d(1)), n(d(2)), n(d(3))
		return density(mul(add(h, mul(n(2), b), mul(n(2), c)), th))
	case profile.CircularTube:
		return mul(n(gb.TubeFactor), sub(n(d(0)), n(d(1))), n(d(1)))
	case profile.RoundBar:
		return mul(n(gb.RoundBarFactor), sq(n(d(0))))
	case profile.RectangularTube:
		h, b, th := n(d(0)), n(d(1)), n(d(2))
		return density(mul(n(2), add(h, b), th))
	case profile.SquareBar:
		return mul(n(gb.PlateFactor), sq(n(d(0))))
	case profile.Plate, profile.FlatBar:
		return mul(n(gb.PlateFactor), n(d(0)), n(d(1)))
	case profile.BulbFlat:
		return density(mul(n(d(0)), n(d(1))))
	}
	return nil
}
