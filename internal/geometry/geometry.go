package geometry

import (
	"math"
	"sort"
)

// Point represents a 2D coordinate in mm
type Point struct {
	X float64
	Y float64
}

// Ring is a closed polygon boundary. The closing edge back to the first
// vertex is implicit.
type Ring []Point

// Polygon is a solid region with optional holes (tube bores)
type Polygon struct {
	Outer Ring
	Holes []Ring
}

// Outline is the cross-section of a profile: one polygon, or two for paired
// channels
type Outline struct {
	Parts []Polygon
}

// areaAndCentroid uses the shoelace formula. The area is signed:
// positive for counter-clockwise rings.
func (r Ring) areaAndCentroid() (area, cx, cy float64) {
	n := len(r)
	if n < 3 {
		return 0, 0, 0
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := r[i].X*r[j].Y - r[j].X*r[i].Y
		area += cross
		sumX += (r[i].X + r[j].X) * cross
		sumY += (r[i].Y + r[j].Y) * cross
	}
	area /= 2

	if area != 0 {
		cx = sumX / (6 * area)
		cy = sumY / (6 * area)
	}
	return area, cx, cy
}

// Area is the unsigned enclosed area
func (r Ring) Area() float64 {
	a, _, _ := r.areaAndCentroid()
	return math.Abs(a)
}

// Perimeter is the boundary length including the closing edge
func (r Ring) Perimeter() float64 {
	var p float64
	for i := range r {
		j := (i + 1) % len(r)
		p += math.Hypot(r[j].X-r[i].X, r[j].Y-r[i].Y)
	}
	return p
}

// Area is the solid area: outer minus holes
func (p Polygon) Area() float64 {
	a := p.Outer.Area()
	for _, h := range p.Holes {
		a -= h.Area()
	}
	return a
}

// Area is the total steel area in mm²
func (o Outline) Area() float64 {
	var a float64
	for _, p := range o.Parts {
		a += p.Area()
	}
	return a
}

// Perimeter is the length of the outer boundaries in mm. Tube bores are
// not counted: they are not part of the outer surface.
func (o Outline) Perimeter() float64 {
	var l float64
	for _, p := range o.Parts {
		l += p.Outer.Perimeter()
	}
	return l
}

// Centroid of the solid area
func (o Outline) Centroid() Point {
	var area, mx, my float64
	add := func(r Ring, sign float64) {
		a, cx, cy := r.areaAndCentroid()
		a = math.Abs(a) * sign
		area += a
		mx += a * cx
		my += a * cy
	}
	for _, p := range o.Parts {
		add(p.Outer, 1)
		for _, h := range p.Holes {
			add(h, -1)
		}
	}
	if area == 0 {
		return Point{}
	}
	return Point{X: mx / area, Y: my / area}
}

// Bounds returns the bounding box
func (o Outline) Bounds() (min, max Point) {
	first := true
	for _, p := range o.Parts {
		for _, v := range p.Outer {
			if first {
				min, max = v, v
				first = false
				continue
			}
			min.X = math.Min(min.X, v.X)
			min.Y = math.Min(min.Y, v.Y)
			max.X = math.Max(max.X, v.X)
			max.Y = math.Max(max.Y, v.Y)
		}
	}
	return min, max
}

// Contains reports whether pt lies inside the solid region (even-odd rule)
func (o Outline) Contains(pt Point) bool {
	for _, p := range o.Parts {
		inside := crossings(p.Outer, pt)%2 == 1
		for _, h := range p.Holes {
			if crossings(h, pt)%2 == 1 {
				inside = !inside
			}
		}
		if inside {
			return true
		}
	}
	return false
}

// WidthAtY is the total solid width cut by a horizontal line at y
func (o Outline) WidthAtY(y float64) float64 {
	var total float64
	for _, p := range o.Parts {
		xs := intersectionsAtY(p.Outer, y)
		for _, h := range p.Holes {
			xs = append(xs, intersectionsAtY(h, y)...)
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			total += xs[i+1] - xs[i]
		}
	}
	return total
}

// crossings counts ring edges crossed by a ray from pt towards +X
func crossings(r Ring, pt Point) int {
	var c int
	for _, x := range intersectionsAtY(r, pt.Y) {
		if x > pt.X {
			c++
		}
	}
	return c
}

// intersectionsAtY finds all X coordinates where a horizontal line at y intersects the ring
func intersectionsAtY(r Ring, y float64) []float64 {
	var xs []float64
	n := len(r)
	for i := 0; i < n; i++ {
		v1, v2 := r[i], r[(i+1)%n]
		if (v1.Y <= y && v2.Y > y) || (v2.Y <= y && v1.Y > y) {
			t := (y - v1.Y) / (v2.Y - v1.Y)
			xs = append(xs, v1.X+t*(v2.X-v1.X))
		}
	}
	return xs
}
