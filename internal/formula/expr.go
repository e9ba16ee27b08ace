package formula

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/alexiusacademia/steelform/internal/gb"
)

// Binding strength of each node kind, used to decide where parentheses go.
const (
	precSum = iota + 1
	precProduct
	precPower
	precAtom
)

// Expr is a formula expression that renders to spreadsheet text and
// evaluates to a number.
type Expr interface {
	render(b *strings.Builder, pi PiStyle)
	eval() float64
	prec() int
}

type number float64

func (n number) render(b *strings.Builder, _ PiStyle) { b.WriteString(gb.FormatNumber(float64(n))) }
func (n number) eval() float64                        { return float64(n) }
func (n number) prec() int                            { return precAtom }

// piConst renders as PI() or as the numeric literal. It always evaluates to
// math.Pi: the style is presentation only.
type piConst struct{}

func (piConst) render(b *strings.Builder, pi PiStyle) {
	if pi == PiNum {
		b.WriteString(gb.PiLiteral)
		return
	}
	b.WriteString("PI()")
}
func (piConst) eval() float64 { return math.Pi }
func (piConst) prec() int     { return precAtom }

// term is one additive part of a sum. top marks the contribution of the
// upward facing surface.
type term struct {
	expr Expr
	neg  bool
	top  bool
}

type sum struct {
	terms []term
}

func (s sum) render(b *strings.Builder, pi PiStyle) {
	for i, t := range s.terms {
		switch {
		case t.neg:
			b.WriteByte('-')
		case i > 0:
			b.WriteByte('+')
		}
		// Nested sums keep their grouping so each term stays visible.
		writeChild(b, pi, t.expr, t.expr.prec() <= precSum)
	}
}

func (s sum) eval() float64 {
	var v float64
	for _, t := range s.terms {
		if t.neg {
			v -= t.expr.eval()
		} else {
			v += t.expr.eval()
		}
	}
	return v
}

func (s sum) prec() int {
	if len(s.terms) == 1 && !s.terms[0].neg {
		return s.terms[0].expr.prec()
	}
	return precSum
}

type product struct {
	factors []Expr
}

func (p product) render(b *strings.Builder, pi PiStyle) {
	for i, f := range p.factors {
		if i > 0 {
			b.WriteByte('*')
		}
		writeChild(b, pi, f, f.prec() < precProduct)
	}
}

func (p product) eval() float64 {
	v := 1.0
	for _, f := range p.factors {
		v *= f.eval()
	}
	return v
}

func (p product) prec() int { return precProduct }

type quotient struct {
	num, den Expr
}

func (q quotient) render(b *strings.Builder, pi PiStyle) {
	writeChild(b, pi, q.num, q.num.prec() < precProduct)
	b.WriteByte('/')
	writeChild(b, pi, q.den, q.den.prec() <= precProduct)
}

func (q quotient) eval() float64 { return q.num.eval() / q.den.eval() }
func (q quotient) prec() int     { return precProduct }

type power struct {
	base Expr
	exp  int
}

func (p power) render(b *strings.Builder, pi PiStyle) {
	writeChild(b, pi, p.base, p.base.prec() < precAtom)
	b.WriteByte('^')
	b.WriteString(strconv.Itoa(p.exp))
}

func (p power) eval() float64 { return math.Pow(p.base.eval(), float64(p.exp)) }
func (p power) prec() int     { return precPower }

func writeChild(b *strings.Builder, pi PiStyle, e Expr, parens bool) {
	if parens {
		b.WriteByte('(')
	}
	e.render(b, pi)
	if parens {
		b.WriteByte(')')
	}
}

// Builders.

func n(v float64) Expr { return number(v) }

func add(es ...Expr) sum {
	s := sum{terms: make([]term, len(es))}
	for i, e := range es {
		s.terms[i] = term{expr: e}
	}
	return s
}

// sub extends a sum in place of nesting it, so (a+b)-c renders as a+b-c.
func sub(a Expr, bs ...Expr) sum {
	var s sum
	if as, ok := a.(sum); ok {
		s.terms = slices.Clone(as.terms)
	} else {
		s = add(a)
	}
	for _, e := range bs {
		s.terms = append(s.terms, term{expr: e, neg: true})
	}
	return s
}

func mul(es ...Expr) Expr {
	if len(es) == 1 {
		return es[0]
	}
	return product{factors: es}
}

func div(a, b Expr) Expr { return quotient{num: a, den: b} }

func sq(e Expr) Expr { return power{base: e, exp: 2} }

// scale multiplies e by k when k is not 1.
func scale(k int, e Expr) Expr {
	if k == 1 {
		return e
	}
	return mul(n(float64(k)), e)
}

// Formula is a synthesized expression ready to be written into a cell.
type Formula struct {
	expr Expr
}

// Text renders the formula with a leading "=".
func (f Formula) Text(pi PiStyle) string {
	var b strings.Builder
	b.WriteByte('=')
	f.expr.render(&b, pi)
	return b.String()
}

// Value evaluates the formula with π = math.Pi.
func (f Formula) Value() float64 { return f.expr.eval() }
