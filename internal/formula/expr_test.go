package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExprRendering(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"flat difference", sub(add(n(50), n(50)), n(5)), "=50+50-5"},
		{"nested sum keeps group", add(n(1), sub(n(2), n(3))), "=1+(2-3)"},
		{"negated sum", sub(n(1), add(n(2), n(3))), "=1-(2+3)"},
		{"product of sum", mul(add(n(1), n(2)), n(3)), "=(1+2)*3"},
		{"single factor", mul(n(4)), "=4"},
		{"quotient of quotient", div(n(1), div(n(2), n(3))), "=1/(2/3)"},
		{"square of sum", sq(add(n(1), n(2))), "=(1+2)^2"},
		{"scale", scale(2, div(n(1), n(4))), "=2*1/4"},
		{"scale by one", scale(1, n(7.5)), "=7.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Formula{expr: tt.expr}.Text(PiFunc))
		})
	}
}

func TestExprEvaluation(t *testing.T) {
	assert.Equal(t, 95.0, Formula{expr: sub(add(n(50), n(50)), n(5))}.Value())
	assert.Equal(t, -4.0, Formula{expr: sub(n(1), add(n(2), n(3)))}.Value())
	assert.Equal(t, 9.0, Formula{expr: sq(add(n(1), n(2)))}.Value())
	assert.Equal(t, 0.5, Formula{expr: scale(2, div(n(1), n(4)))}.Value())
}
