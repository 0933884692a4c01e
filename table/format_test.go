package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat(t *testing.T) {
	cases := []struct {
		in   float64
		prec int
		want string
	}{
		{3.14159, 3, "3.142"},
		{3.14159, 2, "3.14"},
		{-2.71828, 4, "-2.7183"},
		{2.0, 2, "2"},
		{0.05, 3, "0.05"},
		{-0.0004, 3, "-0"},
		{1.25, 1, "1.3"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Float(c.in, c.prec), "Float(%v,%v)", c.in, c.prec)
	}
}

func TestSci(t *testing.T) {
	assert.Equal(t, "1.234560e-03", Sci(0.00123456))
	assert.Equal(t, "9.999999e-01", Sci(0.9999999))
	assert.Equal(t, "1.000000e-09", Sci(1e-9))
}

func TestInt(t *testing.T) {
	assert.Equal(t, "-17", Int(-17))
	assert.Equal(t, "0", Int(0))
}
