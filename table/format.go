package table

import (
	"math"
	"strconv"
)

//Float rounds v half away from zero to prec decimal places and returns the
//shortest decimal representation (no trailing zeros)
func Float(v float64, prec int) string {
	pow := math.Pow(10, float64(prec))
	return strconv.FormatFloat(math.Round(v*pow)/pow, 'f', -1, 64)
}

//Sci renders v in scientific notation with six digits after the decimal
//point. Used for p-values that would otherwise collapse to 0 under fixed
//rounding
func Sci(v float64) string {
	return strconv.FormatFloat(v, 'e', 6, 64)
}

//Int renders v in base 10
func Int(v int) string {
	return strconv.Itoa(v)
}
