package math

import (
	"math"
)

// Ratio 返回total/n，n不大于0时返回0
func Ratio(total uint64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(total) / float64(n)
}

// Round 按照指定精度四舍五入，precision为负数时对整数位取整
func Round(val float64, precision int) float64 {
	if precision == 0 {
		return math.Round(val)
	}
	p := math.Pow10(precision)
	return math.Floor(val*p+0.5) / p
}
