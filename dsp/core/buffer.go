package core

// AllZero reports whether every value in buf is exactly 0.
// An empty buffer counts as all zero.
func AllZero(buf []float64) bool {
	for _, v := range buf {
		if v != 0 {
			return false
		}
	}
	return true
}
