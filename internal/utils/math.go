// internal/utils/math.go
package utils

// Clamp limits v to [lo, hi].
func Clamp[T ~float32 | ~float64](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach moves from toward to by at most step, without overshooting.
func Approach(from, to, step float32) float32 {
	if from < to {
		from += step
		if from > to {
			return to
		}
		return from
	}
	from -= step
	if from < to {
		return to
	}
	return from
}
