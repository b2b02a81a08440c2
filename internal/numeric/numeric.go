package numeric

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps, comparing
// absolutely for small magnitudes and relatively otherwise.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// LogSpace fills a slice with n values spaced uniformly in log between
// lo and hi (both > 0, inclusive endpoints). Returns nil for n < 2 or
// non-positive bounds.
func LogSpace(lo, hi float64, n int) []float64 {
	if n < 2 || lo <= 0 || hi <= 0 {
		return nil
	}

	out := make([]float64, n)
	step := (math.Log(hi) - math.Log(lo)) / float64(n-1)

	for i := range out {
		out[i] = lo * math.Exp(float64(i)*step)
	}

	out[n-1] = hi

	return out
}
