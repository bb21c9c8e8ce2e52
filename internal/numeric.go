package internal

// Small numeric helpers shared by all predicates. Most of the collision tests
// need to know whether a line parameter t = nominator/denominator lies in
// [0, 1]. Dividing would lose precision and blow up for axis-aligned segments,
// where the denominator is zero, so everything here works on signs and
// magnitudes instead.

func Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// Square x, but keep its sign. This allows comparing a signed quantity against
// a squared bound without taking any square roots.
func SignSquare(x float32) float32 {
	if x < 0 {
		return -x * x
	}
	return x * x
}

// Is nominator/denominator negative? A zero nominator is never negative, no
// matter what the sign of the denominator is.
func FractionLessThanZero(nominator, denominator float32) bool {
	if nominator == 0 {
		return false
	}
	return (nominator < 0) != (denominator < 0)
}

// Is 0 <= nominator/denominator <= 1?
func FractionBetweenZeroAndOne(nominator, denominator float32) bool {
	if FractionLessThanZero(nominator, denominator) {
		return false
	}
	if Abs(nominator) > Abs(denominator) {
		return false
	}
	return true
}

// Check whether value lies in the closed interval spanned by the two borders,
// in either order.
func Between(value, border1, border2 float32) bool {
	low, high := minMax(border1, border2)
	if value < low {
		return false
	}
	if value > high {
		return false
	}
	return true
}

// Check whether the interval spanned by the first set of values intersects the
// interval spanned by the second. This is the projection test of the
// separating axis theorem, where each shape may contribute any number of
// projected vertices. An empty set spans nothing, so it never overlaps.
func Overlap(first, second []float32) bool {
	if len(first) == 0 || len(second) == 0 {
		return false
	}
	firstMin, firstMax := minMaxOf(first)
	secondMin, secondMax := minMaxOf(second)

	if secondMax < firstMin {
		return false
	}
	if firstMax < secondMin {
		return false
	}
	return true
}

func minMax(a, b float32) (float32, float32) {
	if b < a {
		return b, a
	}
	return a, b
}

func minMaxOf(values []float32) (low, high float32) {
	low, high = values[0], values[0]
	for _, v := range values[1:] {
		if v < low {
			low = v
		}
		if v > high {
			high = v
		}
	}
	return low, high
}
