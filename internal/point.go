package internal

// Point collisions. The point is always the first shape.

// Exact equality. There is no tolerance, so this is almost always false.
func CollisionPointPoint(x1, y1, x2, y2 float32) bool {
	return x1 == x2 && y1 == y2
}

func CollisionPointLine(x1, y1, x2, y2, dx2, dy2 float32) bool {
	// A line without extent is a point. The tests below would accept any point
	// for it, since every vector is parallel to the zero vector.
	if dx2 == 0 && dy2 == 0 {
		return CollisionPointPoint(x1, y1, x2, y2)
	}

	dx12 := x1 - x2
	dy12 := y1 - y2

	// Most points have a normal component relative to the line, in which case
	// the cross product of the distance vector and the line vector is nonzero.
	// That is the cheapest rejection, so it goes first.
	if dx12*dy2 != dy12*dx2 {
		return false
	}

	// The point is on the infinite extension of the line. Its projection onto
	// the line has to fall between the projections of the two end points.
	projection := dx12*dx2 + dy12*dy2
	return Between(projection, 0, dx2*dx2+dy2*dy2)
}

func CollisionPointCircle(x1, y1, x2, y2, r2 float32) bool {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx+dy*dy <= r2*r2
}

// Literally the definition of an AABB. The box is closed on all sides.
func CollisionPointBox(x1, y1, x2, y2, w2, h2 float32) bool {
	if x1 < x2 {
		return false
	}
	if y1 < y2 {
		return false
	}
	if x2+w2 < x1 {
		return false
	}
	if y2+h2 < y1 {
		return false
	}
	return true
}

func CollisionPointTriangle(x1, y1, x2, y2, sxa2, sya2, sxb2, syb2 float32) bool {
	// Point relative to the base vertex
	dx12 := x1 - x2
	dy12 := y1 - y2

	// Write the point as u*a + v*b, where a and b are the triangle sides. It is
	// inside iff u >= 0, v >= 0 and u + v <= 1. Cramer's rule gives u and v as
	// fractions, which are checked without dividing.
	nominatorU := dx12*syb2 - dy12*sxb2
	denominatorU := sxa2*syb2 - sxb2*sya2
	if !FractionBetweenZeroAndOne(nominatorU, denominatorU) {
		return false
	}

	nominatorV := dx12*sya2 - dy12*sxa2
	denominatorV := -denominatorU
	if !FractionBetweenZeroAndOne(nominatorV, denominatorV) {
		return false
	}

	// The two checks above do not bound u + v when the nominators of u and -v
	// carry different signs, so the sum gets checked on its own, over the
	// denominator of u.
	nominatorUV := nominatorU - nominatorV
	return FractionBetweenZeroAndOne(nominatorUV, denominatorU)
}
