package internal

// Generalization of point/box. Touching boxes collide.
func CollisionBoxBox(x1, y1, w1, h1, x2, y2, w2, h2 float32) bool {
	if x1+w1 < x2 {
		return false
	}
	if y1+h1 < y2 {
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

// Separating axis test between a box and a triangle. Both are convex
// polygons, so the two cardinal axes plus the three side normals of the
// triangle are all the axes there are.
func CollisionBoxTriangle(x1, y1, w1, h1, x2, y2, sxa2, sya2, sxb2, syb2 float32) bool {
	// Cardinal axes, against the triangle's bounding interval
	if !Overlap([]float32{x1, x1 + w1}, []float32{x2, x2 + sxa2, x2 + sxb2}) {
		return false
	}
	if !Overlap([]float32{y1, y1 + h1}, []float32{y2, y2 + sya2, y2 + syb2}) {
		return false
	}

	// Box corners relative to the base vertex
	dxm := x1 - x2
	dym := y1 - y2
	dxp := dxm + w1
	dyp := dym + h1

	// Each side normal sees the side itself at 0 and the opposite vertex at the
	// (signed) doubled triangle area.
	crossTerm := sxa2*syb2 - sxb2*sya2

	projectOnSide := func(sx, sy, ox, oy float32) [4]float32 {
		return [4]float32{
			(dxm-ox)*sy - (dym-oy)*sx,
			(dxp-ox)*sy - (dym-oy)*sx,
			(dxm-ox)*sy - (dyp-oy)*sx,
			(dxp-ox)*sy - (dyp-oy)*sx,
		}
	}

	// Side a, opposite vertex B
	projA := projectOnSide(sxa2, sya2, 0, 0)
	if !Overlap(projA[:], []float32{0, -crossTerm}) {
		return false
	}

	// Side b, opposite vertex A
	projB := projectOnSide(sxb2, syb2, 0, 0)
	if !Overlap(projB[:], []float32{0, crossTerm}) {
		return false
	}

	// Side c runs from A to B, opposite the base vertex
	sxc2 := sxb2 - sxa2
	syc2 := syb2 - sya2
	projC := projectOnSide(sxc2, syc2, sxa2, sya2)
	if !Overlap(projC[:], []float32{0, -crossTerm}) {
		return false
	}

	return true
}
