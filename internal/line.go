package internal

// Line segment collisions. A line is given by its origin (x, y) and its
// displacement (dx, dy), so the end point is (x+dx, y+dy).

func CollisionLineLine(x1, y1, dx1, dy1, x2, y2, dx2, dy2 float32) bool {
	crossTerm := dx2*dy1 - dy2*dx1

	// Parallel lines. If either start point lies on the other segment, they
	// touch. Checking the end points as well is not needed.
	//
	// Note that two collinear segments which only overlap in their interiors,
	// with neither start point inside the other segment, are not detected.
	if crossTerm == 0 {
		if CollisionPointLine(x1, y1, x2, y2, dx2, dy2) {
			return true
		}
		if CollisionPointLine(x2, y2, x1, y1, dx1, dy1) {
			return true
		}
	}

	// Separating axis test. Each line is projected onto the normal of the other.
	// If the projections of its start and end point do not change sign, it
	// stays on one side of the other line and there is no intersection.
	x21 := x2 - x1
	y21 := y2 - y1

	projection2OnN1 := y21*dx1 - x21*dy1
	if (projection2OnN1 < 0) == (projection2OnN1 < crossTerm) {
		return false
	}

	projection1OnN2 := x21*dy2 - y21*dx2
	if (projection1OnN2 < 0) == (projection1OnN2 < -crossTerm) {
		return false
	}

	return true
}

func CollisionLineCircle(x1, y1, dx1, dy1, x2, y2, r2 float32) bool {
	x21 := x2 - x1
	y21 := y2 - y1

	r2Squared := r2 * r2

	// Project the circle onto the line normal. The circle's extent along an
	// axis of length |n| is r*|n|, which needs a square root. Squaring both
	// sides of the comparison, while keeping the sign of the left side, gets
	// rid of it.
	projCircleNormal := y21*dx1 - x21*dy1
	projCircleNormalMax := r2Squared * (dx1*dx1 + dy1*dy1)

	if !Between(SignSquare(projCircleNormal), -projCircleNormalMax, projCircleNormalMax) {
		return false
	}

	// The remaining axis runs from the circle center to the closer end point of
	// the line. After that one, no other axes need testing.
	x2d1 := x21 - dx1
	y2d1 := y21 - dy1

	distance12 := x21*x21 + y21*y21
	distanceD2 := x2d1*x2d1 + y2d1*y2d1

	p2 := SignSquare(distance12 - dx1*x21 - dy1*y21)

	if distance12 < distanceD2 {
		// Start point is closer
		p1 := SignSquare(distance12)
		projR2Squared := r2Squared * (x21*x21 + y21*y21)
		return Overlap([]float32{p1, p2}, []float32{-projR2Squared, projR2Squared})
	}

	// End point is closer
	p1 := SignSquare(distanceD2)
	projR2Squared := r2Squared * (x2d1*x2d1 + y2d1*y2d1)
	return Overlap([]float32{p1, p2}, []float32{-projR2Squared, projR2Squared})
}

func CollisionLineBox(x1, y1, dx1, dy1, x2, y2, w2, h2 float32) bool {
	// An end point inside the box settles it
	if CollisionPointBox(x1, y1, x2, y2, w2, h2) {
		return true
	}
	if CollisionPointBox(x1+dx1, y1+dy1, x2, y2, w2, h2) {
		return true
	}

	// Otherwise the segment has to cross one of the four sides. For each side,
	// the line parameter of the crossing is a fraction with one of these
	// nominators.
	nominatorXNeg := x2 - x1
	nominatorXPos := x2 + w2 - x1
	nominatorYNeg := y2 - y1
	nominatorYPos := y2 + h2 - y1

	// Inserting the line parameter of one axis into the equation of the other
	// gives these cross multiplied terms. Whether the crossing lies within the
	// span of a side is then a Between test, which doesn't care about the
	// direction of the line flipping the bounds.
	nomXNegDY := nominatorXNeg * dy1
	nomXPosDY := nominatorXPos * dy1
	nomYNegDX := nominatorYNeg * dx1
	nomYPosDX := nominatorYPos * dx1

	// A line parallel to a pair of sides has no crossing with them. If it lies
	// on one of them and touches the box, it also crosses the other two sides.
	if dx1 != 0 {
		// Left side
		if Between(nomXNegDY, nomYNegDX, nomYPosDX) && FractionBetweenZeroAndOne(nominatorXNeg, dx1) {
			return true
		}
		// Right side
		if Between(nomXPosDY, nomYNegDX, nomYPosDX) && FractionBetweenZeroAndOne(nominatorXPos, dx1) {
			return true
		}
	}

	if dy1 != 0 {
		// Bottom side
		if Between(nomYNegDX, nomXNegDY, nomXPosDY) && FractionBetweenZeroAndOne(nominatorYNeg, dy1) {
			return true
		}
		// Top side
		if Between(nomYPosDX, nomXNegDY, nomXPosDY) && FractionBetweenZeroAndOne(nominatorYPos, dy1) {
			return true
		}
	}

	return false
}

func CollisionLineTriangle(x1, y1, dx1, dy1, x2, y2, sxa2, sya2, sxb2, syb2 float32) bool {
	// Triangle vertices relative to the line start
	x21 := x2 - x1
	y21 := y2 - y1

	xa1 := x21 + sxa2
	ya1 := y21 + sya2

	xb1 := x21 + sxb2
	yb1 := y21 + syb2

	// Project all three vertices onto the line normal. If they all end up
	// strictly on the same side, the line cannot touch the triangle.
	projection2OnN1 := y21*dx1 - x21*dy1
	projectionAOnN1 := ya1*dx1 - xa1*dy1
	projectionBOnN1 := yb1*dx1 - xb1*dy1

	if projection2OnN1 < 0 && projectionAOnN1 < 0 && projectionBOnN1 < 0 {
		return false
	}
	if projection2OnN1 > 0 && projectionAOnN1 > 0 && projectionBOnN1 > 0 {
		return false
	}

	// Now project the line onto each triangle side normal. The triangle covers
	// the interval between 0 (the side itself) and the opposite vertex.
	projection1OnNA := x21*sya2 - y21*sxa2
	projectionDOnNA := dy1*sxa2 - dx1*sya2
	projectionBOnNA := syb2*sxa2 - sxb2*sya2

	if !Overlap(
		[]float32{projection1OnNA, projection1OnNA + projectionDOnNA},
		[]float32{0, projectionBOnNA},
	) {
		return false
	}

	projection1OnNB := x21*syb2 - y21*sxb2
	projectionDOnNB := dy1*sxb2 - dx1*syb2
	projectionAOnNB := -projectionBOnNA

	if !Overlap(
		[]float32{projection1OnNB, projection1OnNB + projectionDOnNB},
		[]float32{0, projectionAOnNB},
	) {
		return false
	}

	// The third side runs from vertex A to vertex B
	sxc2 := sxb2 - sxa2
	syc2 := syb2 - sya2

	projection1OnNC := xa1*syc2 - ya1*sxc2
	projectionDOnNC := dy1*sxc2 - dx1*syc2
	projection2OnNC := projectionBOnNA

	return Overlap(
		[]float32{projection1OnNC, projection1OnNC + projectionDOnNC},
		[]float32{0, projection2OnNC},
	)
}
