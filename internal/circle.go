package internal

// Circle collisions. These all follow the separating axis theorem. Since a
// circle projects to an interval of half width r*|axis|, projections are
// compared as sign preserving squares against r²*|axis|², which avoids any
// square roots.

func CollisionCircleCircle(x1, y1, r1, x2, y2, r2 float32) bool {
	dx := x1 - x2
	dy := y1 - y2
	combinedRadius := r1 + r2
	return dx*dx+dy*dy <= combinedRadius*combinedRadius
}

func CollisionCircleBox(x1, y1, r1, x2, y2, w2, h2 float32) bool {
	// Box sides relative to the circle center
	dxp := x2 + w2 - x1
	dyp := y2 + h2 - y1
	dxm := x2 - x1
	dym := y2 - y1

	// Cardinal axes
	if !Overlap([]float32{dxm, dxp}, []float32{-r1, r1}) {
		return false
	}
	if !Overlap([]float32{dym, dyp}, []float32{-r1, r1}) {
		return false
	}

	// The last axis runs from the circle center to the closest box vertex
	dxp2 := dxp * dxp
	dxm2 := dxm * dxm
	dyp2 := dyp * dyp
	dym2 := dym * dym

	minDist := dxp2 + dyp2
	vx, vy := dxp, dyp

	if d := dyp2 + dxm2; d < minDist {
		minDist = d
		vx, vy = dxm, dyp
	}
	if d := dxm2 + dym2; d < minDist {
		minDist = d
		vx, vy = dxm, dym
	}
	if d := dym2 + dxp2; d < minDist {
		vx, vy = dxp, dym
	}

	// Project the box onto that axis, with the circle center as zero
	projVPP := SignSquare(dxp*vx + dyp*vy)
	projVPM := SignSquare(dxp*vx + dym*vy)
	projVMP := SignSquare(dxm*vx + dyp*vy)
	projVMM := SignSquare(dxm*vx + dym*vy)

	projR1Squared := r1 * r1 * (vx*vx + vy*vy)

	return Overlap(
		[]float32{projVPP, projVPM, projVMP, projVMM},
		[]float32{-projR1Squared, projR1Squared},
	)
}

func CollisionCircleTriangle(x1, y1, r1, x2, y2, sxa2, sya2, sxb2, syb2 float32) bool {
	dx := x1 - x2
	dy := y1 - y2

	r1Squared := r1 * r1
	crossTerm := sxa2*syb2 - sxb2*sya2

	// Side a
	projX1A := dy*sxa2 - dx*sya2
	projR1ASquared := r1Squared * (sxa2*sxa2 + sya2*sya2)

	if !Overlap(
		[]float32{SignSquare(-projX1A), SignSquare(crossTerm - projX1A)},
		[]float32{-projR1ASquared, projR1ASquared},
	) {
		return false
	}

	// Side b
	projX1B := dy*sxb2 - dx*syb2
	projR1BSquared := r1Squared * (sxb2*sxb2 + syb2*syb2)

	if !Overlap(
		[]float32{SignSquare(-projX1B), SignSquare(-crossTerm - projX1B)},
		[]float32{-projR1BSquared, projR1BSquared},
	) {
		return false
	}

	// Side c, spanned by the vertices A and B. Relative to the base vertex,
	// both of them project onto its normal at the negated cross term.
	sxc2 := sxb2 - sxa2
	syc2 := syb2 - sya2

	projX1C := dy*sxc2 - dx*syc2
	projR1CSquared := r1Squared * (sxc2*sxc2 + syc2*syc2)

	if !Overlap(
		[]float32{SignSquare(-projX1C), SignSquare(-crossTerm - projX1C)},
		[]float32{-projR1CSquared, projR1CSquared},
	) {
		return false
	}

	// None of the side normals separate, so the axis towards the closest vertex
	// decides, like for boxes
	minDist := dx*dx + dy*dy
	vx, vy := -dx, -dy

	dxa := dx - sxa2
	dya := dy - sya2

	dxb := dx - sxb2
	dyb := dy - syb2

	if daNorm := dxa*dxa + dya*dya; daNorm < minDist {
		minDist = daNorm
		vx, vy = -dxa, -dya
	}
	if dbNorm := dxb*dxb + dyb*dyb; dbNorm < minDist {
		minDist = dbNorm
		vx, vy = -dxb, -dyb
	}

	proj20V := SignSquare(-dx*vx - dy*vy)
	proj2AV := SignSquare(-dxa*vx - dya*vy)
	proj2BV := SignSquare(-dxb*vx - dyb*vy)

	projRVSquared := r1Squared * minDist

	return Overlap(
		[]float32{proj20V, proj2AV, proj2BV},
		[]float32{-projRVSquared, projRVSquared},
	)
}
