package snowshoe

// ECSimul computes 4*(a*P + b*Q) for two arbitrary points in a single ladder
// pass (ec_simul): both scalars are GLS-decomposed into sign-adjusted
// subscalar base points, combined into the 8-entry subset-sum table
// ecGenTable4 builds, and walked one bit at a time with a's recoded bit
// (folded via ecRecodeScalars4, the same GLV-SAC carry propagation ec_mul
// uses for one scalar, generalized to carry into three co-scalars at once)
// forced to 1 at every position.
func ECSimul(r *ecptAffine, a *u256, p *ecptAffine, b *u256, q *ecptAffine) {
	a0, a0Sign, a1, a1Sign := glsDecompose(a)
	b0, b0Sign, b1, b1Sign := glsDecompose(b)

	var P0, P1, Q0, Q1 ecpt
	ecExpand(p, &P0)
	ecCondNeg(&P0, a0Sign)

	p1Affine := glsMorph(p)
	ecExpand(&p1Affine, &P1)
	ecCondNeg(&P1, a1Sign)

	ecExpand(q, &Q0)
	ecCondNeg(&Q0, b0Sign)

	q1Affine := glsMorph(q)
	ecExpand(&q1Affine, &Q1)
	ecCondNeg(&Q1, b1Sign)

	var table [8]ecpt
	ecGenTable4(&table, &P0, &P1, &Q0, &Q1)

	var ufpA, ufpB, ufpC, ufpD ufp
	u256ToUfp(&a0, &ufpA)
	u256ToUfp(&a1, &ufpB)
	u256ToUfp(&b0, &ufpC)
	u256ToUfp(&b1, &ufpD)

	recodeBit := ecRecodeScalars4(&ufpA, &ufpB, &ufpC, &ufpD, 127)

	var acc ecpt
	ecTableSelect4(&acc, &table, &ufpA, &ufpB, &ufpC, &ufpD, 126)

	for ii := 125; ii >= 0; ii-- {
		var T ecpt
		ecTableSelect4(&T, &table, &ufpA, &ufpB, &ufpC, &ufpD, ii)
		ecDbl(&acc, &acc)
		ecAdd(&acc, &acc, &T, false, false)
	}

	// a0's recoding forced its bit to 1 at every position, which amounts to
	// subtracting P0 up front; fold that back in now that the ladder is done.
	ecCondAdd(&acc, &acc, &P0, recodeBit, true)

	// Land on the curve's full order-4q group rather than just the
	// prime-order subgroup the GLS decomposition above targets.
	ecDbl(&acc, &acc)
	ecDbl(&acc, &acc)

	ecAffine(&acc, r)
}
