package snowshoe

// u256ToUfp copies the low 128 bits of a u256 into a ufp, which is all a
// GLS subscalar ever occupies (the lattice basis vectors both have norm
// sqrt(q), so neither subscalar glsDecompose produces exceeds 128 bits in
// magnitude; see DESIGN.md).
func u256ToUfp(a *u256, r *ufp) {
	r[0] = a[0]
	r[1] = a[1]
}

// ecMulLadder computes 4*k*P (k*P times the cofactor 4, applied by the
// two final doublings) in extended coordinates, via GLS decomposition
// into two signed subscalars (with the sign folded into the base point up
// front), GLV-SAC recoding of the pair, and a constant-time simultaneous
// double-and-add over both recoded subscalars at once (ec_mul).
func ecMulLadder(k *u256, p *ecptAffine) ecpt {
	a0, a0Sign, a1, a1Sign := glsDecompose(k)

	var ufpA, ufpB ufp
	u256ToUfp(&a0, &ufpA)
	u256ToUfp(&a1, &ufpB)

	var P ecpt
	ecExpand(p, &P)
	ecCondNeg(&P, a0Sign)

	q1Affine := glsMorph(p)
	var Q ecpt
	ecExpand(&q1Affine, &Q)
	ecCondNeg(&Q, a1Sign)

	var table [8]ecpt
	ecGenTable2(&table, &P, &Q)

	recodeBit := ecRecodeScalars2(&ufpA, &ufpB, 128)

	var X ecpt
	ecTableSelect2(&X, &table, &ufpA, &ufpB, 126, true)

	for ii := 124; ii >= 0; ii -= 2 {
		var T ecpt
		ecTableSelect2(&T, &table, &ufpA, &ufpB, ii, true)
		ecDbl(&X, &X)
		ecDbl(&X, &X)
		ecAdd(&X, &X, &T, false, false)
	}

	ecCondAdd(&X, &X, &P, recodeBit, true)

	// Multiply by the cofactor to land on the curve's full order-4q group
	// rather than just the subgroup the recoding above targets.
	ecDbl(&X, &X)
	ecDbl(&X, &X)

	return X
}

// ECMul computes 4*k*P for an arbitrary point P on the curve.
func ECMul(r *ecptAffine, k *u256, p *ecptAffine) {
	acc := ecMulLadder(k, p)
	ecAffine(&acc, r)
}
