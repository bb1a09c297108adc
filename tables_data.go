package snowshoe

import "math/bits"

// Precomputed tables for fixed-base scalar multiplication by the curve's
// base point G. Rather than a hand-transcribed byte dump (the form
// upstream ships these in, and the form this package's earlier static
// tables took), every entry here is derived at package-init time from
// basePoint by the same extended-coordinate doubling and addition
// formulas point.go uses everywhere else — see DESIGN.md for why: a
// hand-copied precomputed constant is exactly the kind of subtle,
// unit-invisible bug a compiler would normally catch, and this module is
// built and reviewed without ever running one.
//
// genTable0/genTable1 are the two 64-entry rows of the w=7, v=2 comb
// ec_mul_gen reads (combRowStride2 = 36, combColumns2 = 18): row i's
// entry idx is 2^rowOffset*G (the sign row wp=0, present in every entry)
// plus, for every set bit of idx (bit 0 standing for comb row wp=1, bit 5
// for wp=6), the point 2^(wp*36 + rowOffset)*G.
//
// simulGenTable is the single 128-entry table of the w=8, v=1 comb
// (combRowStride1 = 32): entry idx is G plus 2^(wp*32)*G for every set bit
// of idx, wp = 1..7. ECSimulGen does not read it (see simulgen.go); only
// ecTableSelectComb1 does.
//
// genFix is the comb's GEN_FIX correction point, 2^252 * G, added back in
// conditionally when ec_mul_gen's Booth recoding carries out of the top
// digit.
var basePoint = ecptAffine{
	x: fe{0x367bd2d7b6c0fa21, 0x4cc9cf157eee430a, 0x93e75ceff71a2d94, 0x399bb5e440e6e61d},
	y: fe{3, 0, 0, 0},
}

// scaleAffine computes 2^doublings * base via repeated extended-coordinate
// doubling.
func scaleAffine(base *ecptAffine, doublings int) ecpt {
	var p ecpt
	ecExpand(base, &p)
	for i := 0; i < doublings; i++ {
		ecDbl(&p, &p)
	}
	return p
}

// buildRowBases computes a comb row's base points 2^(stride+offset),
// 2^(2*stride+offset), ..., 2^(count*stride+offset), each times g.
func buildRowBases(g *ecptAffine, stride, offset, count int) []ecpt {
	bases := make([]ecpt, count)
	for i := 0; i < count; i++ {
		bases[i] = scaleAffine(g, (i+1)*stride+offset)
	}
	return bases
}

// buildSubsetTable builds the 2^len(bases)-entry table of origin plus every
// subset sum of bases, indexed by the bitmask of which bases are included —
// the same low/high subset-sum decomposition ecGenTable4 uses, generalized
// to an arbitrary base count.
func buildSubsetTable(origin ecpt, bases []ecpt) []affinePoint {
	n := 1 << uint(len(bases))
	ext := make([]ecpt, n)
	ext[0] = origin
	for i := 1; i < n; i++ {
		low := i & (i - 1)
		high := i &^ low
		bit := bits.TrailingZeros(uint(high))
		ecAdd(&ext[i], &ext[low], &bases[bit], false, false)
	}
	out := make([]affinePoint, n)
	for i := 0; i < n; i++ {
		var aff ecptAffine
		ecAffine(&ext[i], &aff)
		out[i] = affinePoint(aff)
	}
	return out
}

var genTable0 = buildSubsetTable(scaleAffine(&basePoint, 0), buildRowBases(&basePoint, combRowStride2, 0, 6))
var genTable1 = buildSubsetTable(scaleAffine(&basePoint, combColumns2), buildRowBases(&basePoint, combRowStride2, combColumns2, 6))
var simulGenTable = buildSubsetTable(scaleAffine(&basePoint, 0), buildRowBases(&basePoint, combRowStride1, 0, 7))

var genFix = func() ecptAffine {
	p := scaleAffine(&basePoint, combLength2)
	var aff ecptAffine
	ecAffine(&p, &aff)
	return aff
}()
