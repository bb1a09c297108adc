package snowshoe

import (
	"math/rand"
	"testing"
)

func baseAffine() ecptAffine {
	return basePoint
}

// randomScalar draws a scalar below q by masking a full 256-bit draw to
// 251 bits with ecMaskScalar.
func randomScalar(rnd *rand.Rand) u256 {
	k := u256{
		rnd.Uint64(),
		rnd.Uint64(),
		rnd.Uint64(),
		rnd.Uint64(),
	}
	ecMaskScalar(&k)
	return k
}

func TestPointIdentity(t *testing.T) {
	var id ecpt
	ecZero(&id)
	var affine ecptAffine
	ecAffine(&id, &affine)
	if !feIsZero(&affine.x) || !feEqual(&affine.y, &feOne) {
		t.Error("identity should be (0,1)")
	}
}

func TestPointDoubleMatchesAdd(t *testing.T) {
	g := baseAffine()
	var p ecpt
	ecExpand(&g, &p)

	var dbl, sum ecpt
	ecDbl(&dbl, &p)
	ecAdd(&sum, &p, &p, true, true)

	var dblAffine, sumAffine ecptAffine
	ecAffine(&dbl, &dblAffine)
	ecAffine(&sum, &sumAffine)

	if !feEqual(&dblAffine.x, &sumAffine.x) || !feEqual(&dblAffine.y, &sumAffine.y) {
		t.Error("doubling should match self-addition")
	}
}

func TestPointOnCurveAfterArithmetic(t *testing.T) {
	g := baseAffine()
	if !pointOnCurve(&g) {
		t.Fatal("base point must satisfy the curve equation")
	}

	var p, acc ecpt
	ecExpand(&g, &p)
	ecSet(&acc, &p)
	for i := 0; i < 10; i++ {
		ecDbl(&acc, &acc)
		ecAdd(&acc, &acc, &p, false, true)
		var affine ecptAffine
		ecAffine(&acc, &affine)
		if !pointOnCurve(&affine) {
			t.Fatalf("iteration %d left the curve", i)
		}
	}
}

func TestPointNegate(t *testing.T) {
	g := baseAffine()
	var p, neg, sum ecpt
	ecExpand(&g, &p)
	ecNeg(&neg, &p)
	ecAdd(&sum, &p, &neg, true, true)

	var sumAffine ecptAffine
	ecAffine(&sum, &sumAffine)
	if !feIsZero(&sumAffine.x) || !feEqual(&sumAffine.y, &feOne) {
		t.Error("p + (-p) should be the identity")
	}
}

func TestPointCondNeg(t *testing.T) {
	g := baseAffine()
	var p, negated, untouched ecpt
	ecExpand(&g, &p)

	ecSet(&negated, &p)
	ecCondNeg(&negated, 1)
	ecSet(&untouched, &p)
	ecCondNeg(&untouched, 0)

	var negAffine, sameAffine, origAffine ecptAffine
	ecAffine(&negated, &negAffine)
	ecAffine(&untouched, &sameAffine)
	ecAffine(&p, &origAffine)

	if !feEqual(&sameAffine.x, &origAffine.x) || !feEqual(&sameAffine.y, &origAffine.y) {
		t.Error("ecCondNeg with flag=0 should not change the point")
	}
	if feEqual(&negAffine.x, &origAffine.x) {
		t.Error("ecCondNeg with flag=1 should negate x")
	}
}

func TestPointGenMaskAndXorMask(t *testing.T) {
	if ecGenMask(3, 3) != ^uint64(0) {
		t.Error("ecGenMask should be all-ones when idx == want")
	}
	if ecGenMask(3, 4) != 0 {
		t.Error("ecGenMask should be all-zero when idx != want")
	}

	var table [4]ecpt
	g := baseAffine()
	ecExpand(&g, &table[2])

	var acc ecpt
	for i := 0; i < 4; i++ {
		mask := ecGenMask(uint32(i), 2)
		ecXorMask(&acc, &table[i], mask)
	}
	var got, want ecptAffine
	ecAffine(&acc, &got)
	ecAffine(&table[2], &want)
	if !feEqual(&got.x, &want.x) || !feEqual(&got.y, &want.y) {
		t.Error("masked scan should select table[2]")
	}
}
