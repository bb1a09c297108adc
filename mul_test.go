package snowshoe

import (
	"math/rand"
	"testing"
)

// scalarMulBruteForce computes k*p via plain binary double-and-add, with no
// GLS decomposition at all, as an independent check on ECMul's ladder. It
// lands on the same full order-4q group ECMul does, by applying the
// cofactor at the end the same way ecMulLadder does.
func scalarMulBruteForce(k *u256, p *ecptAffine) ecptAffine {
	var acc ecpt
	ecZero(&acc)
	var base ecpt
	ecExpand(p, &base)
	for i := 255; i >= 0; i-- {
		ecDbl(&acc, &acc)
		if u256Bit(k, i) == 1 {
			ecAdd(&acc, &acc, &base, false, true)
		}
	}
	ecDbl(&acc, &acc)
	ecDbl(&acc, &acc)
	var out ecptAffine
	ecAffine(&acc, &out)
	return out
}

func TestECMulMatchesBruteForce(t *testing.T) {
	g := baseAffine()
	rnd := rand.New(rand.NewSource(9))
	for i := 0; i < 300; i++ {
		k := randomScalar(rnd)

		var got ecptAffine
		ECMul(&got, &k, &g)
		want := scalarMulBruteForce(&k, &g)

		if !feEqual(&got.x, &want.x) || !feEqual(&got.y, &want.y) {
			t.Fatalf("k=%v: ECMul disagrees with brute force", k)
		}
	}
}

func TestECMulZeroIsIdentity(t *testing.T) {
	g := baseAffine()
	var got ecptAffine
	ECMul(&got, &u256{0, 0, 0, 0}, &g)
	if !feIsZero(&got.x) || !feEqual(&got.y, &feOne) {
		t.Error("0*P should be the identity")
	}
}

func TestECMulOneTimesCofactorIsFour(t *testing.T) {
	g := baseAffine()
	var got ecptAffine
	ECMul(&got, &u256{1, 0, 0, 0}, &g)

	var base, dbl1, dbl2 ecpt
	ecExpand(&g, &base)
	ecDbl(&dbl1, &base)
	ecDbl(&dbl2, &dbl1)
	var want ecptAffine
	ecAffine(&dbl2, &want)

	if !feEqual(&got.x, &want.x) || !feEqual(&got.y, &want.y) {
		t.Error("1*P should equal the cofactor-scaled 4*P")
	}
}

func TestECMulComposesLikeSchnorrResponse(t *testing.T) {
	// s*G should equal R + e*Pub when s = k + e*sk mod q, the exact
	// composition a Schnorr verifier relies on, with both sides scaled by
	// the cofactor ECMulGen(..., true) and ECMul both apply. Pub is left
	// unscaled, as PubkeyCreate produces it, since ECMul scales e*Pub itself.
	rnd := rand.New(rand.NewSource(10))

	kScalar := randomScalar(rnd)
	skScalar := randomScalar(rnd)
	eScalar := randomScalar(rnd)

	var r, pub ecptAffine
	ECMulGen(&r, &kScalar, true)
	ECMulGen(&pub, &skScalar, false)

	var eSk u256
	u256MulModQ(&eSk, &eScalar, &skScalar)
	var s u256
	u256AddModQ(&s, &kScalar, &eSk)

	var sG ecptAffine
	ECMulGen(&sG, &s, true)

	epAcc := ecMulLadder(&eScalar, &pub)

	var rExt ecpt
	ecExpand(&r, &rExt)

	var rhs ecpt
	ecAdd(&rhs, &rExt, &epAcc, false, false)
	var rhsAffine ecptAffine
	ecAffine(&rhs, &rhsAffine)

	if !feEqual(&sG.x, &rhsAffine.x) || !feEqual(&sG.y, &rhsAffine.y) {
		t.Error("s*G should equal R + e*Pub")
	}
}
