package snowshoe

import "testing"

func TestEcGenTable2Entries(t *testing.T) {
	g := baseAffine()
	var a, b ecpt
	ecExpand(&g, &a)
	acc := ecMulLadder(&u256{2, 0, 0, 0}, &g)
	b = acc

	var table [8]ecpt
	ecGenTable2(&table, &a, &b)

	var threeA ecpt
	ecDbl(&threeA, &a)
	ecAdd(&threeA, &threeA, &a, false, false)
	var threeAAffine, table0Affine ecptAffine
	ecAffine(&threeA, &threeAAffine)
	ecAffine(&table[0], &table0Affine)
	if !feEqual(&threeAAffine.x, &table0Affine.x) || !feEqual(&threeAAffine.y, &table0Affine.y) {
		t.Error("table[0] should equal 3a")
	}

	var aAffine, tableAAffine ecptAffine
	ecAffine(&a, &aAffine)
	ecAffine(&table[4], &tableAAffine)
	if !feEqual(&aAffine.x, &tableAAffine.x) {
		t.Error("table[4] should equal a")
	}

	var sumWant, sumGot ecpt
	ecAdd(&sumWant, &a, &b, false, false)
	sumGot = table[7]
	var wantAffine, gotAffine ecptAffine
	ecAffine(&sumWant, &wantAffine)
	ecAffine(&sumGot, &gotAffine)
	if !feEqual(&wantAffine.x, &gotAffine.x) || !feEqual(&wantAffine.y, &gotAffine.y) {
		t.Error("table[7] should equal a+b")
	}
}

func TestEcTableSelect2(t *testing.T) {
	g := baseAffine()
	var a, b ecpt
	ecExpand(&g, &a)
	b = ecMulLadder(&u256{2, 0, 0, 0}, &g)

	var table [8]ecpt
	ecGenTable2(&table, &a, &b)

	bitsA := ufp{0b101, 0}
	bitsB := ufp{0b011, 0}

	// The half is picked by a's two bits differing, the entry within it by
	// b's two bits, and the result is negated when a's upper bit is 0.
	for i := 0; i < 3; i++ {
		for _, constantTime := range []bool{true, false} {
			var sel ecpt
			ecTableSelect2(&sel, &table, &bitsA, &bitsB, i, constantTime)
			want := uint32(ufpBit(&bitsA, i)^ufpBit(&bitsA, i+1))<<2 |
				uint32(ufpBit(&bitsB, i)) | uint32(ufpBit(&bitsB, i+1))<<1
			wantPt := table[want]
			ecCondNeg(&wantPt, ufpBit(&bitsA, i+1)^1)

			var selAffine, wantAffine ecptAffine
			ecAffine(&sel, &selAffine)
			ecAffine(&wantPt, &wantAffine)
			if !feEqual(&selAffine.x, &wantAffine.x) || !feEqual(&selAffine.y, &wantAffine.y) {
				t.Errorf("bit %d (constantTime=%v): ecTableSelect2 picked the wrong entry", i, constantTime)
			}
		}
	}
}

func TestEcGenTable4SubsetSums(t *testing.T) {
	g := baseAffine()
	var a, b, c, d ecpt
	ecExpand(&g, &a)
	b = ecMulLadder(&u256{2, 0, 0, 0}, &g)
	c = ecMulLadder(&u256{3, 0, 0, 0}, &g)
	d = ecMulLadder(&u256{5, 0, 0, 0}, &g)

	var table [8]ecpt
	ecGenTable4(&table, &a, &b, &c, &d)

	// a is in every entry; index bits 0, 1, 2 select b, c, d.
	// table[0b101] should equal a+b+d.
	var sum ecpt
	ecAdd(&sum, &a, &b, false, false)
	ecAdd(&sum, &sum, &d, false, false)

	var sumAffine, gotAffine ecptAffine
	ecAffine(&sum, &sumAffine)
	ecAffine(&table[0b101], &gotAffine)
	if !feEqual(&sumAffine.x, &gotAffine.x) || !feEqual(&sumAffine.y, &gotAffine.y) {
		t.Error("table[0b101] should equal a+b+d")
	}

	// table[0b111] should equal a+b+c+d.
	var all ecpt
	ecAdd(&all, &a, &b, false, false)
	ecAdd(&all, &all, &c, false, false)
	ecAdd(&all, &all, &d, false, false)

	var allAffine, gotAllAffine ecptAffine
	ecAffine(&all, &allAffine)
	ecAffine(&table[0b111], &gotAllAffine)
	if !feEqual(&allAffine.x, &gotAllAffine.x) || !feEqual(&allAffine.y, &gotAllAffine.y) {
		t.Error("table[0b111] should equal a+b+c+d")
	}
}

func TestEcTableSelect4(t *testing.T) {
	g := baseAffine()
	var a, b, c, d ecpt
	ecExpand(&g, &a)
	b = ecMulLadder(&u256{2, 0, 0, 0}, &g)
	c = ecMulLadder(&u256{3, 0, 0, 0}, &g)
	d = ecMulLadder(&u256{5, 0, 0, 0}, &g)

	var table [8]ecpt
	ecGenTable4(&table, &a, &b, &c, &d)

	ua := ufp{0b110, 0}
	ub := ufp{0b011, 0}
	uc := ufp{0b101, 0}
	ud := ufp{0b001, 0}

	// b/c/d's bits pick the entry; a's bit being 0 negates it.
	for i := 0; i < 3; i++ {
		var sel ecpt
		ecTableSelect4(&sel, &table, &ua, &ub, &uc, &ud, i)
		want := uint32(ufpBit(&ub, i)) | uint32(ufpBit(&uc, i))<<1 |
			uint32(ufpBit(&ud, i))<<2
		wantPt := table[want]
		ecCondNeg(&wantPt, ufpBit(&ua, i)^1)

		var selAffine, wantAffine ecptAffine
		ecAffine(&sel, &selAffine)
		ecAffine(&wantPt, &wantAffine)
		if !feEqual(&selAffine.x, &wantAffine.x) || !feEqual(&selAffine.y, &wantAffine.y) {
			t.Errorf("bit %d: ecTableSelect4 picked the wrong entry", i)
		}
	}
}
