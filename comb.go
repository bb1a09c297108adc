package snowshoe

import "math/bits"

// This file implements the fixed-base "comb" scalar multiplication used by
// ECMulGen (the w=7, v=2 two-row comb, ec_mul_gen/ec_table_select_comb),
// and a w=8, v=1 single-row comb (ec_recode_scalar_comb1/
// ec_table_select_comb1) that no exported function calls: ECSimulGen takes
// its generator half from the two-row comb (ecMulGenLadder). Both first Booth-recode
// the scalar so that every comb digit except the top sign bit can be read
// directly off the recoded buffer, then walk the recoded digits column by
// column, doubling the accumulator once per column and adding in the
// comb-selected point.
//
// combRowStride2/combColumns2 (d=36, e=18) size the two-row comb; combRowStride1/
// combColumns1 (d=32, e=32) size the single-row comb.
const (
	combRowStride2 = 36
	combColumns2   = 18
	combRowStride1 = 32
	combColumns1   = 32
	combLength2    = 252
	combLength1    = 256
)

// u256AddBit adds a single bit (0 or 1) into bit position pos of b, in
// place, propagating the carry through the higher limbs — the 256-bit
// ripple-carry step ec_recode_scalar_comb1's digit-by-digit Booth
// recoding performs at every position past its comb's row width.
func u256AddBit(b *u256, pos int, bit uint64) {
	limb := pos >> 6
	carry := bit << uint(pos&63)
	for i := limb; i < 4 && carry != 0; i++ {
		var c uint64
		b[i], c = bits.Add64(b[i], carry, 0)
		carry = c
	}
}

// boothRecodeComb implements the Booth-style comb recoding of both combs
// (ec_recode_scalar_comb / ec_recode_scalar_comb1), parameterized by the comb's row stride d and
// total bit length l: it first folds k's parity into a sign choice between
// k and -k (mod q), forces the bottom digit's sign bit, then walks every
// later bit position propagating a Booth carry from the low bits of each
// row into the next row. The returned lsb is folded back in by the caller
// as a final conditional negation of the accumulated point.
func boothRecodeComb(k *u256, d, l int) (kp u256, lsb uint64) {
	lsb = (k[0] & 1) ^ 1

	var neg u256
	negModQ(&neg, k)
	b := *k
	mask := uint64(0) - lsb
	for i := 0; i < 4; i++ {
		b[i] ^= mask & (b[i] ^ neg[i])
	}

	dBit := uint64(1) << uint(d-1)
	lowMask := dBit - 1
	b[0] = (b[0] &^ lowMask) | dBit | ((b[0] >> 1) & lowMask)

	for i := d; i < l; i++ {
		bitPos := i % d
		carry := ((b[0]>>uint(bitPos))^1) & u256Bit(&b, i) & 1
		u256AddBit(&b, i+1, carry)
	}

	kp = b
	return
}

// ecRecodeScalarComb recodes k for the two-row w=7/v=2 comb (ec_mul_gen).
func ecRecodeScalarComb(k *u256) (kp u256, lsb uint64) {
	return boothRecodeComb(k, combRowStride2, combLength2)
}

// ecRecodeScalarComb1 recodes k for the single-row w=8 comb. ECSimulGen
// does not use it; the tests in comb_test.go are its only callers.
func ecRecodeScalarComb1(k *u256) (kp u256, lsb uint64) {
	return boothRecodeComb(k, combRowStride1, combLength1)
}

// combBit reads bit (wp*combRowStride2 + vp*combColumns2 + ep) of the
// recoded buffer b (comb_bit).
func combBit(b *u256, wp, vp, ep int) uint64 {
	return u256Bit(b, wp*combRowStride2+vp*combColumns2+ep)
}

// combBit1 reads bit (wp*combRowStride1 + ep) of the recoded buffer b
// (comb_bit1).
func combBit1(b *u256, wp, ep int) uint64 {
	return u256Bit(b, wp*combRowStride1+ep)
}

// ecTableSelectComb reads column ii out of the two-row comb in constant
// time (ec_table_select_comb): six comb_bit calls per row assemble a 6-bit
// digit into genTable0/genTable1, and the row's sign bit (wp=0)
// conditionally negates the selected point.
func ecTableSelectComb(b *u256, ii int) (p1, p2 ecptAffine) {
	var d0, d1 uint32
	for wp := 1; wp <= 6; wp++ {
		d0 |= uint32(combBit(b, wp, 0, ii)) << uint(wp-1)
		d1 |= uint32(combBit(b, wp, 1, ii)) << uint(wp-1)
	}
	s0 := combBit(b, 0, 0, ii)
	s1 := combBit(b, 0, 1, ii)

	var a0, a1 affinePoint
	for i := 0; i < len(genTable0); i++ {
		mask := ecGenMask(uint32(i), d0)
		ecXorMaskAffine(&a0, &genTable0[i], mask)
	}
	for i := 0; i < len(genTable1); i++ {
		mask := ecGenMask(uint32(i), d1)
		ecXorMaskAffine(&a1, &genTable1[i], mask)
	}

	p1 = ecptAffine(a0)
	p2 = ecptAffine(a1)
	ecAffineCondNeg(&p1, s0^1)
	ecAffineCondNeg(&p2, s1^1)
	return
}

// ecTableSelectComb1 reads column ii out of the single-row comb
// (ec_table_select_comb1). Unlike ecTableSelectComb this is a direct array
// index, not a masked scan: the upstream driver does not hold this comb to
// a constant-time obligation. The row's sign bit is folded together with
// recodeLsb so the caller does not need a separate final negation.
func ecTableSelectComb1(recodeLsb uint64, b *u256, ii int) ecptAffine {
	var d0 uint32
	for wp := 1; wp <= 7; wp++ {
		d0 |= uint32(combBit1(b, wp, ii)) << uint(wp-1)
	}
	s0 := combBit1(b, 0, ii)

	p := ecptAffine(simulGenTable[d0])
	ecAffineCondNeg(&p, s0^recodeLsb^1)
	return p
}
