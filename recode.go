package snowshoe

import "math/bits"

// ufp is an unsigned 128-bit value (a GLS subscalar), stored as two
// little-endian 64-bit limbs.
type ufp [2]uint64

func ufpBit(a *ufp, i int) uint64 {
	return (a[i>>6] >> uint(i&63)) & 1
}

func ufpSetBit(a *ufp, i int) {
	a[i>>6] |= uint64(1) << uint(i&63)
}

func ufpAnd(a, b ufp) ufp {
	return ufp{a[0] & b[0], a[1] & b[1]}
}

func ufpNot(a ufp) ufp {
	return ufp{^a[0], ^a[1]}
}

func ufpShl1(a ufp) ufp {
	return ufp{a[0] << 1, (a[1] << 1) | (a[0] >> 63)}
}

func ufpShr1(a ufp) ufp {
	return ufp{(a[0] >> 1) | (a[1] << 63), a[1] >> 1}
}

func ufpAdd(a, b ufp) ufp {
	lo, c := bits.Add64(a[0], b[0], 0)
	hi, _ := bits.Add64(a[1], b[1], c)
	return ufp{lo, hi}
}

func ufpSubBit(a ufp, v uint64) ufp {
	lo, borrow := bits.Sub64(a[0], v, 0)
	hi, _ := bits.Sub64(a[1], 0, borrow)
	return ufp{lo, hi}
}

// ecRecodeScalars2 recodes the GLS subscalar pair (a, b) in place into the
// GLV-SAC representation ec_mul's ladder consumes: every one of a's len
// bits becomes a uniform 1, with the sign of each column folded into the
// choice ecTableSelect2 makes at that column, and b's bits adjusted so the
// pair still encodes the original (a, b) once the ladder runs to
// completion. Returns the parity bit that must be folded back in with a
// final conditional add of the base point.
func ecRecodeScalars2(a, b *ufp, length int) uint64 {
	lsb := (a[0] & 1) ^ 1
	*a = ufpSubBit(*a, lsb)
	*a = ufpShr1(*a)
	ufpSetBit(a, length-1)

	an := ufpNot(*a)
	mask := ufp{1, 0}
	for ii := 1; ii < length; ii++ {
		anmask := ufpAnd(an, mask)
		shifted := ufpShl1(ufpAnd(*b, anmask))
		*b = ufpAdd(*b, shifted)
		mask = ufpShl1(mask)
	}
	return lsb
}

// ecRecodeScalars4 is ecRecodeScalars2 generalized to three co-recoded
// subscalars at once, for ec_simul's 4-subscalar ladder: a is recoded as
// above and the same carry propagates into b, c, and d simultaneously.
func ecRecodeScalars4(a, b, c, d *ufp, length int) uint64 {
	lsb := (a[0] & 1) ^ 1
	*a = ufpSubBit(*a, lsb)
	*a = ufpShr1(*a)
	ufpSetBit(a, length-1)

	an := ufpNot(*a)
	mask := ufp{1, 0}
	for ii := 1; ii < length; ii++ {
		anmask := ufpAnd(an, mask)
		*b = ufpAdd(*b, ufpShl1(ufpAnd(*b, anmask)))
		*c = ufpAdd(*c, ufpShl1(ufpAnd(*c, anmask)))
		*d = ufpAdd(*d, ufpShl1(ufpAnd(*d, anmask)))
		mask = ufpShl1(mask)
	}
	return lsb
}
