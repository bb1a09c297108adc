package snowshoe

// This file builds the small per-call tables the variable-base ladders
// (ECMul, ECSimul, the variable half of ECSimulGen) read from: every call
// builds its table once from the GLS-decomposed (and already
// sign-adjusted) subscalar base points, then looks up one recoded column
// at a time via a full-table XOR-masked scan.

// ecGenTable2 builds the 8-entry table ec_mul's ladder reads, following
// the window-of-2-bits layout ec_table_select_2 expects: entries 4..7 are
// {a, a-b, a+2b, a+b}, and entries 0..3 are the same four points shifted
// by +3a (the column that appears once the GLV-SAC recoding forces a's
// bit to 1 at every position).
func ecGenTable2(table *[8]ecpt, a, b *ecpt) {
	var bn, a2 ecpt
	ecNeg(&bn, b)

	table[4] = *a
	ecAdd(&table[5], a, &bn, false, false)
	ecAdd(&table[7], a, b, false, false)
	ecAdd(&table[6], &table[7], b, false, false)

	ecDbl(&a2, a)
	ecAdd(&table[0], &a2, a, false, false)
	ecAdd(&table[1], &table[0], b, false, false)
	ecAdd(&table[2], &table[1], b, false, false)
	ecAdd(&table[3], &table[2], b, false, false)
}

// ecTableSelect2 reads the column at index out of table (ec_table_select_2):
// two adjacent bits of the recoded a select the table half (their XOR picks
// entries 0..3 vs 4..7) while the corresponding two bits of b pick within
// that half, and the chosen point is conditionally negated by a's upper
// bit. When constantTime is false, the column is read by a direct index
// instead of a masked scan; no caller in this package passes false.
func ecTableSelect2(r *ecpt, table *[8]ecpt, a, b *ufp, index int, constantTime bool) {
	a0 := ufpBit(a, index)
	a1 := ufpBit(a, index+1)
	k := uint32(a0^a1)<<2 | uint32(ufpBit(b, index)) | uint32(ufpBit(b, index+1))<<1

	if constantTime {
		var acc ecpt
		for i := 0; i < 8; i++ {
			mask := ecGenMask(uint32(i), k)
			ecXorMask(&acc, &table[i], mask)
		}
		*r = acc
	} else {
		*r = table[k]
	}
	ecCondNeg(r, a1^1)
}

// ecGenTable4 builds the 8-entry table ec_simul's ladder reads: every
// subset of {b, c, d} added to the fixed base a (ec_gen_table_4).
func ecGenTable4(table *[8]ecpt, a, b, c, d *ecpt) {
	table[0] = *a
	ecAdd(&table[1], a, b, false, false)
	ecAdd(&table[2], a, c, false, false)
	ecAdd(&table[3], &table[1], c, false, false)
	ecAdd(&table[4], a, d, false, false)
	ecAdd(&table[5], &table[1], d, false, false)
	ecAdd(&table[6], &table[2], d, false, false)
	ecAdd(&table[7], &table[3], d, false, false)
}

// ecTableSelect4 reads the column at index out of table in constant time,
// selecting among the 8 subset-sum entries by b/c/d's bits and
// conditionally negating by a's bit (ec_table_select_4).
func ecTableSelect4(r *ecpt, table *[8]ecpt, a, b, c, d *ufp, index int) {
	k := uint32(ufpBit(b, index)) | uint32(ufpBit(c, index))<<1 | uint32(ufpBit(d, index))<<2
	var acc ecpt
	for i := 0; i < 8; i++ {
		mask := ecGenMask(uint32(i), k)
		ecXorMask(&acc, &table[i], mask)
	}
	*r = acc
	ecCondNeg(r, ufpBit(a, index)^1)
}
