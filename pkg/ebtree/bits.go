package ebtree

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Unsigned is the set of key types the generic scalar front-ends
// operate on directly. u32.go/u64.go/ptr.go only ever instantiate it
// with uint32, uint64, and uintptr respectively, which replaces the
// upstream C library's compile-time dispatch between its 32-bit and
// 64-bit implementations, but the algorithm itself has no dependency
// on word width so it's expressed against the full constraint.
type Unsigned interface {
	constraints.Unsigned
}

// fls returns 1+floor(log2(x)), the 1-based index of the highest set
// bit of x. It is undefined for x == 0; callers only ever invoke it on
// the XOR of two unequal keys, which is guaranteed non-zero.
func fls[U Unsigned](x U) int {
	return bits.Len64(uint64(x))
}

// fls64 is fls specialized for a plain uint64, used by the 128-bit
// front-end where halves don't satisfy the Unsigned constraint set as
// a pair.
func fls64(x uint64) int {
	return bits.Len64(x)
}

// fls128 implements spec.md §9's "fls on 128-bit": consult the high
// half first, and only fall back to the low half if the high half is
// zero. Undefined if hi == 0 && lo == 0.
func fls128(hi, lo uint64) int {
	if hi != 0 {
		return fls64(hi) + 64
	}
	return fls64(lo)
}

// equalBits counts the number of leading identical bits between a and
// b, starting the comparison at bit offset ignore, up to bit len. It
// may overshoot len by a few bits when the difference is only found
// after a byte boundary past len, exactly as ebtree.c's equal_bits
// documents.
func equalBits(a, b []byte, ignore, length int) int {
	pos := ignore >> 3
	ignore = pos << 3
	for ignore < length {
		c := a[pos] ^ b[pos]
		pos++
		ignore += 8
		if c != 0 {
			ignore -= flsnz8(c)
			break
		}
	}
	return ignore
}

// checkBits reports whether a and b agree on the first len bits,
// optionally skipping skip bytes already known to match. It returns 0
// when they match and non-zero otherwise.
func checkBits(a, b []byte, skip, length int) int {
	bitOfs := ^length + (skip << 3) + 9
	ret := int(a[skip] ^ b[skip])
	if bitOfs >= 0 {
		return ret >> uint(bitOfs)
	}
	for {
		skip++
		if ret != 0 {
			return ret
		}
		ret = int(a[skip] ^ b[skip])
		bitOfs += 8
		if bitOfs >= 0 {
			return ret >> uint(bitOfs)
		}
	}
}

// stringEqualBits is equalBits specialized for NUL-terminated byte
// strings: it stops at the first NUL on either side instead of a
// fixed length, reporting equal strings as a negative bit count.
func stringEqualBits(a, b []byte, ignore int) int {
	beg := ignore >> 3
	for {
		c := a[beg]
		d := b[beg]
		beg++
		c ^= d
		if c != 0 {
			return (beg << 3) - flsnz8(c)
		}
		if d == 0 {
			return -1
		}
	}
}

// cmpBits returns -1, 0 or 1 depending on how the bit of a at pos
// compares to the bit of b at pos.
func cmpBits(a, b []byte, pos uint) int {
	ofs := pos >> 3
	shift := (^pos) & 7
	bitA := (a[ofs] >> shift) & 1
	bitB := (b[ofs] >> shift) & 1
	if bitA == bitB {
		return 0
	}
	if bitA < bitB {
		return -1
	}
	return 1
}

// getBit returns the bit of a at absolute bit position pos, counting
// from the most significant bit of byte 0.
func getBit(a []byte, pos uint) uint8 {
	ofs := pos >> 3
	shift := (^pos) & 7
	return (a[ofs] >> shift) & 1
}

// flsnz8 is fls restricted to a single non-zero byte.
func flsnz8(c byte) int {
	return bits.Len8(c)
}
