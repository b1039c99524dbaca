package ebtree

// Three-way comparators for every key variant, returning -1, 0, or +1.
//
// The upstream C source's comparator returns "(a >= b) ? (a >= b) : -1",
// which collapses to always 0 or 1 and never distinguishes greater-than
// from equal — an evident bug (spec.md's Open Questions). These
// functions are a clean standard three-way comparison instead of a
// faithful port of that expression.

// CompareU32 compares two unsigned 32-bit keys.
func CompareU32(a, b uint32) int { return compareUnsigned(a, b) }

// CompareU64 compares two unsigned 64-bit keys.
func CompareU64(a, b uint64) int { return compareUnsigned(a, b) }

// ComparePtr compares two pointer keys.
func ComparePtr(a, b uintptr) int { return compareUnsigned(a, b) }

func compareUnsigned[K Unsigned](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CompareI32 compares two signed 32-bit keys.
func CompareI32(a, b int32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CompareI64 compares two signed 64-bit keys.
func CompareI64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CompareU128 compares two unsigned 128-bit keys.
func CompareU128(a, b U128) int { return compare128(a, b) }

// CompareI128 compares two signed 128-bit keys.
func CompareI128(a, b I128) int { return compareI128(a, b) }

// CompareMB compares two fixed-length multi-byte keys lexicographically.
func CompareMB(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// CompareStr compares two NUL-terminated string keys lexicographically
// up to (and not including) their terminators.
func CompareStr(a, b []byte) int {
	i := 0
	for {
		ca, cb := a[i], b[i]
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
		if ca == 0 {
			return 0
		}
		i++
	}
}
