package cmd

import (
	"encoding/binary"
	"fmt"
	"strconv"
)

// mbKeyLen is the fixed key width used for the "mb" demo variant. It
// has no significance beyond being large enough to hold a short demo
// string; real callers of pkg/ebindex.Index choose their own width.
const mbKeyLen = 16

// keyLenFor returns the fixed byte width ebindex.Index should use for
// variant, and false for "str" (which is variable-length and handled
// by ebindex.StrIndex instead).
func keyLenFor(variant string) (int, bool) {
	switch variant {
	case "u32", "i32":
		return 4, true
	case "u64", "i64":
		return 8, true
	case "u128", "i128":
		return 16, true
	case "mb":
		return mbKeyLen, true
	case "str":
		return 0, false
	default:
		return 0, false
	}
}

// encodeFixedKey turns a CLI key argument into the fixed-width byte
// key a given variant's ebindex.Index expects.
//
// Numeric variants parse arg as a decimal integer and encode it
// big-endian, so byte-lexicographic order (what the multi-byte
// front-end actually compares on) matches numeric order. Signed
// variants additionally flip the sign bit before encoding, the same
// bias pkg/ebtree's own i32.go/i64.go/i128.go apply before descent —
// here it is what makes raw byte comparison agree with signed order
// at all, rather than a descent-time optimization.
func encodeFixedKey(variant string, arg string) ([]byte, error) {
	width, ok := keyLenFor(variant)
	if !ok {
		return nil, fmt.Errorf("variant %q does not use a fixed-width key", variant)
	}

	switch variant {
	case "u32":
		v, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid unsigned key %q: %w", arg, err)
		}
		return encodeUint(v, width), nil
	case "u64":
		v, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid unsigned key %q: %w", arg, err)
		}
		return encodeUint(v, width), nil
	case "u128":
		v, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid unsigned key %q: %w", arg, err)
		}
		return append(encodeUint(0, 8), encodeUint(v, 8)...), nil
	case "i32":
		v, err := strconv.ParseInt(arg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid signed key %q: %w", arg, err)
		}
		biased := uint32(v) ^ (1 << 31)
		return encodeUint(uint64(biased), width), nil
	case "i64":
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid signed key %q: %w", arg, err)
		}
		biased := uint64(v) ^ (1 << 63)
		return encodeUint(biased, width), nil
	case "i128":
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid signed key %q: %w", arg, err)
		}
		hi := uint64(0)
		if v < 0 {
			hi = ^uint64(0)
		}
		hi ^= 1 << 63
		return append(encodeUint(hi, 8), encodeUint(uint64(v), 8)...), nil
	case "mb":
		raw := []byte(arg)
		if len(raw) > width {
			return nil, fmt.Errorf("key %q is longer than the fixed width of %d bytes", arg, width)
		}
		buf := make([]byte, width)
		copy(buf, raw)
		return buf, nil
	default:
		return nil, fmt.Errorf("unsupported key variant %q", variant)
	}
}

// encodeUint renders v as the low width bytes of a big-endian uint64.
func encodeUint(v uint64, width int) []byte {
	full := make([]byte, 8)
	binary.BigEndian.PutUint64(full, v)
	return full[8-width:]
}
