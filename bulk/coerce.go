package bulk

import (
	"math"

	"github.com/arloliu/grnbulk/format"
	"github.com/arloliu/grnbulk/value"
)

// coerceToInt64 converts any built-in Go integer to int64.
// It fails for non-integers and for uint64 values above math.MaxInt64.
func coerceToInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) <= math.MaxInt64 {
			return int64(n), true
		}
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n <= math.MaxInt64 {
			return int64(n), true
		}
	}

	return 0, false
}

// coerceToID converts an identifier-like value to a record id.
//
// Accepted: integers in [0, MaxUint32], integral floats in that range, value.Int32,
// value.UInt32 and value.Int64 in range, value.Recorder and value.Object.
func coerceToID(v any) (format.ID, bool) {
	switch n := v.(type) {
	case format.ID:
		return n, true
	case value.UInt32:
		return format.ID(n), true
	case value.Int32:
		return coerceToID(int32(n))
	case value.Int64:
		return coerceToID(int64(n))
	case value.Float64:
		return coerceToID(float64(n))
	case float64:
		if n >= 0 && n <= math.MaxUint32 && n == math.Trunc(n) {
			return format.ID(n), true
		}
	case float32:
		return coerceToID(float64(n))
	case value.Object:
		return n.ObjectID(), true
	case value.Recorder:
		return n.RecordID(), true
	default:
		if i, ok := coerceToInt64(v); ok && i >= 0 && i <= math.MaxUint32 {
			return format.ID(i), true
		}
	}

	return format.NilID, false
}
