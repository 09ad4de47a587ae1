// Package value defines the dynamic values produced by grnbulk decoders and accepted by
// its encoders.
//
// Value is a closed sum type. Every concrete value type lives in this package and
// implements Value through an unexported marker method, so a type switch over a Value
// is exhaustive once it handles each Kind:
//
//	switch v := decoded.(type) {
//	case value.Absent:
//	case value.Int32:
//	    fmt.Println(int32(v))
//	case value.Record:
//	    fmt.Println(v.Table, v.ID)
//	}
//
// Encoders additionally accept plain Go values (string, int, float64, time.Time, ...) and
// two open interfaces: Object for opaque typed handles and Recorder for record
// references.
package value

import (
	"strconv"
	"time"

	"github.com/arloliu/grnbulk/format"
)

// Kind identifies the concrete type of a Value.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindText
	KindInt32
	KindUInt32
	KindInt64
	KindFloat64
	KindTimestamp
	KindRecord
	KindElements
	KindIDs
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "Absent"
	case KindText:
		return "Text"
	case KindInt32:
		return "Int32"
	case KindUInt32:
		return "UInt32"
	case KindInt64:
		return "Int64"
	case KindFloat64:
		return "Float64"
	case KindTimestamp:
		return "Timestamp"
	case KindRecord:
		return "Record"
	case KindElements:
		return "Elements"
	case KindIDs:
		return "IDs"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a decoded dynamic value.
type Value interface {
	Kind() Kind
	sealed()
}

// Object is an opaque typed handle, such as a table or column descriptor.
// It is encoded as its bare object id.
type Object interface {
	ObjectID() format.ID
}

// Recorder is a reference to a record. It is encoded as its bare record id.
type Recorder interface {
	RecordID() format.ID
}

type (
	// Absent is the absence of a value.
	Absent struct{}
	// Text is a byte string. It is not required to be valid UTF-8.
	Text string
	// Int32 is a signed 32-bit integer.
	Int32 int32
	// UInt32 is an unsigned 32-bit integer.
	UInt32 uint32
	// Int64 is a signed 64-bit integer.
	Int64 int64
	// Float64 is an IEEE 754 double.
	Float64 float64
)

// Timestamp is a point in time with microsecond resolution, stored as two int32 fields.
type Timestamp struct {
	Sec  int32
	Usec int32
}

// Record is a reference to the record ID of the table Table.
type Record struct {
	Table format.ID
	ID    format.ID
}

// Element is one decoded vector element.
type Element struct {
	Bytes  []byte
	Weight uint32
}

// Elements is a decoded vector, in storage order.
type Elements []Element

// IDs is a decoded uvector, in storage order.
type IDs []format.ID

func (Absent) Kind() Kind    { return KindAbsent }
func (Text) Kind() Kind      { return KindText }
func (Int32) Kind() Kind     { return KindInt32 }
func (UInt32) Kind() Kind    { return KindUInt32 }
func (Int64) Kind() Kind     { return KindInt64 }
func (Float64) Kind() Kind   { return KindFloat64 }
func (Timestamp) Kind() Kind { return KindTimestamp }
func (Record) Kind() Kind    { return KindRecord }
func (Elements) Kind() Kind  { return KindElements }
func (IDs) Kind() Kind       { return KindIDs }

func (Absent) sealed()    {}
func (Text) sealed()      {}
func (Int32) sealed()     {}
func (UInt32) sealed()    {}
func (Int64) sealed()     {}
func (Float64) sealed()   {}
func (Timestamp) sealed() {}
func (Record) sealed()    {}
func (Elements) sealed()  {}
func (IDs) sealed()       {}

// NewTimestamp converts t to whole seconds and the microsecond remainder.
//
// The second count is truncated to int32; callers that need range checking should use
// TimestampFromTime.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{
		Sec:  int32(t.Unix()),              //nolint:gosec
		Usec: int32(t.Nanosecond() / 1000), //nolint:gosec
	}
}

// TimestampFromTime converts t like NewTimestamp and reports whether the second count
// fits in an int32.
func TimestampFromTime(t time.Time) (Timestamp, bool) {
	sec := t.Unix()
	if sec < minInt32 || sec > maxInt32 {
		return Timestamp{}, false
	}

	return NewTimestamp(t), true
}

// Time returns the timestamp as a UTC time.Time.
func (ts Timestamp) Time() time.Time {
	return time.Unix(int64(ts.Sec), int64(ts.Usec)*1000).UTC()
}

// RecordID implements Recorder.
func (r Record) RecordID() format.ID {
	return r.ID
}

// IsAbsent reports whether v is nil or Absent.
func IsAbsent(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Absent)

	return ok
}

const (
	minInt32 = -1 << 31
	maxInt32 = 1<<31 - 1
)
