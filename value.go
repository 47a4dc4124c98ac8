// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mvt

import (
	"fmt"
	"strconv"

	"github.com/paulmach/protoscan"
)

// ValueType enumerates the kinds a property Value can hold.
type ValueType uint8

// Value kinds. Wire-level float values are promoted to DoubleValue on decode;
// the format stores single and double precision separately but the decoded
// representation is unified.
const (
	NullValue ValueType = iota
	StringValue
	DoubleValue
	IntValue
	UintValue
	BoolValue
)

// Value message field numbers.
const (
	valueString = 1
	valueFloat  = 2
	valueDouble = 3
	valueInt    = 4
	valueUint   = 5
	valueSint   = 6
	valueBool   = 7
)

// Value is one decoded entry of a layer's value dictionary: a closed variant
// over string, double, int64, uint64, bool and null. Immutable once
// constructed.
type Value struct {
	typ ValueType
	s   string
	d   float64
	i   int64
	u   uint64
	b   bool
}

// Null is the Value returned for properties that are not present.
var Null = Value{}

// Type returns the kind held by the value.
func (v Value) Type() ValueType { return v.typ }

// IsNull reports whether the value is the null value.
func (v Value) IsNull() bool { return v.typ == NullValue }

// StringValue returns the held string; it is the zero string unless Type is
// StringValue.
func (v Value) StringValue() string { return v.s }

// DoubleValue returns the held double; it is zero unless Type is DoubleValue.
func (v Value) DoubleValue() float64 { return v.d }

// IntValue returns the held signed integer; it is zero unless Type is
// IntValue.
func (v Value) IntValue() int64 { return v.i }

// UintValue returns the held unsigned integer; it is zero unless Type is
// UintValue.
func (v Value) UintValue() uint64 { return v.u }

// BoolValue returns the held boolean; it is false unless Type is BoolValue.
func (v Value) BoolValue() bool { return v.b }

// Interface returns the held value boxed as the matching Go type, or nil for
// the null value.
func (v Value) Interface() interface{} {
	switch v.typ {
	case StringValue:
		return v.s
	case DoubleValue:
		return v.d
	case IntValue:
		return v.i
	case UintValue:
		return v.u
	case BoolValue:
		return v.b
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.typ {
	case StringValue:
		return strconv.Quote(v.s)
	case DoubleValue:
		return strconv.FormatFloat(v.d, 'g', -1, 64)
	case IntValue:
		return strconv.FormatInt(v.i, 10)
	case UintValue:
		return strconv.FormatUint(v.u, 10)
	case BoolValue:
		return strconv.FormatBool(v.b)
	default:
		return "null"
	}
}

// decodeValue parses one value dictionary entry. The value message is a oneof
// over the seven scalar kinds; when several kinds are present the last field
// observed wins, the usual scalar overwrite semantics applied across the
// variant. A message with no recognized field decodes as Null.
func decodeValue(data []byte) (Value, error) {
	var v Value

	msg := protoscan.New(data)
	for msg.Next() {
		switch msg.FieldNumber() {
		case valueString:
			s, err := msg.String()
			if err != nil {
				return Null, scanError("value string", err)
			}

			v = Value{typ: StringValue, s: s}
		case valueFloat:
			f, err := msg.Float()
			if err != nil {
				return Null, scanError("value float", err)
			}

			v = Value{typ: DoubleValue, d: float64(f)}
		case valueDouble:
			d, err := msg.Double()
			if err != nil {
				return Null, scanError("value double", err)
			}

			v = Value{typ: DoubleValue, d: d}
		case valueInt:
			i, err := msg.Int64()
			if err != nil {
				return Null, scanError("value int", err)
			}

			v = Value{typ: IntValue, i: i}
		case valueUint:
			u, err := msg.Uint64()
			if err != nil {
				return Null, scanError("value uint", err)
			}

			v = Value{typ: UintValue, u: u}
		case valueSint:
			i, err := msg.Sint64()
			if err != nil {
				return Null, scanError("value sint", err)
			}

			v = Value{typ: IntValue, i: i}
		case valueBool:
			b, err := msg.Bool()
			if err != nil {
				return Null, scanError("value bool", err)
			}

			v = Value{typ: BoolValue, b: b}
		default:
			msg.Skip()
		}
	}

	if err := msg.Err(); err != nil {
		return Null, scanError("value message", err)
	}

	return v, nil
}

func (t ValueType) String() string {
	switch t {
	case NullValue:
		return "null"
	case StringValue:
		return "string"
	case DoubleValue:
		return "double"
	case IntValue:
		return "int"
	case UintValue:
		return "uint"
	case BoolValue:
		return "bool"
	default:
		return fmt.Sprintf("ValueType(%d)", uint8(t))
	}
}
