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
	"log/slog"

	"github.com/paulmach/protoscan"
)

// Feature message field numbers.
const (
	featureID       = 1
	featureTags     = 2
	featureType     = 3
	featureGeometry = 4
)

// GeomType enumerates the geometry kinds a feature can declare.
type GeomType uint32

// Geometry kinds. GeomTypeUnknown features still carry a decodable command
// stream; whether the result is meaningful is up to the caller.
const (
	GeomTypeUnknown GeomType = iota
	GeomTypePoint
	GeomTypeLineString
	GeomTypePolygon
)

func (t GeomType) String() string {
	switch t {
	case GeomTypePoint:
		return "Point"
	case GeomTypeLineString:
		return "LineString"
	case GeomTypePolygon:
		return "Polygon"
	case GeomTypeUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("GeomType(%d)", uint32(t))
	}
}

// WarningSink receives advisory notes for conditions that do not fail an
// operation, such as a feature matching a key name that maps to several
// dictionary indices. A nil sink discards warnings.
type WarningSink func(msg string)

// SlogWarnings returns a WarningSink that records warnings on logger at warn
// level. A nil logger uses slog.Default.
func SlogWarnings(logger *slog.Logger) WarningSink {
	if logger == nil {
		logger = slog.Default()
	}

	return func(msg string) {
		logger.Warn(msg)
	}
}

// Feature is one geometric entity of a layer: an optional id, a geometry
// type, a packed tag-index stream referencing the layer's dictionaries, and a
// packed geometry command stream. It borrows its Layer and must not be
// retained past it.
type Feature struct {
	layer *Layer

	id    uint64
	hasID bool

	geomType GeomType
	tags     []uint32
	geometry []uint32
}

// parseFeature scans one feature view. Every field is optional; a feature
// with no tags or geometry is legal and decodes to an empty property set and
// empty geometry. Unknown fields are skipped. The packed integer streams are
// unpacked into owned slices here, but dictionary resolution is deferred to
// Value and Properties so it always sees the layer's complete dictionaries.
func parseFeature(view []byte, layer *Layer) (*Feature, error) {
	feature := &Feature{layer: layer}

	msg := protoscan.New(view)
	for msg.Next() {
		switch msg.FieldNumber() {
		case featureID:
			id, err := msg.Uint64()
			if err != nil {
				return nil, scanError("feature id", err)
			}

			feature.id = id
			feature.hasID = true
		case featureTags:
			tags, err := unpackUint32(msg, feature.tags)
			if err != nil {
				return nil, scanError("feature tags", err)
			}

			feature.tags = tags
		case featureType:
			t, err := msg.Uint32()
			if err != nil {
				return nil, scanError("feature type", err)
			}

			feature.geomType = GeomType(t)
		case featureGeometry:
			geom, err := unpackUint32(msg, feature.geometry)
			if err != nil {
				return nil, scanError("feature geometry", err)
			}

			feature.geometry = geom
		default:
			msg.Skip()
		}
	}

	if err := msg.Err(); err != nil {
		return nil, scanError("feature", err)
	}

	return feature, nil
}

// unpackUint32 appends the current packed varint field to dst. The capacity
// hint comes from counting the varints actually present in the field's view,
// so it is bounded by the input size rather than by anything the producer
// declares.
func unpackUint32(msg *protoscan.Message, dst []uint32) ([]uint32, error) {
	iter, err := msg.Iterator(nil)
	if err != nil {
		return nil, err
	}

	if dst == nil {
		dst = make([]uint32, 0, iter.Count(protoscan.WireTypeVarint))
	}

	for iter.HasNext() {
		v, err := iter.Uint32()
		if err != nil {
			return nil, err
		}

		dst = append(dst, v)
	}

	return dst, nil
}

// ID returns the feature's identifier and whether one was present on the
// wire.
func (f *Feature) ID() (uint64, bool) { return f.id, f.hasID }

// Type returns the feature's declared geometry type.
func (f *Feature) Type() GeomType { return f.geomType }

// Extent returns the owning layer's extent.
func (f *Feature) Extent() uint32 { return f.layer.extent }

// Version returns the owning layer's version.
func (f *Feature) Version() uint32 { return f.layer.version }

// Value looks up the property named key against the owning layer's
// dictionaries and returns its decoded value, or Null when the feature has no
// such property. Only the one matched value payload is decoded; the first
// match in tag-stream order wins. When the layer's key dictionary maps the
// requested name to several indices and a match is found, an advisory is
// emitted through sink. A tag stream with an odd number of integers or a tag
// referencing an index beyond a dictionary fails hard.
func (f *Feature) Value(key string, sink WarningSink) (Value, error) {
	indices := f.layer.keysMap[key]
	if len(indices) == 0 {
		return Null, nil
	}

	keyCount := uint32(len(f.layer.keys))
	valueCount := uint32(len(f.layer.values))

	for i := 0; i < len(f.tags); i += 2 {
		keyIdx := f.tags[i]
		if keyIdx >= keyCount {
			return Null, fmt.Errorf("%w: key %d of %d", ErrOutOfRangeReference, keyIdx, keyCount)
		}

		if i+1 >= len(f.tags) {
			return Null, ErrMalformedTagStream
		}

		valueIdx := f.tags[i+1]
		if valueIdx >= valueCount {
			return Null, fmt.Errorf("%w: value %d of %d", ErrOutOfRangeReference, valueIdx, valueCount)
		}

		for _, want := range indices {
			if keyIdx == uint32(want) {
				if len(indices) > 1 && sink != nil {
					sink(fmt.Sprintf("duplicate keys with different tag ids: %q", key))
				}

				return f.layer.value(int(valueIdx))
			}
		}
	}

	return Null, nil
}

// Properties resolves the feature's whole tag stream against the owning
// layer's dictionaries. Duplicate keys in the stream fold last-write-wins
// into the returned map. The same malformed-stream and out-of-range failures
// apply as for Value.
func (f *Feature) Properties() (map[string]Value, error) {
	properties := make(map[string]Value, len(f.tags)/2)

	for i := 0; i < len(f.tags); i += 2 {
		keyIdx := f.tags[i]
		if keyIdx >= uint32(len(f.layer.keys)) {
			return nil, fmt.Errorf("%w: key %d of %d", ErrOutOfRangeReference, keyIdx, len(f.layer.keys))
		}

		if i+1 >= len(f.tags) {
			return nil, ErrMalformedTagStream
		}

		valueIdx := f.tags[i+1]
		if valueIdx >= uint32(len(f.layer.values)) {
			return nil, fmt.Errorf("%w: value %d of %d", ErrOutOfRangeReference, valueIdx, len(f.layer.values))
		}

		value, err := f.layer.value(int(valueIdx))
		if err != nil {
			return nil, err
		}

		properties[f.layer.keys[keyIdx]] = value
	}

	return properties, nil
}
