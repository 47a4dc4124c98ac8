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
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Wire fixture builders. Tiles are synthesized field by field with protowire
// so tests control exactly what lands on the wire, including malformed
// shapes no well-behaved encoder would produce.

func buildTile(layers ...[]byte) []byte {
	var b []byte
	for _, layer := range layers {
		b = protowire.AppendTag(b, tileLayers, protowire.BytesType)
		b = protowire.AppendBytes(b, layer)
	}

	return b
}

type layerBuilder struct {
	b []byte
}

func newLayer() *layerBuilder { return &layerBuilder{} }

// stdLayer returns a builder with the required field trio already set.
func stdLayer(name string) *layerBuilder {
	return newLayer().name(name).version(2).extent(4096)
}

func (l *layerBuilder) name(s string) *layerBuilder {
	l.b = protowire.AppendTag(l.b, layerName, protowire.BytesType)
	l.b = protowire.AppendString(l.b, s)

	return l
}

func (l *layerBuilder) version(v uint64) *layerBuilder {
	l.b = protowire.AppendTag(l.b, layerVersion, protowire.VarintType)
	l.b = protowire.AppendVarint(l.b, v)

	return l
}

func (l *layerBuilder) extent(v uint64) *layerBuilder {
	l.b = protowire.AppendTag(l.b, layerExtent, protowire.VarintType)
	l.b = protowire.AppendVarint(l.b, v)

	return l
}

func (l *layerBuilder) key(s string) *layerBuilder {
	l.b = protowire.AppendTag(l.b, layerKeys, protowire.BytesType)
	l.b = protowire.AppendString(l.b, s)

	return l
}

func (l *layerBuilder) value(v []byte) *layerBuilder {
	l.b = protowire.AppendTag(l.b, layerValues, protowire.BytesType)
	l.b = protowire.AppendBytes(l.b, v)

	return l
}

func (l *layerBuilder) feature(f []byte) *layerBuilder {
	l.b = protowire.AppendTag(l.b, layerFeatures, protowire.BytesType)
	l.b = protowire.AppendBytes(l.b, f)

	return l
}

func (l *layerBuilder) unknown(num protowire.Number, v uint64) *layerBuilder {
	l.b = protowire.AppendTag(l.b, num, protowire.VarintType)
	l.b = protowire.AppendVarint(l.b, v)

	return l
}

func (l *layerBuilder) bytes() []byte { return l.b }

type featureBuilder struct {
	b []byte
}

func newFeature() *featureBuilder { return &featureBuilder{} }

func (f *featureBuilder) id(v uint64) *featureBuilder {
	f.b = protowire.AppendTag(f.b, featureID, protowire.VarintType)
	f.b = protowire.AppendVarint(f.b, v)

	return f
}

func (f *featureBuilder) geomType(t GeomType) *featureBuilder {
	f.b = protowire.AppendTag(f.b, featureType, protowire.VarintType)
	f.b = protowire.AppendVarint(f.b, uint64(t))

	return f
}

func (f *featureBuilder) tags(vs ...uint32) *featureBuilder {
	f.b = appendPacked(f.b, featureTags, vs)

	return f
}

func (f *featureBuilder) geometry(vs ...uint32) *featureBuilder {
	f.b = appendPacked(f.b, featureGeometry, vs)

	return f
}

func (f *featureBuilder) bytes() []byte { return f.b }

func appendPacked(b []byte, num protowire.Number, vs []uint32) []byte {
	var packed []byte
	for _, v := range vs {
		packed = protowire.AppendVarint(packed, uint64(v))
	}

	b = protowire.AppendTag(b, num, protowire.BytesType)

	return protowire.AppendBytes(b, packed)
}

// Value message encoders, one per oneof arm.

func stringValue(s string) []byte {
	b := protowire.AppendTag(nil, valueString, protowire.BytesType)

	return protowire.AppendString(b, s)
}

func floatValue(f float32) []byte {
	b := protowire.AppendTag(nil, valueFloat, protowire.Fixed32Type)

	return protowire.AppendFixed32(b, math.Float32bits(f))
}

func doubleValue(f float64) []byte {
	b := protowire.AppendTag(nil, valueDouble, protowire.Fixed64Type)

	return protowire.AppendFixed64(b, math.Float64bits(f))
}

func intValue(i int64) []byte {
	b := protowire.AppendTag(nil, valueInt, protowire.VarintType)

	return protowire.AppendVarint(b, uint64(i))
}

func uintValue(u uint64) []byte {
	b := protowire.AppendTag(nil, valueUint, protowire.VarintType)

	return protowire.AppendVarint(b, u)
}

func sintValue(i int64) []byte {
	b := protowire.AppendTag(nil, valueSint, protowire.VarintType)

	return protowire.AppendVarint(b, protowire.EncodeZigZag(i))
}

func boolValue(v bool) []byte {
	b := protowire.AppendTag(nil, valueBool, protowire.VarintType)

	u := uint64(0)
	if v {
		u = 1
	}

	return protowire.AppendVarint(b, u)
}

// Geometry stream helpers.

func command(id, count uint32) uint32 { return id | count<<cmdBits }

func zigzag(v int32) uint32 { return uint32(v)<<1 ^ uint32(v>>31) }
