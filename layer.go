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

	"github.com/paulmach/protoscan"
)

// Layer message field numbers.
const (
	layerName     = 1
	layerFeatures = 2
	layerKeys     = 3
	layerValues   = 4
	layerExtent   = 5
	layerVersion  = 15
)

// Layer is a named collection of features sharing one coordinate extent and
// one pair of key/value dictionaries. The key dictionary is parsed eagerly
// (features reference it by index), value entries and feature bodies stay raw
// byte views until asked for.
type Layer struct {
	name    string
	version uint32
	extent  uint32

	keys    []string
	keysMap map[string][]int

	values   [][]byte
	features [][]byte
}

// parseLayer scans the layer's fields in one linear pass. The scalar fields
// name, version and extent fold last-write-wins; each must be present at
// least once or the parse fails with a MissingFieldsError naming all of the
// absent ones. Keys, values and features append in wire order. Unknown
// fields are skipped.
func parseLayer(view []byte) (*Layer, error) {
	layer := &Layer{keysMap: make(map[string][]int)}

	var hasName, hasVersion, hasExtent bool

	msg := protoscan.New(view)
	for msg.Next() {
		switch msg.FieldNumber() {
		case layerName:
			s, err := msg.String()
			if err != nil {
				return nil, scanError("layer name", err)
			}

			layer.name = s
			hasName = true
		case layerFeatures:
			v, err := msg.MessageData()
			if err != nil {
				return nil, scanError("layer feature", err)
			}

			layer.features = append(layer.features, v)
		case layerKeys:
			s, err := msg.String()
			if err != nil {
				return nil, scanError("layer key", err)
			}

			// The format does not forbid duplicate key strings, so
			// one name may own several dictionary indices.
			layer.keysMap[s] = append(layer.keysMap[s], len(layer.keys))
			layer.keys = append(layer.keys, s)
		case layerValues:
			v, err := msg.MessageData()
			if err != nil {
				return nil, scanError("layer value", err)
			}

			layer.values = append(layer.values, v)
		case layerExtent:
			u, err := msg.Uint32()
			if err != nil {
				return nil, scanError("layer extent", err)
			}

			layer.extent = u
			hasExtent = true
		case layerVersion:
			u, err := msg.Uint32()
			if err != nil {
				return nil, scanError("layer version", err)
			}

			layer.version = u
			hasVersion = true
		default:
			msg.Skip()
		}
	}

	if err := msg.Err(); err != nil {
		return nil, scanError("layer", err)
	}

	if !hasVersion || !hasExtent || !hasName {
		missing := make([]string, 0, 3)
		if !hasVersion {
			missing = append(missing, "version")
		}

		if !hasExtent {
			missing = append(missing, "extent")
		}

		if !hasName {
			missing = append(missing, "name")
		}

		return nil, &MissingFieldsError{Fields: missing}
	}

	return layer, nil
}

// Name returns the layer name.
func (l *Layer) Name() string { return l.name }

// Version returns the layer's declared format version.
func (l *Layer) Version() uint32 { return l.version }

// Extent returns the integer coordinate space the layer's geometries are
// expressed in, typically 4096.
func (l *Layer) Extent() uint32 { return l.extent }

// Keys returns the layer's key dictionary in wire order. The slice is a copy.
func (l *Layer) Keys() []string {
	keys := make([]string, len(l.keys))
	copy(keys, l.keys)

	return keys
}

// FeatureCount returns the number of features in the layer.
func (l *Layer) FeatureCount() int { return len(l.features) }

// Feature parses the i-th feature's view into a Feature bound to this layer.
// A malformed feature only fails this call, sibling features stay usable.
func (l *Layer) Feature(i int) (*Feature, error) {
	if i < 0 || i >= len(l.features) {
		return nil, fmt.Errorf("%w: %d of %d", ErrFeatureNotFound, i, len(l.features))
	}

	return parseFeature(l.features[i], l)
}

// value decodes the i-th value dictionary entry.
func (l *Layer) value(i int) (Value, error) {
	return decodeValue(l.values[i])
}
