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

// Tile message field numbers.
const (
	tileLayers = 3
)

// Tile is one decoded vector tile, the root of the object graph. It maps
// layer names to raw, unparsed layer byte views into the buffer handed to
// Parse; layer bodies are only parsed by Layer.
type Tile struct {
	names []string
	views map[string][]byte
}

// Parse scans the top-level tile message once, collecting every layer field
// as a raw byte view keyed by the layer's name. Only the name is pre-scanned
// out of each layer; the rest of the layer body stays untouched until
// Tile.Layer is called. A layer without a name field fails the whole parse.
// Unknown top-level fields are skipped.
//
// The returned Tile references data; the slice must not be mutated while the
// Tile or anything derived from it is in use.
func Parse(data []byte) (*Tile, error) {
	tile := &Tile{views: make(map[string][]byte)}

	msg := protoscan.New(data)
	for msg.Next() {
		switch msg.FieldNumber() {
		case tileLayers:
			view, err := msg.MessageData()
			if err != nil {
				return nil, scanError("layer", err)
			}

			name, err := scanLayerName(view)
			if err != nil {
				return nil, err
			}

			if _, seen := tile.views[name]; !seen {
				tile.names = append(tile.names, name)
			}

			// Repeated names fold like repeated scalar fields do:
			// the later view wins, the name keeps its first-seen
			// position in the ordering.
			tile.views[name] = view
		default:
			msg.Skip()
		}
	}

	if err := msg.Err(); err != nil {
		return nil, scanError("tile", err)
	}

	return tile, nil
}

// scanLayerName shallow-scans a layer view for its name field, skipping
// everything else. The last occurrence wins, consistent with protobuf scalar
// field semantics.
func scanLayerName(view []byte) (string, error) {
	var (
		name    string
		hasName bool
	)

	msg := protoscan.New(view)
	for msg.Next() {
		if msg.FieldNumber() != layerName {
			msg.Skip()
			continue
		}

		s, err := msg.String()
		if err != nil {
			return "", scanError("layer name", err)
		}

		name = s
		hasName = true
	}

	if err := msg.Err(); err != nil {
		return "", scanError("layer", err)
	}

	if !hasName {
		return "", &MissingFieldsError{Fields: []string{"name"}}
	}

	return name, nil
}

// LayerNames returns the tile's layer names in first-seen scan order.
func (t *Tile) LayerNames() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)

	return names
}

// Layer parses the named layer's view into a Layer. Each call re-parses the
// view; the operation is idempotent and side-effect free, so callers that
// read a layer repeatedly should hold on to the result themselves. A
// malformed layer only fails this call, sibling layers stay usable.
func (t *Tile) Layer(name string) (*Layer, error) {
	view, ok := t.views[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLayerNotFound, name)
	}

	return parseLayer(view)
}
