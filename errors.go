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
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLayerNotFound is returned by Tile.Layer for a name the tile does
	// not contain.
	ErrLayerNotFound = errors.New("layer not found")

	// ErrFeatureNotFound is returned by Layer.Feature for an index outside
	// the layer's feature list.
	ErrFeatureNotFound = errors.New("feature index out of range")

	// ErrMissingField is the target for errors.Is when a layer lacks one of
	// its required fields; the concrete error is a *MissingFieldsError.
	ErrMissingField = errors.New("missing required field")

	// ErrMalformedTagStream indicates a feature tag stream with an odd
	// number of integers, leaving a key index without a value index.
	ErrMalformedTagStream = errors.New("uneven number of feature tag ids")

	// ErrOutOfRangeReference indicates a feature tag referencing a key or
	// value dictionary index beyond the dictionary's bounds.
	ErrOutOfRangeReference = errors.New("feature referenced out of range dictionary index")

	// ErrUnknownCommand indicates a geometry command id outside MoveTo,
	// LineTo and ClosePath.
	ErrUnknownCommand = errors.New("unknown geometry command")

	// ErrCoordinateOutOfRange indicates a scaled coordinate that does not
	// fit the requested coordinate type. Clamping would silently corrupt
	// geometry, so this is fatal for the feature's geometry.
	ErrCoordinateOutOfRange = errors.New("coordinate outside valid range of coordinate type")

	// ErrTruncatedGeometry indicates a geometry command stream that ends in
	// the middle of a (dx, dy) parameter pair.
	ErrTruncatedGeometry = errors.New("geometry stream truncated mid parameter pair")
)

// MissingFieldsError reports every required layer field absent from the wire:
// some combination of "version", "extent" and "name". It matches
// ErrMissingField with errors.Is.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required field: %s", strings.Join(e.Fields, ", "))
}

// Is reports whether this error matches ErrMissingField.
func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingField
}

// scanError wraps a failure from the underlying protobuf field scanner so the
// caller can tell a structural wire error apart from the decoder's own
// taxonomy.
func scanError(what string, err error) error {
	return fmt.Errorf("scanning %s: %w", what, err)
}
