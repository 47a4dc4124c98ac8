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
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// Geometry command encoding: each command integer packs an id in its low
// three bits and a repeat count in the rest.
const (
	cmdMoveTo    = 1
	cmdLineTo    = 2
	cmdClosePath = 7

	cmdBits = 3
	cmdMask = (1 << cmdBits) - 1
)

// DefaultMaxReserve caps how many points or paths a command's declared repeat
// count may pre-allocate. The count comes straight off the wire, so it is
// only ever treated as a hint; at 16 bytes per point the default keeps the
// worst case reservation around 1 MiB. Streams longer than the hint still
// decode fully, growth past the cap just happens append by append.
const DefaultMaxReserve = 1 << 16

// Point is one decoded coordinate pair in the target integer space.
type Point[T constraints.Signed] struct {
	X, Y T
}

// Geometry is a decoded command stream: a list of paths, each a list of
// points. For point features each path is typically a single point; for lines
// each path is a linestring; for polygons each path is a closed ring.
type Geometry[T constraints.Signed] [][]Point[T]

// geometryOptions carries optional configuration for geometry decoding.
type geometryOptions struct {
	maxReserve int
}

// GeometryOption configures how a geometry stream is decoded.
type GeometryOption func(*geometryOptions)

// WithMaxReserve overrides the cap applied to wire-declared repeat counts
// before they are used as allocation hints.
func WithMaxReserve(n int) GeometryOption {
	return func(o *geometryOptions) {
		o.maxReserve = n
	}
}

// Geometries decodes the feature's geometry into int32 coordinate paths.
// It is shorthand for DecodeGeometry[int32].
func (f *Feature) Geometries(scale float32, opts ...GeometryOption) (Geometry[int32], error) {
	return DecodeGeometry[int32](f, scale, opts...)
}

// DecodeGeometry interprets the feature's packed command stream into
// coordinate paths of type T. Every decoded point is transformed by scale and
// rounded; a point that does not fit T fails with ErrCoordinateOutOfRange
// rather than clamping. Delta accumulation runs across the whole feature, not
// per path. On any error no partial result is returned.
//
// A feature of unknown geometry type runs the same interpreter; the caller
// decides whether the result means anything.
func DecodeGeometry[T constraints.Signed](f *Feature, scale float32, opts ...GeometryOption) (Geometry[T], error) {
	cfg := geometryOptions{maxReserve: DefaultMaxReserve}
	for _, opt := range opts {
		opt(&cfg)
	}

	lo, hi := coordRange[T]()

	d := &geomDecoder[T]{
		stream:     f.geometry,
		scale:      float64(scale),
		lo:         lo,
		hi:         hi,
		pointType:  f.geomType == GeomTypePoint,
		maxReserve: cfg.maxReserve,
	}

	switch f.geomType {
	case GeomTypeLineString:
		d.extra = 1
	case GeomTypePolygon:
		d.extra = 2
	}

	return d.decode()
}

// geomDecoder is the command interpreter's state for one forward pass over a
// feature's stream: the cursor, the running absolute position, the paths
// built so far, and the first-point flag driving lazy capacity reservation.
// The running position is 64-bit so accumulating many deltas cannot overflow.
type geomDecoder[T constraints.Signed] struct {
	stream []uint32
	pos    int

	x, y  int64
	scale float64

	lo, hi float64

	pointType  bool
	extra      int
	maxReserve int

	paths Geometry[T]
	first bool
}

func (d *geomDecoder[T]) decode() (Geometry[T], error) {
	if len(d.stream) == 0 {
		return Geometry[T]{}, nil
	}

	d.paths = append(d.paths, []Point[T]{})
	d.first = true

	for d.pos < len(d.stream) {
		cmdInt := d.stream[d.pos]
		d.pos++

		cmd := cmdInt & cmdMask
		count := cmdInt >> cmdBits

		switch cmd {
		case cmdMoveTo, cmdLineTo:
			if err := d.segment(cmd, count); err != nil {
				return nil, err
			}
		case cmdClosePath:
			// Encoders emit ClosePath with a count of one; a zero
			// count is a no-op. Larger counts would only stack
			// copies of the ring's first point, so the close is
			// applied once.
			if count > 0 {
				d.closePath()
			}
		default:
			return nil, fmt.Errorf("%w: %d", ErrUnknownCommand, cmd)
		}
	}

	// Drop capacity over-reserved from the (capped) wire hints.
	for i, path := range d.paths {
		d.paths[i] = slices.Clip(path)
	}

	return slices.Clip(d.paths), nil
}

// segment runs one MoveTo or LineTo command: count repetitions of a zigzag
// (dx, dy) pair each. A stream ending cleanly before count is satisfied just
// ends the geometry; ending between dx and dy is an error.
func (d *geomDecoder[T]) segment(cmd uint32, count uint32) error {
	if count == 0 {
		return nil
	}

	hint := int(count)
	if hint > d.maxReserve {
		hint = d.maxReserve
	}

	if d.first {
		if d.pointType && cmd == cmdMoveTo {
			// Each repetition will start its own single-point path.
			d.paths = slices.Grow(d.paths, hint)
			d.first = false
		}

		if !d.pointType && cmd == cmdLineTo {
			cur := len(d.paths) - 1
			d.paths[cur] = slices.Grow(d.paths[cur], hint+d.extra)
			d.first = false
		}
	}

	for ; count > 0; count-- {
		switch remaining := len(d.stream) - d.pos; {
		case remaining == 0:
			return nil
		case remaining == 1:
			return ErrTruncatedGeometry
		}

		if cmd == cmdMoveTo && len(d.paths[len(d.paths)-1]) > 0 {
			d.paths = append(d.paths, []Point[T]{})
			if !d.pointType {
				d.first = true
			}
		}

		d.x += unzigzag(d.stream[d.pos])
		d.y += unzigzag(d.stream[d.pos+1])
		d.pos += 2

		px := math.Round(float64(d.x) * d.scale)
		py := math.Round(float64(d.y) * d.scale)

		if px < d.lo || px > d.hi || py < d.lo || py > d.hi {
			return fmt.Errorf("%w: (%g, %g)", ErrCoordinateOutOfRange, px, py)
		}

		cur := len(d.paths) - 1
		d.paths[cur] = append(d.paths[cur], Point[T]{X: T(px), Y: T(py)})
	}

	return nil
}

// closePath appends a copy of the current path's first point. Closing an
// empty path is a no-op, never a fabricated point.
func (d *geomDecoder[T]) closePath() {
	cur := len(d.paths) - 1
	if path := d.paths[cur]; len(path) > 0 {
		d.paths[cur] = append(path, path[0])
	}
}

// unzigzag decodes one zigzag-encoded delta.
func unzigzag(v uint32) int64 {
	return int64(int32(v>>1) ^ -int32(v&1))
}

// coordRange returns the representable range of T as floats, for range
// checking scaled coordinates before conversion.
func coordRange[T constraints.Signed]() (lo, hi float64) {
	bits := 0
	for v := T(1); v > 0; v <<= 1 {
		bits++
	}

	return -math.Ldexp(1, bits), math.Ldexp(1, bits) - 1
}
