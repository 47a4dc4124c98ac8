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

	"github.com/paulmach/orb"
)

// ErrUntypedGeometry is returned by Feature.Geometry for features of unknown
// geometry type; their command stream decodes, but it has no orb shape.
var ErrUntypedGeometry = errors.New("unknown geometry type has no orb representation")

// Geometry decodes the feature's command stream and shapes it as an
// orb.Geometry according to the feature's declared type: Point or MultiPoint,
// LineString or MultiLineString, or a Polygon of the decoded rings. Ring
// winding is taken as encoded; this adapter does not classify interior rings
// into separate polygons.
func (f *Feature) Geometry(scale float32) (orb.Geometry, error) {
	paths, err := DecodeGeometry[int32](f, scale)
	if err != nil {
		return nil, err
	}

	switch f.geomType {
	case GeomTypePoint:
		points := make(orb.MultiPoint, 0, len(paths))
		for _, path := range paths {
			for _, p := range path {
				points = append(points, orbPoint(p))
			}
		}

		if len(points) == 1 {
			return points[0], nil
		}

		return points, nil
	case GeomTypeLineString:
		lines := make(orb.MultiLineString, 0, len(paths))
		for _, path := range paths {
			lines = append(lines, orbLine(path))
		}

		if len(lines) == 1 {
			return lines[0], nil
		}

		return lines, nil
	case GeomTypePolygon:
		polygon := make(orb.Polygon, 0, len(paths))
		for _, path := range paths {
			polygon = append(polygon, orb.Ring(orbLine(path)))
		}

		return polygon, nil
	default:
		return nil, ErrUntypedGeometry
	}
}

func orbPoint(p Point[int32]) orb.Point {
	return orb.Point{float64(p.X), float64(p.Y)}
}

func orbLine(path []Point[int32]) orb.LineString {
	line := make(orb.LineString, 0, len(path))
	for _, p := range path {
		line = append(line, orbPoint(p))
	}

	return line
}
