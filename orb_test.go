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
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestOrbPoint(t *testing.T) {
	feature := geomFeature(t, GeomTypePoint,
		command(cmdMoveTo, 1), zigzag(10), zigzag(10))

	g, err := feature.Geometry(1.0)
	assert.NoError(t, err)
	assert.Equal(t, orb.Point{10, 10}, g)
}

func TestOrbMultiPoint(t *testing.T) {
	feature := geomFeature(t, GeomTypePoint,
		command(cmdMoveTo, 2), zigzag(1), zigzag(1), zigzag(1), zigzag(1))

	g, err := feature.Geometry(1.0)
	assert.NoError(t, err)
	assert.Equal(t, orb.MultiPoint{{1, 1}, {2, 2}}, g)
}

func TestOrbLineString(t *testing.T) {
	feature := geomFeature(t, GeomTypeLineString,
		command(cmdMoveTo, 1), zigzag(2), zigzag(2),
		command(cmdLineTo, 1), zigzag(0), zigzag(5))

	g, err := feature.Geometry(1.0)
	assert.NoError(t, err)
	assert.Equal(t, orb.LineString{{2, 2}, {2, 7}}, g)
}

func TestOrbPolygon(t *testing.T) {
	feature := geomFeature(t, GeomTypePolygon,
		command(cmdMoveTo, 1), zigzag(0), zigzag(0),
		command(cmdLineTo, 2), zigzag(4), zigzag(0), zigzag(0), zigzag(4),
		command(cmdClosePath, 1))

	g, err := feature.Geometry(1.0)
	assert.NoError(t, err)
	assert.Equal(t, orb.Polygon{
		{{0, 0}, {4, 0}, {4, 4}, {0, 0}},
	}, g)
}

func TestOrbUntypedGeometry(t *testing.T) {
	feature := geomFeature(t, GeomTypeUnknown,
		command(cmdMoveTo, 1), zigzag(1), zigzag(1))

	_, err := feature.Geometry(1.0)
	assert.ErrorIs(t, err, ErrUntypedGeometry)
}
