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

// Package mvt decodes Mapbox Vector Tiles.
//
// A vector tile is a protobuf-encoded payload holding named layers of
// geographic features with typed properties and delta-encoded, command-driven
// geometries. Decoding is deliberately lazy: Parse splits the tile into raw
// per-layer byte views without touching their contents, Tile.Layer parses one
// layer's dictionaries and feature index, and property values and geometries
// are only decoded when a caller asks for them. Views reference the original
// buffer, so the byte slice handed to Parse must not be mutated while any
// Tile, Layer, or Feature derived from it is in use.
//
// All entities are immutable after construction and safe for concurrent
// reads. Decoding hostile input is safe: dictionary references are bounds
// checked and attacker-declared geometry counts are never trusted as
// allocation sizes.
package mvt
