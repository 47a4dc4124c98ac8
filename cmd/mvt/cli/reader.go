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

// Package cli holds shared helpers for the mvt command.
package cli

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// ReadTile reads a whole tile from r, transparently decompressing it. Tiles
// at rest are usually gzip compressed (the MBTiles convention), sometimes
// zlib or zstd; the codec is sniffed from the leading magic bytes and plain
// protobuf passes through untouched.
func ReadTile(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var factory func(io.Reader) (io.Reader, error)

	switch {
	case len(raw) >= 2 && raw[0] == 0x1f && raw[1] == 0x8b:
		factory = func(r io.Reader) (io.Reader, error) {
			return gzip.NewReader(r)
		}
	case len(raw) >= 4 && raw[0] == 0x28 && raw[1] == 0xb5 && raw[2] == 0x2f && raw[3] == 0xfd:
		factory = func(r io.Reader) (io.Reader, error) {
			return zstd.NewReader(r)
		}
	case len(raw) >= 2 && raw[0] == 0x78 && (raw[1] == 0x01 || raw[1] == 0x9c || raw[1] == 0xda):
		factory = func(r io.Reader) (io.Reader, error) {
			return zlib.NewReader(r)
		}
	default:
		return raw, nil
	}

	rdr, err := factory(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	return io.ReadAll(rdr)
}
