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

package main

import (
	"encoding/json"
	"fmt"
	"log"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"m4o.io/mvt"
	"m4o.io/mvt/cmd/mvt/cli"
)

var (
	jsonfmt  bool
	extended bool
)

type layerInfo struct {
	Name         string
	Version      uint32
	Extent       uint32
	FeatureCount int
	KeyCount     int

	PointCount      int64 `json:",omitempty"`
	LineStringCount int64 `json:",omitempty"`
	PolygonCount    int64 `json:",omitempty"`
	UnknownCount    int64 `json:",omitempty"`
}

func init() {
	RootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVarP(&jsonfmt, "json", "j", false, "format information in JSON")
	infoCmd.Flags().BoolVarP(&extended, "extended", "e", false, "count features by geometry type (parses every feature)")
}

var infoCmd = &cobra.Command{
	Use:   "info [<tile file>]",
	Short: "Print information about a vector tile",
	Long:  "Print information about a vector tile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		in, err := openInput(args)
		if err != nil {
			log.Fatal(err)
		}
		defer in.Close()

		data, err := cli.ReadTile(in)
		if err != nil {
			log.Fatal(err)
		}

		tile, err := mvt.Parse(data)
		if err != nil {
			log.Fatal(err)
		}

		infos := runInfo(tile)

		if jsonfmt {
			b, err := json.Marshal(infos)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(string(b))
		} else {
			renderTxt(infos, uint64(len(data)))
		}
	},
}

func runInfo(tile *mvt.Tile) []layerInfo {
	var infos []layerInfo

	for _, name := range tile.LayerNames() {
		layer, err := tile.Layer(name)
		if err != nil {
			log.Fatal(err)
		}

		info := layerInfo{
			Name:         layer.Name(),
			Version:      layer.Version(),
			Extent:       layer.Extent(),
			FeatureCount: layer.FeatureCount(),
			KeyCount:     len(layer.Keys()),
		}

		if extended {
			for i := 0; i < layer.FeatureCount(); i++ {
				feature, err := layer.Feature(i)
				if err != nil {
					log.Fatal(err)
				}

				switch feature.Type() {
				case mvt.GeomTypePoint:
					info.PointCount++
				case mvt.GeomTypeLineString:
					info.LineStringCount++
				case mvt.GeomTypePolygon:
					info.PolygonCount++
				default:
					info.UnknownCount++
				}
			}
		}

		infos = append(infos, info)
	}

	return infos
}

func renderTxt(infos []layerInfo, size uint64) {
	fmt.Printf("TileSize: %s\n", humanize.Bytes(size))
	fmt.Printf("Layers: %d\n", len(infos))

	for _, info := range infos {
		fmt.Printf("Layer %q: version %d, extent %d, features %s, keys %d\n",
			info.Name, info.Version, info.Extent,
			humanize.Comma(int64(info.FeatureCount)), info.KeyCount)

		if extended {
			fmt.Printf("  Point: %s, LineString: %s, Polygon: %s, Unknown: %s\n",
				humanize.Comma(info.PointCount), humanize.Comma(info.LineStringCount),
				humanize.Comma(info.PolygonCount), humanize.Comma(info.UnknownCount))
		}
	}
}
