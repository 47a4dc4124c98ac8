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
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"

	"m4o.io/mvt"
	"m4o.io/mvt/cmd/mvt/cli"
)

var (
	geojsonfmt bool
	layerName  string
)

func init() {
	RootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().BoolVarP(&geojsonfmt, "geojson", "g", false, "dump features as GeoJSON in tile-local coordinates")
	dumpCmd.Flags().StringVarP(&layerName, "layer", "l", "", "dump only the named layer")
}

var dumpCmd = &cobra.Command{
	Use:   "dump [<tile file>]",
	Short: "Print the features of a vector tile",
	Long:  "Print the features of a vector tile, with their properties and geometries",
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

		names := tile.LayerNames()
		if layerName != "" {
			names = []string{layerName}
		}

		for _, name := range names {
			layer, err := tile.Layer(name)
			if err != nil {
				log.Fatal(err)
			}

			if geojsonfmt {
				dumpGeoJSON(layer)
			} else {
				dumpTxt(layer)
			}
		}
	},
}

func dumpTxt(layer *mvt.Layer) {
	fmt.Printf("Layer %q\n", layer.Name())

	for i := 0; i < layer.FeatureCount(); i++ {
		feature, err := layer.Feature(i)
		if err != nil {
			log.Fatal(err)
		}

		line := fmt.Sprintf("  %d: %s", i, feature.Type())
		if id, ok := feature.ID(); ok {
			line += fmt.Sprintf(" id=%d", id)
		}

		properties, err := feature.Properties()
		if err != nil {
			log.Fatal(err)
		}

		keys := make([]string, 0, len(properties))
		for k := range properties {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			line += fmt.Sprintf(" %s=%s", k, properties[k])
		}

		paths, err := feature.Geometries(1.0)
		if err != nil {
			log.Fatal(err)
		}

		points := 0
		for _, path := range paths {
			points += len(path)
		}

		fmt.Printf("%s (%d paths, %d points)\n", line, len(paths), points)
	}
}

func dumpGeoJSON(layer *mvt.Layer) {
	fc := geojson.NewFeatureCollection()

	for i := 0; i < layer.FeatureCount(); i++ {
		feature, err := layer.Feature(i)
		if err != nil {
			log.Fatal(err)
		}

		geometry, err := feature.Geometry(1.0)
		if err != nil {
			if errors.Is(err, mvt.ErrUntypedGeometry) {
				continue
			}

			log.Fatal(err)
		}

		gf := geojson.NewFeature(geometry)
		if id, ok := feature.ID(); ok {
			gf.ID = id
		}

		properties, err := feature.Properties()
		if err != nil {
			log.Fatal(err)
		}

		for k, v := range properties {
			gf.Properties[k] = v.Interface()
		}

		fc.Append(gf)
	}

	b, err := json.Marshal(fc)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(b))
}
