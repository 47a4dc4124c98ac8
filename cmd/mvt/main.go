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
	"log"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the root of the mvt command tree.
var RootCmd = &cobra.Command{
	Use:   "mvt",
	Short: "Inspect Mapbox Vector Tiles",
	Long:  "Inspect Mapbox Vector Tiles",
}

func main() {
	log.SetFlags(0)

	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openInput opens the single optional file argument, defaulting to stdin.
func openInput(args []string) (*os.File, error) {
	if len(args) == 1 {
		return os.Open(args[0])
	}

	return os.Stdin, nil
}
