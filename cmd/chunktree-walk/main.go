// Copyright 2025 Dolthub, Inc.
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

// Command chunktree-walk builds a test tree and walks it through the
// foreign-binding shim, reporting the node count and elapsed time.
// It exists to exercise cursorhandle.WalkSubtree/WalkSubtreeDepth
// end-to-end, the way the source's wasm.rs walk_subtree is exercised
// only from its own unit test.
package main

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dolthub/chunktree/cursorhandle"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var fields, perField, depth int

	walkCmd := &cobra.Command{
		Use:   "walk",
		Short: "Build a test tree and walk it, reporting the node count",
		RunE: func(cmd *cobra.Command, args []string) error {
			h := cursorhandle.NewFromTestData(fields, perField)

			start := time.Now()
			var count int
			if depth > 0 {
				count = cursorhandle.WalkSubtreeDepth(h, depth)
			} else {
				count = cursorhandle.WalkSubtree(h)
			}
			elapsed := time.Since(start)

			logrus.WithFields(logrus.Fields{
				"tree_id":   h.TreeID(),
				"fields":    fields,
				"per_field": perField,
				"depth":     depth,
				"count":     count,
				"elapsed":   elapsed,
			}).Info("chunktree-walk: walk complete")
			return nil
		},
	}
	walkCmd.Flags().IntVar(&fields, "fields", 10, "number of fields on the root")
	walkCmd.Flags().IntVar(&perField, "per-field", 10, "number of leaf children per field")
	walkCmd.Flags().IntVar(&depth, "depth", 0, "bound the walk to this many levels below the root (0 = unbounded)")

	root := &cobra.Command{
		Use:   "chunktree-walk",
		Short: "Inspect and benchmark chunktree cursors from the command line",
	}
	root.AddCommand(walkCmd)
	return root
}
