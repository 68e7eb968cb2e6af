// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"fmt"

	"github.com/js-arias/timetree"
)

// A time calibrated tree stores ages in years.
const millionYears = 1_000_000

// FromTimeTree creates a tree from a time calibrated tree,
// using the time between a node and its parent
// (in million years)
// as the branch length.
func FromTimeTree(tt *timetree.Tree) (*Tree, error) {
	t := New(tt.Name())

	root := tt.Root()
	ids := map[int]int{root: t.Root()}

	stack := []int{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children := tt.Children(id)
		// push in reverse order
		// so children are added left to right
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
		if id == root {
			continue
		}

		age := tt.Age(tt.Parent(id)) - tt.Age(id)
		if age < 0 {
			return nil, fmt.Errorf("tree %q: node %d: older than its parent", tt.Name(), id)
		}
		var taxon string
		if tt.IsTerm(id) {
			taxon = tt.Taxon(id)
		}
		nid, err := t.Add(ids[tt.Parent(id)], float64(age)/millionYears, taxon)
		if err != nil {
			return nil, fmt.Errorf("tree %q: node %d: %v", tt.Name(), id, err)
		}
		ids[id] = nid
	}

	return t, nil
}
