// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package unifrac implements the unweighted UniFrac distance
// between pairs of samples
// on a shared rooted phylogenetic tree.
//
// The distance between two samples is the fraction
// of the branch length spanned by either sample
// that is not shared by both
// (Lozupone & Knight 2005,
// with the Fast UniFrac normalization).
package unifrac

import (
	"fmt"

	"github.com/js-arias/unifrac/tree"
	"gonum.org/v1/gonum/floats"
)

// A Tree is a phylogenetic tree
// prepared for UniFrac calculations.
//
// Each node of the source tree
// is identified with the branch that connects it
// with its parent,
// using the node ID as the branch index;
// the root is assigned a synthetic branch
// with a zero length.
// For each branch,
// the tree stores the set of terminals
// that descend from the branch,
// as well as the branch length.
// A Tree is immutable after creation
// and is safe for concurrent use.
type Tree struct {
	t *tree.Tree

	// terminals in discovery order
	leaves []string
	leafID map[string]int

	// ID of the leaf of a terminal node,
	// -1 for internal nodes
	nodeLeaf []int

	post  []int
	words int

	// per branch bitset of descendant leaves
	under [][]uint64

	brLen []float64
}

// New creates a new UniFrac tree
// from a phylogenetic tree.
func New(t *tree.Tree) (*Tree, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	nodes := t.Nodes()
	ut := &Tree{
		t:        t,
		leafID:   make(map[string]int),
		nodeLeaf: make([]int, len(nodes)),
		post:     t.Postorder(),
		brLen:    make([]float64, len(nodes)),
	}
	if len(ut.post) != len(nodes) {
		return nil, fmt.Errorf("tree %q: %d nodes unreachable from root", t.Name(), len(nodes)-len(ut.post))
	}

	// leaves in discovery order
	// of a depth-first traversal
	stack := []int{t.Root()}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		ut.nodeLeaf[id] = -1
		if t.IsTerm(id) {
			tax := t.Taxon(id)
			if _, dup := ut.leafID[tax]; dup {
				return nil, fmt.Errorf("tree %q: taxon %q repeated", t.Name(), tax)
			}
			ut.nodeLeaf[id] = len(ut.leaves)
			ut.leafID[tax] = len(ut.leaves)
			ut.leaves = append(ut.leaves, tax)
			continue
		}
		children := t.Children(id)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	ut.words = (len(ut.leaves) + 63) / 64
	ut.under = make([][]uint64, len(nodes))
	for i := range ut.under {
		ut.under[i] = make([]uint64, ut.words)
	}

	// each branch contains the union
	// of the leaves of its children
	for _, id := range ut.post {
		if l := ut.nodeLeaf[id]; l >= 0 {
			ut.under[id][l/64] |= 1 << (l % 64)
			ut.brLen[id] = t.Len(id)
			continue
		}
		for _, c := range t.Children(id) {
			for w, bits := range ut.under[c] {
				ut.under[id][w] |= bits
			}
		}
		ut.brLen[id] = t.Len(id)
	}
	ut.brLen[t.Root()] = 0

	return ut, nil
}

// BranchLength returns the length of a branch.
// The root branch is always zero.
func (ut *Tree) BranchLength(e int) float64 {
	return ut.brLen[e]
}

// LeafUnder returns true if the leaf
// (by its position in the leaf order)
// descends from the given branch.
func (ut *Tree) LeafUnder(e, leaf int) bool {
	if leaf < 0 || leaf >= len(ut.leaves) {
		return false
	}
	return ut.under[e][leaf/64]&(1<<(leaf%64)) != 0
}

// Leaves returns the taxon names of the tree terminals
// in the leaf order,
// that is,
// the order in which each terminal is first found
// in a depth-first traversal of the tree.
func (ut *Tree) Leaves() []string {
	leaves := make([]string, len(ut.leaves))
	copy(leaves, ut.leaves)
	return leaves
}

// Name returns the name of the source tree.
func (ut *Tree) Name() string {
	return ut.t.Name()
}

// NumBranches returns the number of branches in the tree,
// including the synthetic root branch,
// so there is a branch per node.
func (ut *Tree) NumBranches() int {
	return len(ut.brLen)
}

// NumLeaves returns the number of terminals in the tree.
func (ut *Tree) NumLeaves() int {
	return len(ut.leaves)
}

// ParentBranch returns the index of the branch
// that is the parent of the given branch,
// or -1 for the root branch.
func (ut *Tree) ParentBranch(e int) int {
	return ut.t.Parent(e)
}

// TotalLength returns the sum of all branch lengths
// of the tree.
func (ut *Tree) TotalLength() float64 {
	return floats.Sum(ut.brLen)
}
