// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package unifrac

import "slices"

// A Presence is the set of branches of a tree
// spanned by the taxa of a sample,
// stored as a bitset indexed by branch.
//
// A branch is present if at least one taxon of the sample
// descends from the branch;
// so the root branch is present
// if the sample has at least one taxon of the tree,
// and the presence of a sample without taxa
// is empty.
type Presence struct {
	bits []uint64
	n    int
}

// Presence returns the branch presence of a sample,
// given the taxa observed in the sample.
// Taxa not in the tree are ignored
// (see Unknown).
//
// The presence is computed with a single post-order pass,
// propagating the presence of each terminal
// towards the root.
func (ut *Tree) Presence(taxa []string) *Presence {
	atLeaf := make([]bool, len(ut.leaves))
	for _, tax := range taxa {
		if l, ok := ut.leafID[tax]; ok {
			atLeaf[l] = true
		}
	}

	p := &Presence{
		bits: make([]uint64, (len(ut.brLen)+63)/64),
		n:    len(ut.brLen),
	}
	for _, id := range ut.post {
		present := false
		if l := ut.nodeLeaf[id]; l >= 0 {
			present = atLeaf[l]
		} else {
			for _, c := range ut.t.Children(id) {
				if p.Branch(c) {
					present = true
					break
				}
			}
		}
		if present {
			p.bits[id/64] |= 1 << (id % 64)
		}
	}
	return p
}

// Branch returns true if the given branch
// is spanned by the sample.
func (p *Presence) Branch(e int) bool {
	if e < 0 || e >= p.n {
		return false
	}
	return p.bits[e/64]&(1<<(e%64)) != 0
}

// IsEmpty returns true if the sample
// spans no branch of the tree.
func (p *Presence) IsEmpty() bool {
	for _, w := range p.bits {
		if w != 0 {
			return false
		}
	}
	return true
}

// Len returns the number of branches
// of the underlying tree.
func (p *Presence) Len() int {
	return p.n
}

// Unknown returns the taxa from the given list
// that are not terminals of the tree,
// sorted alphabetically.
// These taxa are ignored in any presence calculation,
// so the caller can use this list
// to report them.
func (ut *Tree) Unknown(taxa []string) []string {
	var unknown []string
	seen := make(map[string]bool)
	for _, tax := range taxa {
		if _, ok := ut.leafID[tax]; ok {
			continue
		}
		if seen[tax] {
			continue
		}
		seen[tax] = true
		unknown = append(unknown, tax)
	}
	slices.Sort(unknown)
	return unknown
}
