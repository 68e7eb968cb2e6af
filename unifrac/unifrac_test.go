// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package unifrac_test

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/unifrac/tree"
	"github.com/js-arias/unifrac/unifrac"
)

// The four tip tree used along the tests:
//
//	((T1:0.2,(T2:0.1,T3:0.4):0.3):0.5,T4:0.6);
//
// with branches indexed by node IDs:
//
//	0: root (length 0)
//	1: internal, T1+T2+T3 (0.5)
//	2: T1 (0.2)
//	3: internal, T2+T3 (0.3)
//	4: T2 (0.1)
//	5: T3 (0.4)
//	6: T4 (0.6)
func newTree(t testing.TB) *unifrac.Tree {
	t.Helper()

	c, err := tree.Newick(strings.NewReader("((T1:0.2,(T2:0.1,T3:0.4):0.3):0.5,T4:0.6);"), "test")
	if err != nil {
		t.Fatalf("unable to parse newick tree: %v", err)
	}
	ut, err := unifrac.New(c.Tree("test"))
	if err != nil {
		t.Fatalf("unable to build UniFrac tree: %v", err)
	}
	return ut
}

func TestTree(t *testing.T) {
	ut := newTree(t)

	if ut.Name() != "test" {
		t.Errorf("tree name: got %q, want %q", ut.Name(), "test")
	}
	if ut.NumBranches() != 7 {
		t.Errorf("branches: got %d, want %d", ut.NumBranches(), 7)
	}
	if ut.NumLeaves() != 4 {
		t.Errorf("leaves: got %d, want %d", ut.NumLeaves(), 4)
	}

	order := []string{"T1", "T2", "T3", "T4"}
	if ls := ut.Leaves(); !reflect.DeepEqual(ls, order) {
		t.Errorf("leaf order: got %v, want %v", ls, order)
	}

	brLen := []float64{0, 0.5, 0.2, 0.3, 0.1, 0.4, 0.6}
	for e, want := range brLen {
		if l := ut.BranchLength(e); math.Abs(l-want) > 1e-10 {
			t.Errorf("branch %d: length: got %.6f, want %.6f", e, l, want)
		}
	}
	if total := ut.TotalLength(); math.Abs(total-2.1) > 1e-10 {
		t.Errorf("total length: got %.6f, want %.6f", total, 2.1)
	}
}

// Every leaf must descend from exactly the branches
// of its path to the root,
// and from no other branch.
func TestLeafPaths(t *testing.T) {
	ut := newTree(t)

	paths := map[int][]int{
		0: {0, 1, 2},    // T1
		1: {0, 1, 3, 4}, // T2
		2: {0, 1, 3, 5}, // T3
		3: {0, 6},       // T4
	}
	for leaf, path := range paths {
		onPath := make(map[int]bool, len(path))
		for _, e := range path {
			onPath[e] = true
		}
		for e := 0; e < ut.NumBranches(); e++ {
			if ut.LeafUnder(e, leaf) != onPath[e] {
				t.Errorf("leaf %d: branch %d: got %v, want %v", leaf, e, ut.LeafUnder(e, leaf), onPath[e])
			}
		}
	}

	// the root branch spans all leaves
	for leaf := 0; leaf < ut.NumLeaves(); leaf++ {
		if !ut.LeafUnder(0, leaf) {
			t.Errorf("leaf %d: must descend from the root branch", leaf)
		}
	}
}

func TestParentBranch(t *testing.T) {
	ut := newTree(t)

	parents := []int{-1, 0, 1, 1, 3, 3, 0}
	for e, want := range parents {
		if p := ut.ParentBranch(e); p != want {
			t.Errorf("branch %d: parent: got %d, want %d", e, p, want)
		}
	}
}

func TestPresence(t *testing.T) {
	ut := newTree(t)

	p := ut.Presence([]string{"T2", "T3"})
	want := []bool{true, true, false, true, true, true, false}
	for e, w := range want {
		if p.Branch(e) != w {
			t.Errorf("branch %d: presence: got %v, want %v", e, p.Branch(e), w)
		}
	}
	if p.IsEmpty() {
		t.Errorf("presence of a non-empty sample reported as empty")
	}
	if p.Len() != ut.NumBranches() {
		t.Errorf("presence length: got %d, want %d", p.Len(), ut.NumBranches())
	}
}

func TestEmptyPresence(t *testing.T) {
	ut := newTree(t)

	empty := ut.Presence(nil)
	if !empty.IsEmpty() {
		t.Errorf("presence of an empty sample must be empty")
	}
	for e := 0; e < ut.NumBranches(); e++ {
		if empty.Branch(e) {
			t.Errorf("branch %d: empty sample must span no branch", e)
		}
	}

	// taxa outside the tree are ignored
	out := ut.Presence([]string{"not-in-tree"})
	if !out.IsEmpty() {
		t.Errorf("presence of unknown taxa must be empty")
	}
}

func TestUnknown(t *testing.T) {
	ut := newTree(t)

	taxa := []string{"T1", "TX", "T4", "TA", "TX"}
	want := []string{"TA", "TX"}
	if u := ut.Unknown(taxa); !reflect.DeepEqual(u, want) {
		t.Errorf("unknown taxa: got %v, want %v", u, want)
	}
	if u := ut.Unknown([]string{"T1", "T2"}); u != nil {
		t.Errorf("unknown taxa: got %v, want none", u)
	}
}

func TestInvalidTree(t *testing.T) {
	// the tree type rejects duplicated taxa on addition,
	// so build a tree with an unnamed terminal
	// to check the validation path
	tr := tree.New("dup")
	if _, err := tr.Add(0, 1, "T1"); err != nil {
		t.Fatalf("unable to add node: %v", err)
	}
	if _, err := tr.Add(0, 1, ""); err != nil {
		t.Fatalf("unable to add node: %v", err)
	}
	if _, err := unifrac.New(tr); err == nil {
		t.Errorf("expecting error for a terminal without taxon")
	}
}
