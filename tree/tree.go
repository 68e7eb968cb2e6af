// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree provides a rooted phylogenetic tree
// with branch lengths.
//
// Nodes are stored as an arena
// and identified by integer IDs,
// so the trees can be traversed iteratively
// regardless of their depth.
package tree

import (
	"fmt"
	"slices"
	"strings"
)

// A Tree is a rooted phylogenetic tree
// with branch lengths.
//
// The root of the tree is always the node with ID 0.
// Each node,
// except the root,
// has a branch that connects it with its parent;
// the length of that branch is stored on the node.
type Tree struct {
	name  string
	nodes []*node
	taxa  map[string]int
}

// A node is a node of a phylogenetic tree.
type node struct {
	id       int
	parent   int
	children []int
	taxon    string
	length   float64
}

// New creates a new phylogenetic tree
// with a root node
// (ID 0).
func New(name string) *Tree {
	name = strings.Join(strings.Fields(name), " ")
	t := &Tree{
		name: name,
		taxa: make(map[string]int),
	}
	root := &node{
		id:     0,
		parent: -1,
	}
	t.nodes = append(t.nodes, root)
	return t
}

// Add adds a new node as a child of the indicated node,
// with the given branch length.
// If taxon is not an empty string,
// the new node will be a terminal.
// It returns the ID of the added node.
func (t *Tree) Add(parent int, length float64, taxon string) (int, error) {
	if parent < 0 || parent >= len(t.nodes) {
		return -1, fmt.Errorf("parent ID %d undefined", parent)
	}
	if length < 0 {
		return -1, fmt.Errorf("negative branch length %.6f", length)
	}

	taxon = strings.Join(strings.Fields(taxon), " ")
	if taxon != "" {
		if _, dup := t.taxa[taxon]; dup {
			return -1, fmt.Errorf("taxon %q repeated", taxon)
		}
	}

	n := &node{
		id:     len(t.nodes),
		parent: parent,
		taxon:  taxon,
		length: length,
	}
	t.nodes = append(t.nodes, n)
	p := t.nodes[parent]
	p.children = append(p.children, n.id)
	if taxon != "" {
		t.taxa[taxon] = n.id
	}
	return n.id, nil
}

// Children returns the IDs of the children of a node.
func (t *Tree) Children(id int) []int {
	if id < 0 || id >= len(t.nodes) {
		return nil
	}
	n := t.nodes[id]
	if len(n.children) == 0 {
		return nil
	}
	children := make([]int, len(n.children))
	copy(children, n.children)
	return children
}

// IsRoot returns true if the indicated node
// is the root of the tree.
func (t *Tree) IsRoot(id int) bool {
	return id == 0
}

// IsTerm returns true if the indicated node
// is a terminal of the tree.
func (t *Tree) IsTerm(id int) bool {
	if id < 0 || id >= len(t.nodes) {
		return false
	}
	return len(t.nodes[id].children) == 0
}

// Len returns the length of the branch
// that connects the indicated node
// with its parent.
// The length of the root branch is always zero.
func (t *Tree) Len(id int) float64 {
	if id <= 0 || id >= len(t.nodes) {
		return 0
	}
	return t.nodes[id].length
}

// Name returns the name of the tree.
func (t *Tree) Name() string {
	return t.name
}

// Nodes returns the IDs of all nodes in the tree.
func (t *Tree) Nodes() []int {
	ids := make([]int, len(t.nodes))
	for i := range t.nodes {
		ids[i] = i
	}
	return ids
}

// Parent returns the ID of the parent
// of the indicated node.
// It returns -1 for the root
// or an invalid node.
func (t *Tree) Parent(id int) int {
	if id < 0 || id >= len(t.nodes) {
		return -1
	}
	return t.nodes[id].parent
}

// Postorder returns the node IDs of the tree
// in post-order,
// that is,
// every node appears after all of its descendants.
// The traversal is iterative,
// so it is safe for arbitrarily deep trees.
func (t *Tree) Postorder() []int {
	order := make([]int, 0, len(t.nodes))
	stack := []int{0}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, id)
		stack = append(stack, t.nodes[id].children...)
	}

	// a pre-order with children pushed left to right
	// visits every parent before its descendants
	// and later siblings before earlier ones;
	// its reverse is a valid post-order.
	slices.Reverse(order)
	return order
}

// Taxon returns the taxon name of the indicated node.
// It returns an empty string for internal nodes.
func (t *Tree) Taxon(id int) string {
	if id < 0 || id >= len(t.nodes) {
		return ""
	}
	return t.nodes[id].taxon
}

// TaxonNode returns the node ID of a given taxon.
// It returns -1 if the taxon is not in the tree.
func (t *Tree) TaxonNode(taxon string) int {
	taxon = strings.Join(strings.Fields(taxon), " ")
	id, ok := t.taxa[taxon]
	if !ok {
		return -1
	}
	return id
}

// Terms returns the taxon names of the tree terminals,
// sorted alphabetically.
func (t *Tree) Terms() []string {
	terms := make([]string, 0, len(t.taxa))
	for tax := range t.taxa {
		terms = append(terms, tax)
	}
	slices.Sort(terms)
	return terms
}

// Root returns the ID of the root node,
// which is always 0.
func (t *Tree) Root() int {
	return 0
}

// Validate returns an error if the tree is not
// a valid phylogenetic tree,
// that is,
// if it is empty,
// or has terminals without a taxon name.
func (t *Tree) Validate() error {
	if len(t.nodes) == 1 {
		return fmt.Errorf("tree %q: empty tree", t.name)
	}
	for _, n := range t.nodes {
		if len(n.children) == 0 && n.taxon == "" {
			return fmt.Errorf("tree %q: node %d: terminal without a taxon name", t.name, n.id)
		}
	}
	return nil
}
