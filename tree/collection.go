// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// A Collection is a set of phylogenetic trees
// indexed by their names.
type Collection struct {
	trees map[string]*Tree
}

// NewCollection creates a new empty tree collection.
func NewCollection() *Collection {
	return &Collection{
		trees: make(map[string]*Tree),
	}
}

// Add adds a tree to the collection.
// It returns an error if there is a tree
// with the same name in the collection.
func (c *Collection) Add(t *Tree) error {
	name := t.Name()
	if name == "" {
		return fmt.Errorf("tree without a name")
	}
	if _, dup := c.trees[name]; dup {
		return fmt.Errorf("tree %q already in collection", name)
	}
	c.trees[name] = t
	return nil
}

// Names returns the names of the trees in the collection,
// sorted alphabetically.
func (c *Collection) Names() []string {
	names := make([]string, 0, len(c.trees))
	for name := range c.trees {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Tree returns a tree with a given name.
// It returns nil if there is no tree with that name.
func (c *Collection) Tree(name string) *Tree {
	name = strings.Join(strings.Fields(name), " ")
	return c.trees[name]
}

var header = []string{
	"tree",
	"node",
	"parent",
	"taxon",
	"length",
}

// ReadTSV reads a tree collection from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - tree, the name of the tree
//   - node, the ID of the node
//   - parent, the ID of the parent node (-1 for the root)
//   - taxon, the taxon name of a terminal node
//   - length, the length of the branch to the parent node
//
// Here is an example file:
//
//	# phylogenetic trees
//	tree	node	parent	taxon	length
//	test	0	-1		0.000000
//	test	1	0		0.500000
//	test	2	1	T1	0.200000
//	test	3	1		0.300000
//	test	4	3	T2	0.100000
//	test	5	3	T3	0.400000
//	test	6	0	T4	0.600000
//
// Parent nodes must be defined
// (i.e., appear in a row)
// before any of their children.
func ReadTSV(r io.Reader) (*Collection, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	c := NewCollection()
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "tree"
		name := strings.Join(strings.Fields(row[fields[f]]), " ")
		if name == "" {
			return nil, fmt.Errorf("on row %d: field %q: expecting tree name", ln, f)
		}

		f = "node"
		id, err := strconv.Atoi(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		f = "parent"
		parent, err := strconv.Atoi(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		f = "taxon"
		taxon := row[fields[f]]

		f = "length"
		length, err := strconv.ParseFloat(row[fields[f]], 64)
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		t := c.trees[name]
		if t == nil {
			if parent != -1 {
				return nil, fmt.Errorf("on row %d: tree %q: root must be the first node", ln, name)
			}
			t = New(name)
			if id != t.Root() {
				return nil, fmt.Errorf("on row %d: tree %q: got root ID %d, expecting %d", ln, name, id, t.Root())
			}
			c.trees[name] = t
			continue
		}
		got, err := t.Add(parent, length, taxon)
		if err != nil {
			return nil, fmt.Errorf("on row %d: tree %q: %v", ln, name, err)
		}
		if got != id {
			return nil, fmt.Errorf("on row %d: tree %q: got node ID %d, expecting %d", ln, name, id, got)
		}
	}

	if len(c.trees) == 0 {
		return nil, fmt.Errorf("while reading data: no trees on input")
	}
	return c, nil
}

// TSV writes a tree collection to a TSV file.
func (c *Collection) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, name := range c.Names() {
		t := c.trees[name]
		for _, id := range t.Nodes() {
			row := []string{
				name,
				strconv.Itoa(id),
				strconv.Itoa(t.Parent(id)),
				t.Taxon(id),
				strconv.FormatFloat(t.Len(id), 'f', 6, 64),
			}
			if err := tab.Write(row); err != nil {
				return fmt.Errorf("tree %q: %v", name, err)
			}
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
