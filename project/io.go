// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/js-arias/unifrac/samples"
	"github.com/js-arias/unifrac/tree"
)

// Table reads the sample-taxon table file
// as defined in a project.
func (p *Project) Table() (*samples.Table, error) {
	name := p.Path(Table)
	if name == "" {
		return nil, fmt.Errorf("sample table not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tb, err := samples.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return tb, nil
}

// Trees reads a tree collection file
// as defined in a project.
func (p *Project) Trees() (*tree.Collection, error) {
	name := p.Path(Trees)
	if name == "" {
		return nil, fmt.Errorf("trees not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := tree.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}
