// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// UniFrac is a tool to measure phylogenetic distances
// between samples of taxa.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/unifrac/cmd/unifrac/dist"
	"github.com/js-arias/unifrac/cmd/unifrac/draw"
	"github.com/js-arias/unifrac/cmd/unifrac/table"
	"github.com/js-arias/unifrac/cmd/unifrac/tree"
)

var app = &command.Command{
	Usage: "unifrac <command> [<argument>...]",
	Short: "a tool to measure phylogenetic distances between samples",
}

func init() {
	app.Add(dist.Command)
	app.Add(draw.Command)
	app.Add(table.Command)
	app.Add(tree.Command)
}

func main() {
	app.Main()
}
