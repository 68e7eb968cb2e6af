// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package table is a metapackage for commands
// that dealt with sample-taxon tables.
package table

import (
	"github.com/js-arias/command"
	"github.com/js-arias/unifrac/cmd/unifrac/table/add"
	"github.com/js-arias/unifrac/cmd/unifrac/table/list"
	"github.com/js-arias/unifrac/cmd/unifrac/table/taxa"
)

var Command = &command.Command{
	Usage: "table <command> [<argument>...]",
	Short: "commands for sample-taxon tables",
}

func init() {
	Command.Add(add.Command)
	Command.Add(list.Command)
	Command.Add(taxa.Command)
}
