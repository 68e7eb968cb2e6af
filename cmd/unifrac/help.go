// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(projectsGuide)
	app.Add(tableFilesGuide)
	app.Add(treeFilesGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
UniFrac requires a phylogenetic tree and a table of samples to measure the
distances between the samples. To reduce the burden of keeping track of the
data files, a single project file is used to hold the reference of all files
required in the analysis. This guide explains the structure of the file, but
most of the time, the best and most secure way to edit or view this file is by
using unifrac commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# unifrac project files
	dataset	path
	table	table.tab
	trees	trees.tab

The valid file types are:

- Phylogenetic trees. Defined by the dataset keyword "trees". This file
  contains one or more trees in the form of a tab-delimited file. The
  recommended way to add a tree file is by using the command
  'unifrac tree add'.
- Sample-taxon tables. Defined by the dataset keyword "table". This file
  contains the taxa observed in each sample in the form of a tab-delimited
  file. The recommended way to add a table file is by using the command
  'unifrac table add'.
	`,
}

var treeFilesGuide = &command.Command{
	Usage: "tree-files",
	Short: "about tree files",
	Long: `
In a UniFrac project, phylogenetic trees are stored in a tab-delimited file,
in which each row is a node of a tree, so it would be easier to manipulate
trees than in traditional newick files.

A tree file is a tab-delimited file with the following fields:

	- tree    for the name of the tree
	- node    for the ID of the node
	- parent  for the ID of the parent node (-1 for the root)
	- taxon   for the taxon name of a terminal node
	- length  for the length of the branch to the parent node

Here is an example file:

	# phylogenetic trees
	tree	node	parent	taxon	length
	test	0	-1		0.000000
	test	1	0		0.500000
	test	2	1	T1	0.200000
	test	3	1		0.300000
	test	4	3	T2	0.100000
	test	5	3	T3	0.400000
	test	6	0	T4	0.600000

In a tree, each node,
except the root,
has a single parent that must be defined before the node. Branch lengths are
the evolutionary distance between the node and its parent, for example in
substitutions per site, or in million years for a time calibrated tree.

The recommended way to interact with tree files is by using the commands in
'unifrac tree'. Newick trees, as well as time calibrated trees in the format
of the timetree package, can be imported with 'unifrac tree add'.
	`,
}

var tableFilesGuide = &command.Command{
	Usage: "table-files",
	Short: "about sample-taxon table files",
	Long: `
In a UniFrac project, the taxa observed in each sample are stored in a
tab-delimited table file.

In the table, each column is a sample and each row is a taxon. The first
field of the header row is ignored; the other fields are the sample names. In
a data row, the first field is the taxon name, and any value greater than
zero indicates that the taxon is present in the sample of that column. As
UniFrac distances are unweighted, abundances are reduced to presence-absence.

Here is an example file:

	taxon	SampleA	SampleB	SampleC
	T1	10	0	5
	T2	0	25	0
	T3	3	1	0

Taxon names are matched with the tree terminals by exact string equality;
taxa not in the tree are ignored, and reported by the commands that measure
distances.

The recommended way to interact with table files is by using the commands in
'unifrac table'.
	`,
}
