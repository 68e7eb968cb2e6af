// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package unifrac

import (
	"gonum.org/v1/gonum/mat"
)

// Pair returns the unweighted UniFrac distance
// between two samples,
// given their branch presences:
//
//	D = 1 - shared / union
//
// in which shared is the sum of the lengths
// of the branches spanned by both samples,
// and union the sum of the lengths
// of the branches spanned by either sample.
//
// If neither sample spans a branch
// (both samples are empty,
// or only contain taxa outside the tree),
// both samples induce the same
// (empty)
// sub-tree,
// and the distance is zero.
//
// Both sums accumulate in ascending branch order,
// so repeated runs on the same input
// give identical results.
func (ut *Tree) Pair(pa, pb *Presence) float64 {
	if pa.n != len(ut.brLen) || pb.n != len(ut.brLen) {
		panic("unifrac: presence of a different tree")
	}

	var shared, union float64
	for w, wa := range pa.bits {
		wb := pb.bits[w]
		any := wa | wb
		if any == 0 {
			continue
		}
		both := wa & wb
		last := min(w*64+64, len(ut.brLen))
		for e := w * 64; e < last; e++ {
			bit := uint64(1) << (e % 64)
			if any&bit == 0 {
				continue
			}
			union += ut.brLen[e]
			if both&bit != 0 {
				shared += ut.brLen[e]
			}
		}
	}

	if union == 0 {
		return 0
	}
	return 1 - shared/union
}

// PairInner returns the unweighted UniFrac distance
// between two samples
// computed in its matrix form:
// the shared branch length is the product pa·Br·pb,
// in which Br is the diagonal matrix of branch lengths,
// and the union follows by inclusion-exclusion:
//
//	union = pa·Br·pa + pb·Br·pb - pa·Br·pb
//
// This form is algebraically equivalent to Pair
// and is kept as a cross-validation
// of the streaming implementation;
// Pair is the hot path.
func (ut *Tree) PairInner(pa, pb *Presence) float64 {
	if pa.n != len(ut.brLen) || pb.n != len(ut.brLen) {
		panic("unifrac: presence of a different tree")
	}

	va := pa.vector()
	vb := pb.vector()
	br := mat.NewDiagDense(len(ut.brLen), ut.brLen)

	shared := mat.Inner(va, br, vb)
	union := mat.Inner(va, br, va) + mat.Inner(vb, br, vb) - shared
	if union == 0 {
		return 0
	}
	return 1 - shared/union
}

// Vector returns the presence as a 0-1 dense vector.
func (p *Presence) vector() *mat.VecDense {
	v := mat.NewVecDense(p.n, nil)
	for e := 0; e < p.n; e++ {
		if p.Branch(e) {
			v.SetVec(e, 1)
		}
	}
	return v
}
