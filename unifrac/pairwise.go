// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package unifrac

import (
	"runtime"
	"sync"

	"github.com/js-arias/unifrac/dmatrix"
	"github.com/js-arias/unifrac/samples"
)

// Pairwise returns the matrix
// of unweighted UniFrac distances
// between every pair of samples of a table.
//
// The branch presence of each sample
// is computed only once,
// and then each unordered pair is measured
// with Pair.
// Use cpu to define the number of processors
// used in the calculation.
// The default
// (zero)
// uses all available processors.
func Pairwise(ut *Tree, tb *samples.Table, cpu int) (*dmatrix.Matrix, error) {
	if cpu <= 0 {
		cpu = runtime.GOMAXPROCS(0)
	}

	names := tb.Samples()
	m, err := dmatrix.New(names)
	if err != nil {
		return nil, err
	}

	pres := make([]*Presence, len(names))
	for i, s := range names {
		pres[i] = ut.Presence(tb.Sample(s))
	}

	// Samples are distributed by rows;
	// each cell is written by a single goroutine.
	rows := make(chan int, cpu*2)
	var wg sync.WaitGroup
	for range cpu {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rows {
				for j := i + 1; j < len(names); j++ {
					m.Set(i, j, ut.Pair(pres[i], pres[j]))
				}
			}
		}()
	}
	for i := range names {
		rows <- i
	}
	close(rows)
	wg.Wait()

	return m, nil
}
