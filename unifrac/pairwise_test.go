// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package unifrac_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/js-arias/unifrac/samples"
	"github.com/js-arias/unifrac/unifrac"
)

func newTable() *samples.Table {
	tb := samples.New()
	for _, tax := range []string{"T1", "T2", "T3", "T4"} {
		tb.Add("SampleA", tax)
	}
	tb.Add("SampleB", "T2")
	tb.Add("SampleB", "T3")
	// SampleC is empty
	tb.Add("SampleC", "")
	return tb
}

func TestPairwise(t *testing.T) {
	ut := newTree(t)
	tb := newTable()

	m, err := unifrac.Pairwise(ut, tb, 1)
	if err != nil {
		t.Fatalf("unable to build distance matrix: %v", err)
	}

	names := []string{"SampleA", "SampleB", "SampleC"}
	if s := m.Samples(); !reflect.DeepEqual(s, names) {
		t.Fatalf("samples: got %v, want %v", s, names)
	}

	for i := range names {
		if d := m.At(i, i); d != 0 {
			t.Errorf("sample %q: self distance: got %.6f, want 0", names[i], d)
		}
		for j := range names {
			if m.At(i, j) != m.At(j, i) {
				t.Errorf("matrix is not symmetric at %d-%d", i, j)
			}
		}
	}

	// each cell must match an independent
	// pairwise calculation
	pres := make([]*unifrac.Presence, len(names))
	for i, s := range names {
		pres[i] = ut.Presence(tb.Sample(s))
	}
	for i := range names {
		for j := range names {
			if i == j {
				continue
			}
			want := ut.Pair(pres[i], pres[j])
			if d := m.At(i, j); d != want {
				t.Errorf("distance %q-%q: got %.6f, want %.6f", names[i], names[j], d, want)
			}
		}
	}

	// the known values
	dab, err := m.Distance("SampleA", "SampleB")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := 1 - 1.3/2.1; math.Abs(dab-want) > 1e-10 {
		t.Errorf("distance %q-%q: got %.6f, want %.6f", "SampleA", "SampleB", dab, want)
	}
	dac, err := m.Distance("SampleA", "SampleC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dac != 1 {
		t.Errorf("distance %q-%q: got %.6f, want 1", "SampleA", "SampleC", dac)
	}
}

func TestPairwiseParallel(t *testing.T) {
	ut := newTree(t)
	tb := newTable()

	seq, err := unifrac.Pairwise(ut, tb, 1)
	if err != nil {
		t.Fatalf("unable to build distance matrix: %v", err)
	}
	par, err := unifrac.Pairwise(ut, tb, 4)
	if err != nil {
		t.Fatalf("unable to build distance matrix: %v", err)
	}

	names := seq.Samples()
	for i := range names {
		for j := range names {
			if seq.At(i, j) != par.At(i, j) {
				t.Errorf("distance %d-%d: sequential %.6f, parallel %.6f", i, j, seq.At(i, j), par.At(i, j))
			}
		}
	}
}
