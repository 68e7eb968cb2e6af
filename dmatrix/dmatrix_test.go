// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package dmatrix_test

import (
	"bytes"
	"math"
	"reflect"
	"testing"

	"github.com/js-arias/unifrac/dmatrix"
)

func newMatrix(t testing.TB) *dmatrix.Matrix {
	t.Helper()

	m, err := dmatrix.New([]string{"SampleA", "SampleB", "SampleC"})
	if err != nil {
		t.Fatalf("unable to create matrix: %v", err)
	}
	m.Set(0, 1, 0.381)
	m.Set(1, 2, 1)
	m.Set(2, 0, 0.25)
	return m
}

func testMatrix(t testing.TB, m *dmatrix.Matrix) {
	t.Helper()

	samples := []string{"SampleA", "SampleB", "SampleC"}
	if s := m.Samples(); !reflect.DeepEqual(s, samples) {
		t.Errorf("samples: got %v, want %v", s, samples)
	}
	if m.Len() != len(samples) {
		t.Errorf("samples: got %d, want %d", m.Len(), len(samples))
	}

	want := [][]float64{
		{0, 0.381, 0.25},
		{0.381, 0, 1},
		{0.25, 1, 0},
	}
	for i := range samples {
		for j := range samples {
			if d := m.At(i, j); math.Abs(d-want[i][j]) > 1e-10 {
				t.Errorf("distance %d-%d: got %.6f, want %.6f", i, j, d, want[i][j])
			}
		}
	}

	d, err := m.Distance("SampleB", "SampleC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 1 {
		t.Errorf("distance %q-%q: got %.6f, want %.6f", "SampleB", "SampleC", d, 1.0)
	}
	if _, err := m.Distance("SampleA", "not-a-sample"); err == nil {
		t.Errorf("expecting error for an undefined sample")
	}
}

func TestMatrix(t *testing.T) {
	m := newMatrix(t)
	testMatrix(t, m)

	// the diagonal must stay at zero
	m.Set(1, 1, 10)
	if d := m.At(1, 1); d != 0 {
		t.Errorf("diagonal: got %.6f, want 0", d)
	}
}

func TestMatrixTSV(t *testing.T) {
	m := newMatrix(t)

	var buf bytes.Buffer
	if err := m.TSV(&buf); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}
	nm, err := dmatrix.ReadTSV(&buf)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	testMatrix(t, nm)
}

func TestMatrixErrors(t *testing.T) {
	if _, err := dmatrix.New([]string{"SampleA", "SampleA"}); err == nil {
		t.Errorf("expecting error for a repeated sample")
	}
	if _, err := dmatrix.New([]string{"SampleA", ""}); err == nil {
		t.Errorf("expecting error for an empty sample name")
	}
}
