// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package samples_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/unifrac/samples"
)

var table = `taxon	SampleA	SampleB	SampleC
T1	10	0	0
T2	0	25	0
T3	3	1	0
T4	1	0.5	0
`

func newTable(t testing.TB) *samples.Table {
	t.Helper()

	tb, err := samples.ReadTSV(strings.NewReader(table))
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	return tb
}

func testTable(t testing.TB, tb *samples.Table) {
	t.Helper()

	sn := []string{"SampleA", "SampleB", "SampleC"}
	if s := tb.Samples(); !reflect.DeepEqual(s, sn) {
		t.Errorf("samples: got %v, want %v", s, sn)
	}

	taxa := []string{"T1", "T2", "T3", "T4"}
	if tx := tb.Taxa(); !reflect.DeepEqual(tx, taxa) {
		t.Errorf("taxa: got %v, want %v", tx, taxa)
	}

	want := map[string][]string{
		"SampleA": {"T1", "T3", "T4"},
		"SampleB": {"T2", "T3", "T4"},
		"SampleC": nil,
	}
	for _, s := range sn {
		obs := tb.Sample(s)
		if len(want[s]) == 0 {
			if len(obs) != 0 {
				t.Errorf("sample %q: got %v, want no taxa", s, obs)
			}
			continue
		}
		if !reflect.DeepEqual(obs, want[s]) {
			t.Errorf("sample %q: got %v, want %v", s, obs, want[s])
		}
	}

	if !tb.Has("SampleA", "T1") {
		t.Errorf("sample %q: taxon %q should be present", "SampleA", "T1")
	}
	if tb.Has("SampleC", "T1") {
		t.Errorf("sample %q: taxon %q should be absent", "SampleC", "T1")
	}
}

func TestReadTSV(t *testing.T) {
	tb := newTable(t)
	testTable(t, tb)
}

// An empty sample must be kept in the table
// even if no taxon is ever observed on it.
func TestEmptySample(t *testing.T) {
	tb := newTable(t)

	if obs := tb.Sample("SampleC"); len(obs) != 0 {
		t.Errorf("empty sample: got %v, want no taxa", obs)
	}
	found := false
	for _, s := range tb.Samples() {
		if s == "SampleC" {
			found = true
		}
	}
	if !found {
		t.Errorf("empty sample %q not in the table", "SampleC")
	}
}

func TestTableTSV(t *testing.T) {
	tb := newTable(t)

	var buf bytes.Buffer
	if err := tb.TSV(&buf); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}
	nt, err := samples.ReadTSV(&buf)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	testTable(t, nt)
}

func TestTableErrors(t *testing.T) {
	tests := map[string]string{
		"no samples":      "taxon\nT1\n",
		"repeated sample": "taxon\tSampleA\tSampleA\nT1\t1\t0\n",
		"no taxon name":   "taxon\tSampleA\n\t1\n",
	}
	for name, data := range tests {
		if _, err := samples.ReadTSV(strings.NewReader(data)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}
