package camelot

import (
	"reflect"
	"strings"
	"testing"
)

func TestDecodeTable_Records(t *testing.T) {
	const in = `[
		{"0": "Course Code", "1": "Course Title", "2": "Credits", "3": "Grade"},
		{"0": "CSE1001", "1": "Problem Solving", "2": "4", "3": "S"},
		{"0": "MAT1011", "1": "Calculus", "2": "3", "3": "A"}
	]`

	got, err := DecodeTable(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeTable() error = %v", err)
	}
	want := []Table{{
		{"Course Code", "Course Title", "Credits", "Grade"},
		{"CSE1001", "Problem Solving", "4", "S"},
		{"MAT1011", "Calculus", "3", "A"},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeTable() = %v, want %v", got, want)
	}
}

func TestDecodeTable_RecordsNumericCells(t *testing.T) {
	// camelot usually exports strings, but numeric cells have been seen in
	// the wild; they must come out as their text.
	const in = `[{"0": "CSE1001", "1": 4, "2": "S"}]`

	got, err := DecodeTable(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeTable() error = %v", err)
	}
	want := []Table{{{"CSE1001", "4", "S"}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeTable() = %v, want %v", got, want)
	}
}

func TestDecodeTable_Tabula(t *testing.T) {
	const in = `[
		{
			"extraction_method": "lattice",
			"data": [
				[{"text": "Course Code"}, {"text": "Grade"}],
				[{"text": "CSE1001"}, {"text": "S"}]
			]
		},
		{
			"extraction_method": "lattice",
			"data": [
				[{"text": "MAT1011"}, {"text": "A"}]
			]
		}
	]`

	got, err := DecodeTable(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeTable() error = %v", err)
	}
	want := []Table{
		{
			{"Course Code", "Grade"},
			{"CSE1001", "S"},
		},
		{
			{"MAT1011", "A"},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeTable() = %v, want %v", got, want)
	}
}

func TestDecodeTable_Empty(t *testing.T) {
	got, err := DecodeTable(strings.NewReader(`[]`))
	if err != nil {
		t.Fatalf("DecodeTable() error = %v", err)
	}
	if got != nil {
		t.Errorf("DecodeTable() = %v, want nil", got)
	}
}

func TestDecodeTable_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not json", `oops`},
		{"top-level object", `{"0": "CSE1001"}`},
		{"row is not an object", `["CSE1001"]`},
		{"non numeric column key", `[{"code": "CSE1001"}]`},
		{"negative column key", `[{"-1": "CSE1001"}]`},
		{"tabula row is not an array", `[{"data": ["CSE1001"]}]`},
		{"tabula cell is not an object", `[{"data": [["CSE1001"]]}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeTable(strings.NewReader(tt.in))
			if err == nil {
				t.Fatalf("DecodeTable() = %v, want error", got)
			}
		})
	}
}

func TestConcat(t *testing.T) {
	a := Table{
		{"Course Code", "Grade"},
		{"CSE1001", "S"},
	}
	b := Table{
		{"Course Code", "Grade"},
		{"MAT1011", "A"},
	}

	got := Concat(a, b)
	want := [][]string{
		{"Course Code", "Grade"},
		{"CSE1001", "S"},
		{"Course Code", "Grade"},
		{"MAT1011", "A"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Concat() = %v, want %v", got, want)
	}

	if got := Concat(); got != nil {
		t.Errorf("Concat() = %v, want nil", got)
	}
}

func TestSortTableFiles(t *testing.T) {
	files := []string{
		"sheet-page-10-table-1.json",
		"sheet-page-2-table-1.json",
		"sheet-page-1-table-2.json",
		"sheet-page-1-table-1.json",
	}
	sortTableFiles(files)
	want := []string{
		"sheet-page-1-table-1.json",
		"sheet-page-1-table-2.json",
		"sheet-page-2-table-1.json",
		"sheet-page-10-table-1.json",
	}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("sortTableFiles() = %v, want %v", files, want)
	}
}
