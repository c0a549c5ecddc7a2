package models

import (
	"reflect"
	"testing"
)

func TestField_Raw(t *testing.T) {
	if got := (Field{Value: "stale"}).Raw(); got != "" {
		t.Errorf("absent Raw() = %q, want empty", got)
	}

	if got := Text(" x ").Raw(); got != " x " {
		t.Errorf("present Raw() = %q, want %q", got, " x ")
	}
}

func TestRow_SetAndLookup(t *testing.T) {
	var row Row

	columns := []string{ColumnID, ColumnQuestion, ColumnChoices, ColumnAnswer, ColumnExplanation, ColumnCalc}
	for _, col := range columns {
		if !row.Set(col, col+"-value") {
			t.Errorf("Set(%q) = false", col)
		}
	}

	if row.Set("notes", "ignored") {
		t.Error("Set should reject unknown columns")
	}

	for _, col := range columns {
		f, ok := row.Lookup(col)
		if !ok || !f.Present || f.Value != col+"-value" {
			t.Errorf("Lookup(%q) = %+v, %v", col, f, ok)
		}
	}

	if _, ok := row.Lookup("notes"); ok {
		t.Error("Lookup should reject unknown columns")
	}
}

func TestRow_Debug(t *testing.T) {
	row := Row{
		Num:    2,
		ID:     Text("7"),
		Answer: Text(" B "),
		Back:   Text("<p>not included</p>"),
	}

	want := map[string]string{
		ColumnID:       "7",
		ColumnQuestion: "",
		ColumnChoices:  "",
		ColumnAnswer:   " B ",
		ColumnCalc:     "",
	}

	if got := row.Debug(); !reflect.DeepEqual(got, want) {
		t.Errorf("Debug() = %v, want %v", got, want)
	}
}
