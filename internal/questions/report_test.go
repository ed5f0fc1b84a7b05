package questions

import (
	"bytes"
	"testing"
)

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	err := WriteReport(&buf, []Candidate{
		{Text: "1. What is 2+2?\n"},
		{Text: "  Prove it \n\t"},
	})
	if err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	want := "Extracted Math Questions:\n\n1. 1. What is 2+2?\n\n2. Prove it\n\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteChoiceReport(t *testing.T) {
	var buf bytes.Buffer
	err := WriteChoiceReport(&buf, []ChoiceQuestion{
		{Question: "What is 2+2? ", Options: []string{"3", " 4"}},
		{Question: "Is 7 prime?"},
	})
	if err != nil {
		t.Fatalf("WriteChoiceReport: %v", err)
	}
	want := "Extracted Math Questions:\n\n" +
		"1. What is 2+2?\n   A. 3\n   B. 4\n\n" +
		"2. Is 7 prime?\n\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestOptionLabel(t *testing.T) {
	tests := map[int]string{0: "A", 1: "B", 25: "Z", 26: "AA", 27: "AB", 52: "BA"}
	for i, want := range tests {
		if got := optionLabel(i); got != want {
			t.Errorf("optionLabel(%d) = %q, want %q", i, got, want)
		}
	}
}
