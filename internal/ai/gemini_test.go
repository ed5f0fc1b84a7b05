package ai

import (
	"context"
	"errors"
	"testing"
)

func TestDecodeQuestions(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"plain", `[{"question":"What is 2+2?","options":["3","4"]}]`, 1},
		{"fenced", "```json\n[{\"question\":\"x?\",\"options\":[]},{\"question\":\"y?\",\"options\":[\"1\"]}]\n```", 2},
		{"prose around", "Here you go:\n[{\"question\":\"z?\",\"options\":[\"a\"]}]\nThanks", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeQuestions(tt.in)
			if err != nil {
				t.Fatalf("decodeQuestions: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d questions, want %d", len(got), tt.want)
			}
		})
	}
}

func TestDecodeQuestions_fields(t *testing.T) {
	got, err := decodeQuestions(`[{"question":"What is 2+2?","options":["3","4"]}]`)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Question != "What is 2+2?" || len(got[0].Options) != 2 || got[0].Options[1] != "4" {
		t.Errorf("unexpected question %+v", got[0])
	}
}

func TestDecodeQuestions_errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", "  "},
		{"empty array", "[]"},
		{"missing options", `[{"question":"x?"}]`},
		{"empty question", `[{"question":"","options":["1"]}]`},
		{"wrong type", `{"question":"x?","options":["1"]}`},
		{"no json", "I could not read the image."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodeQuestions(tt.in); err == nil {
				t.Fatal("expected error")
			}
		})
	}
	if _, err := decodeQuestions("[]"); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("empty array: got %v, want ErrNoQuestions", err)
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := map[string]string{
		"```json\n[1]\n```": "[1]",
		"```\n{}\n```":      "{}",
		"  [2]  ":           "[2]",
		"```[3]```":         "[3]",
	}
	for in, want := range tests {
		if got := stripCodeFences(in); got != want {
			t.Errorf("stripCodeFences(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFindFirstJSON(t *testing.T) {
	tests := map[string]string{
		`x [{"a":[1]}] y`: `[{"a":[1]}]`,
		`{"b":{}} tail`:   `{"b":{}}`,
		"no json":         "",
		"[unclosed":       "",
	}
	for in, want := range tests {
		if got := findFirstJSON(in); got != want {
			t.Errorf("findFirstJSON(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewGemini_missingKey(t *testing.T) {
	if _, err := NewGemini(context.Background(), "", ""); err == nil {
		t.Fatal("expected error for missing key")
	}
}

func TestGemini_notConfigured(t *testing.T) {
	var g Gemini
	if _, err := g.ParseQuestions(context.Background(), []byte("x"), "image/png"); err == nil {
		t.Fatal("expected error")
	}
}
