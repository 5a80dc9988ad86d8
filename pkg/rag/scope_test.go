package rag

import "testing"

func TestIsInScope(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"plain stomach complaint", "severe stomach pain", true},
		{"uppercase keyword", "My STOMACH hurts", true},
		{"keyword inside a word", "I ate a stomachache-inducing meal", true},
		{"tummy synonym", "tummy ache since morning", true},
		{"appendicitis", "could this be appendicitis?", true},
		{"bowel", "irregular bowel movement", true},
		{"lower abdomen phrase", "sharp pain in my lower abdomen", true},
		{"headache is out of scope", "I have a headache", false},
		{"chest pain alone is out of scope", "chest pain and dizziness", false},
		{"empty input", "", false},
		{"whitespace only", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInScope(tt.text); got != tt.want {
				t.Errorf("IsInScope(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsInScopeIdempotent(t *testing.T) {
	input := "dull pain around the belly button"
	first := IsInScope(input)
	for i := 0; i < 3; i++ {
		if IsInScope(input) != first {
			t.Fatalf("IsInScope is not idempotent for %q", input)
		}
	}
}
