package rag

import "testing"

func TestDetectUrgency(t *testing.T) {
	tests := []struct {
		name   string
		main   string
		refine string
		want   bool
	}{
		{"severe in main", "severe stomach pain", "", true},
		{"red flag only in refine", "stomach pain", "it keeps worsening", true},
		{"case insensitive", "Stomach hurts", "BLOOD IN STOOL", true},
		{"pregnancy", "belly pain", "I am pregnant", true},
		// Inputs are joined with a single space, so a flag spanning the
		// boundary still matches.
		{"flag spanning the two inputs", "blood in", "stool", true},
		{"no flags", "mild tummy ache", "after eating", false},
		{"both empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectUrgency(tt.main, tt.refine); got != tt.want {
				t.Errorf("DetectUrgency(%q, %q) = %v, want %v", tt.main, tt.refine, got, tt.want)
			}
		})
	}
}
