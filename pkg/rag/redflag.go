package rag

import "strings"

// redFlagKeywords are the urgent-care signals scanned for in the raw user
// input. Immutable configuration data.
var redFlagKeywords = []string{
	"severe", "worsening", "rigid abdomen", "blood in stool",
	"blood in vomit", "pregnant", "chest pain", "high fever",
}

// DetectUrgency reports whether the combined symptom texts contain any
// red-flag keyword (case-insensitive). The result controls the urgency
// notice appended by the assembler.
func DetectUrgency(mainSymptom, refineAnswer string) bool {
	combined := strings.ToLower(mainSymptom + " " + refineAnswer)
	for _, keyword := range redFlagKeywords {
		if strings.Contains(combined, keyword) {
			return true
		}
	}
	return false
}
