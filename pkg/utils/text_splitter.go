package utils

import "strings"

// defaultSeparators, tried in order: paragraph break, line break, sentence
// end, word break, then a hard character cut.
var defaultSeparators = []string{"\n\n", "\n", ". ", " ", ""}

// SplitText splits a long string into chunks of at most chunkSize characters
// with an overlap between neighbouring chunks. It prefers to cut on the
// coarsest separator that still yields pieces small enough, falling back to
// finer ones. Whitespace-only chunks are dropped.
func SplitText(text string, chunkSize int, overlap int) []string {
	if chunkSize <= 0 {
		chunkSize = 600
	}
	if overlap < 0 || overlap >= chunkSize {
		overlap = 0
	}

	pieces := splitRecursive(text, chunkSize, defaultSeparators)
	chunks := mergePieces(pieces, chunkSize, overlap)

	out := make([]string, 0, len(chunks))
	for _, c := range chunks {
		if strings.TrimSpace(c) != "" {
			out = append(out, c)
		}
	}
	return out
}

// splitRecursive cuts text into pieces no longer than chunkSize, trying the
// separators in order. The empty separator means a hard rune cut.
func splitRecursive(text string, chunkSize int, separators []string) []string {
	if len([]rune(text)) <= chunkSize {
		return []string{text}
	}

	sep := separators[0]
	if sep == "" {
		return splitRunes(text, chunkSize)
	}

	var pieces []string
	for _, part := range strings.SplitAfter(text, sep) {
		if len([]rune(part)) <= chunkSize {
			pieces = append(pieces, part)
			continue
		}
		pieces = append(pieces, splitRecursive(part, chunkSize, separators[1:])...)
	}
	return pieces
}

func splitRunes(text string, chunkSize int) []string {
	runes := []rune(text)
	var pieces []string
	for i := 0; i < len(runes); i += chunkSize {
		end := i + chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		pieces = append(pieces, string(runes[i:end]))
	}
	return pieces
}

// mergePieces greedily packs small pieces back together up to chunkSize,
// carrying overlap characters from the end of each chunk into the next.
func mergePieces(pieces []string, chunkSize int, overlap int) []string {
	var chunks []string
	var current strings.Builder
	fresh := false // current holds content beyond the carried overlap

	flush := func() {
		chunk := current.String()
		chunks = append(chunks, chunk)
		current.Reset()
		fresh = false
		if overlap > 0 {
			runes := []rune(chunk)
			if len(runes) > overlap {
				runes = runes[len(runes)-overlap:]
			}
			current.WriteString(string(runes))
		}
	}

	for _, piece := range pieces {
		if fresh && len([]rune(current.String()))+len([]rune(piece)) > chunkSize {
			flush()
		}
		current.WriteString(piece)
		fresh = true
	}
	if fresh {
		chunks = append(chunks, current.String())
	}
	return chunks
}
