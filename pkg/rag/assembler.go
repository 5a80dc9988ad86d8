package rag

import "strings"

// Fixed user-facing reply strings. The out-of-scope refusal is shared by
// /validate and /chat so the two endpoints can never drift apart.
const (
	ReplyOutOfScope = "I'm sorry but I am trained only on abdominal pain in adults."
	ReplyNoEvidence = "I'm sorry, I could not find relevant information."

	replyIntro       = "Here’s what I found related to abdominal pain in adults:"
	replyUrgencyNote = "\n\n⚠️ If symptoms are severe, worsening, or you notice red-flag signs, seek urgent medical care."

	bulletMarker = "• "
)

// Assemble composes the final reply from the condensed bullets and the
// red-flag verdict. Empty bullets means no passage cleared the similarity
// threshold (or every summarization was skipped) and yields the fixed
// fallback message. The output is fully deterministic.
func Assemble(bullets []string, urgent bool) string {
	if len(bullets) == 0 {
		return ReplyNoEvidence
	}

	var sb strings.Builder
	sb.WriteString(replyIntro)
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(bullets, "\n\n"))
	if urgent {
		sb.WriteString(replyUrgencyNote)
	}
	return sb.String()
}
