package generate

import (
	"regexp"
	"strings"
)

// maxFrontWords is the longest front a flashcard may carry. The threshold
// is empirical; see the flashcard prompt, which asks for 2-6 words.
const maxFrontWords = 6

// defaultFillerWords reject flashcard fronts (and fallback sentences) that
// start with a vague lead-in instead of a concept title.
var defaultFillerWords = []string{"it", "this", "however", "explain", "note"}

var (
	blockSplitRe = regexp.MustCompile(`\n\s*\n`)
	quizQRe      = regexp.MustCompile(`Q:\s*(.+)`)
	quizARe      = regexp.MustCompile(`A:\s*(.+)`)
	cardFrontRe  = regexp.MustCompile(`Front:\s*(.+)`)
	cardBackRe   = regexp.MustCompile(`Back:\s*(.+)`)
)

// firstGroup returns the trimmed first capture of re in s, or "".
func firstGroup(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func splitBlocks(raw string) []string {
	return blockSplitRe.Split(strings.TrimSpace(raw), -1)
}

// CleanQuiz keeps only blocks with both a non-empty Q: and A: field and
// reassembles them as exact two-line blocks separated by blank lines. If no
// block validates, the raw text is returned unchanged so the caller never
// ends up with an empty result. The operation is idempotent.
func CleanQuiz(raw string) string {
	var cleaned []string
	for _, block := range splitBlocks(raw) {
		q := firstGroup(quizQRe, block)
		a := firstGroup(quizARe, block)
		if q != "" && a != "" {
			cleaned = append(cleaned, "Q: "+q+"\nA: "+a)
		}
	}
	if len(cleaned) == 0 {
		return raw
	}
	return strings.Join(cleaned, "\n\n")
}

// CleanFlashcards keeps only blocks with both Front: and Back: fields whose
// front is at most six words and does not start with a filler word. Same
// fallback-to-raw and idempotence guarantees as CleanQuiz.
func CleanFlashcards(raw string) string {
	return cleanFlashcardsWith(raw, defaultFillerWords)
}

func cleanFlashcardsWith(raw string, fillers []string) string {
	var cards []string
	for _, block := range splitBlocks(raw) {
		front := firstGroup(cardFrontRe, block)
		back := firstGroup(cardBackRe, block)
		if front == "" || back == "" {
			continue
		}
		if len(strings.Fields(front)) > maxFrontWords {
			continue
		}
		if hasFillerPrefix(front, fillers) {
			continue
		}
		cards = append(cards, "Front: "+front+"\nBack: "+back)
	}
	if len(cards) == 0 {
		return raw
	}
	return strings.Join(cards, "\n\n")
}

// hasFillerPrefix reports whether s starts with any filler word,
// case-insensitively.
func hasFillerPrefix(s string, fillers []string) bool {
	lower := strings.ToLower(s)
	for _, f := range fillers {
		if strings.HasPrefix(lower, f) {
			return true
		}
	}
	return false
}
