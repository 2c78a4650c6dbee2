package generate

import (
	"fmt"
	"strings"
	"unicode"
)

// Local fallback tuning. The word-count thresholds are empirical carryovers;
// they are overridable through Options for behavioral compatibility.
const (
	defaultQuizQuestions    = 5
	defaultFlashcardCount   = 8
	defaultBulletCount      = 8
	defaultMinSentenceWords = 8
	frontWordCount          = 4
)

const (
	noQuizMessage       = "No quiz could be generated from this text."
	noFlashcardsMessage = "No flashcards could be generated from this text."
)

// splitSentences splits text on '.', '!' or '?' followed by whitespace,
// keeping the terminator with the sentence.
func splitSentences(text string) []string {
	var sentences []string
	var b strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		b.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if i+1 >= len(runes) || unicode.IsSpace(runes[i+1]) {
				if s := strings.TrimSpace(b.String()); s != "" {
					sentences = append(sentences, s)
				}
				b.Reset()
			}
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func wordCount(s string) int { return len(strings.Fields(s)) }

// fallbackQuiz emits up to n generic Q/A pairs, one per sentence longer
// than minWords, with the sentence as the answer.
func fallbackQuiz(text string, n, minWords int) string {
	var pairs []string
	for _, s := range splitSentences(text) {
		if wordCount(s) <= minWords {
			continue
		}
		q := fmt.Sprintf("Q: Key point %d: what does the material state?", len(pairs)+1)
		pairs = append(pairs, q+"\nA: "+s)
		if len(pairs) >= n {
			break
		}
	}
	if len(pairs) == 0 {
		return noQuizMessage
	}
	return strings.Join(pairs, "\n\n")
}

// fallbackFlashcards builds up to n cards: front is the first four words of
// a qualifying sentence title-cased, back is the full sentence. Sentences
// under minWords words or starting with a filler word are skipped.
func fallbackFlashcards(text string, n, minWords int, fillers []string) string {
	var cards []string
	for _, s := range splitSentences(text) {
		if wordCount(s) < minWords {
			continue
		}
		if hasFillerPrefix(s, fillers) {
			continue
		}
		words := strings.Fields(s)
		fw := frontWordCount
		if len(words) < fw {
			fw = len(words)
		}
		front := titleCase(strings.Join(words[:fw], " "))
		cards = append(cards, "Front: "+front+"\nBack: "+s)
		if len(cards) >= n {
			break
		}
	}
	if len(cards) == 0 {
		return noFlashcardsMessage
	}
	return strings.Join(cards, "\n\n")
}

// fallbackBullets renders the first n sentences as dash-prefixed lines.
// No length filter applies here.
func fallbackBullets(text string, n int) string {
	sentences := splitSentences(text)
	if len(sentences) > n {
		sentences = sentences[:n]
	}
	lines := make([]string, 0, len(sentences))
	for _, s := range sentences {
		lines = append(lines, "- "+s)
	}
	return strings.Join(lines, "\n")
}

// titleCase upper-cases the first letter of each word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
