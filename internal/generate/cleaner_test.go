package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanQuiz_KeepsValidBlocksOnly(t *testing.T) {
	raw := "Q: What is 2+2?\nA: 4\n\nrandom junk"
	assert.Equal(t, "Q: What is 2+2?\nA: 4", CleanQuiz(raw))
}

func TestCleanQuiz_Idempotent(t *testing.T) {
	inputs := []string{
		"Q: What is 2+2?\nA: 4\n\nrandom junk",
		"Q: One?\nA: 1\n\nQ: Two?\nA: 2",
		"no structure at all",
		"",
		"Q: question without answer",
	}
	for _, raw := range inputs {
		once := CleanQuiz(raw)
		twice := CleanQuiz(once)
		assert.Equal(t, once, twice, "input %q", raw)
	}
}

func TestCleanQuiz_ReturnsRawWhenNothingValidates(t *testing.T) {
	raw := "completely unstructured model rambling"
	assert.Equal(t, raw, CleanQuiz(raw))
	assert.NotEmpty(t, CleanQuiz(raw))
}

func TestCleanQuiz_NormalizesMultilineBlocks(t *testing.T) {
	raw := "Some preamble\nQ: What color is the sky?\nA: Blue\nextra trailing line"
	assert.Equal(t, "Q: What color is the sky?\nA: Blue", CleanQuiz(raw))
}

func TestCleanFlashcards_RejectsLongFronts(t *testing.T) {
	raw := "Front: Mitochondria\nBack: Organelle that produces ATP\n\n" +
		"Front: A very long winded front exceeding the six word limit\nBack: too wordy"
	got := CleanFlashcards(raw)
	assert.Equal(t, "Front: Mitochondria\nBack: Organelle that produces ATP", got)
}

func TestCleanFlashcards_RejectsFillerFronts(t *testing.T) {
	raw := "Front: This concept\nBack: vague\n\n" +
		"Front: Explain osmosis\nBack: also vague\n\n" +
		"Front: Osmosis\nBack: Diffusion of water across a membrane"
	got := CleanFlashcards(raw)
	assert.Equal(t, "Front: Osmosis\nBack: Diffusion of water across a membrane", got)
}

func TestCleanFlashcards_FillerMatchIsCaseInsensitive(t *testing.T) {
	raw := "Front: HOWEVER important\nBack: x\n\nFront: Photosynthesis\nBack: y"
	assert.Equal(t, "Front: Photosynthesis\nBack: y", CleanFlashcards(raw))
}

func TestCleanFlashcards_ReturnsRawWhenNothingSurvives(t *testing.T) {
	raw := "Front: This one is filler led\nBack: x"
	assert.Equal(t, raw, CleanFlashcards(raw))
}

func TestCleanFlashcards_Idempotent(t *testing.T) {
	raw := "Front: Osmosis\nBack: Water diffusion\n\nFront: It depends\nBack: filler"
	once := CleanFlashcards(raw)
	assert.Equal(t, once, CleanFlashcards(once))
}
