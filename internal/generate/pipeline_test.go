package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notegend/pkg/types"
)

type fakeCompleter struct {
	out       string
	err       error
	gotPrompt string
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.gotPrompt = prompt
	return f.out, f.err
}

func newTestGenerator(c completer) *Generator {
	return New(Config{Completer: c})
}

func TestGenerate_EmptyInputSentinel(t *testing.T) {
	g := newTestGenerator(&fakeCompleter{out: "ignored"})
	for _, text := range []string{"", "   ", "\n\t"} {
		out, fallback := g.Generate(context.Background(), text, types.KindNotes)
		assert.Equal(t, noInputMessage, out)
		assert.False(t, fallback)
	}
}

func TestGenerate_NeverEmptyEvenWhenRemoteDown(t *testing.T) {
	text := strings.Repeat(longSentence+" ", 3)
	g := newTestGenerator(&fakeCompleter{err: errors.New("connection refused")})
	for _, kind := range []types.OutputKind{types.KindNotes, types.KindQuiz, types.KindFlashcards, types.KindBullets} {
		out, fallback := g.Generate(context.Background(), text, kind)
		require.NotEmpty(t, out, "kind %s", kind)
		assert.True(t, fallback, "kind %s", kind)
	}
}

func TestGenerate_NotesFallbackReturnsInputUnchanged(t *testing.T) {
	g := newTestGenerator(&fakeCompleter{err: errors.New("timeout")})
	out, fallback := g.Generate(context.Background(), "original lecture text", types.KindNotes)
	assert.Equal(t, "original lecture text", out)
	assert.True(t, fallback)
}

func TestGenerate_BulletsFallbackScenario(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= 10; i++ {
		fmt.Fprintf(&sb, "Fact number %d is stated here. ", i)
	}
	g := newTestGenerator(&fakeCompleter{err: errors.New("remote timed out")})
	out, fallback := g.Generate(context.Background(), sb.String(), types.KindBullets)
	require.True(t, fallback)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "- Fact number 1 is stated here.", lines[0])
	assert.Equal(t, "- Fact number 8 is stated here.", lines[7])
}

func TestGenerate_QuizOutputIsCleaned(t *testing.T) {
	c := &fakeCompleter{out: "Sure! Here is your quiz:\n\nQ: What is ATP?\nA: Energy currency\n\nHope this helps!"}
	g := newTestGenerator(c)
	out, fallback := g.Generate(context.Background(), "some lecture", types.KindQuiz)
	assert.False(t, fallback)
	assert.Equal(t, "Q: What is ATP?\nA: Energy currency", out)
}

func TestGenerate_FlashcardsOutputIsCleaned(t *testing.T) {
	c := &fakeCompleter{out: "Front: ATP\nBack: Energy currency\n\nFront: This is a filler led front\nBack: x"}
	g := newTestGenerator(c)
	out, _ := g.Generate(context.Background(), "some lecture", types.KindFlashcards)
	assert.Equal(t, "Front: ATP\nBack: Energy currency", out)
}

func TestGenerate_NotesPassThrough(t *testing.T) {
	c := &fakeCompleter{out: "long prose notes"}
	g := newTestGenerator(c)
	out, fallback := g.Generate(context.Background(), "lecture", types.KindNotes)
	assert.False(t, fallback)
	assert.Equal(t, "long prose notes", out)
}

func TestGenerate_UnknownKindUsesNotesTemplate(t *testing.T) {
	c := &fakeCompleter{out: "whatever"}
	g := newTestGenerator(c)
	_, _ = g.Generate(context.Background(), "lecture", types.OutputKind("mindmap"))
	assert.True(t, strings.HasPrefix(c.gotPrompt, promptTemplates[types.KindNotes]))
	assert.True(t, strings.HasSuffix(c.gotPrompt, "lecture"))
}

func TestGenerate_PromptIsTemplatePlusText(t *testing.T) {
	c := &fakeCompleter{out: "whatever"}
	g := newTestGenerator(c)
	_, _ = g.Generate(context.Background(), "cells divide", types.KindQuiz)
	assert.Equal(t, promptTemplates[types.KindQuiz]+"cells divide", c.gotPrompt)
}
