package generate

import "notegend/pkg/types"

// Instruction templates prepended to the source text. The quiz and
// flashcard wording is strict on purpose: the cleaner depends on the
// labeled two-line block format it demands.
var promptTemplates = map[types.OutputKind]string{
	types.KindNotes: "Convert the following lecture into detailed, complete study notes. " +
		"Write full paragraphs. Do not summarize. Do not truncate.\n\n",
	types.KindQuiz: "Create real-world quiz questions based on the text.\n" +
		"Rules:\n" +
		"- Ask clear questions like in exams\n" +
		"- Answers must directly answer the question\n" +
		"- Do NOT repeat the same sentence\n" +
		"Format strictly as:\n" +
		"Q: <question>\nA: <answer>\n\n",
	types.KindFlashcards: "Create study flashcards.\n" +
		"Rules:\n" +
		"- Front = short concept title (2-6 words)\n" +
		"- Back = clear explanation\n" +
		"- No pronouns, no 'Explain', no notes\n" +
		"Format strictly as:\n" +
		"Front: <concept>\nBack: <explanation>\n\n",
	types.KindBullets: "Summarize the following lecture into bullet points:\n\n",
}

// promptFor returns the template for kind; unknown kinds get the notes
// template.
func promptFor(kind types.OutputKind) string {
	if t, ok := promptTemplates[kind]; ok {
		return t
	}
	return promptTemplates[types.KindNotes]
}
