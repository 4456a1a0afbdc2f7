package prompt

import (
	"fmt"
	"strings"

	"neurostudy-be/internal/entity"
)

const (
	DefaultFocusLevel = 65

	simplifiedBelow = 40
	technicalAbove  = 70
)

// Register is the tone the chat answer is asked to use.
type Register string

const (
	RegisterSimplified Register = "simplified"
	RegisterAcademic   Register = "academic"
	RegisterTechnical  Register = "technical"
)

// ClampFocus keeps focus levels inside 0..100.
func ClampFocus(level int) int {
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}
	return level
}

func RegisterFor(focusLevel int) Register {
	level := ClampFocus(focusLevel)
	switch {
	case level < simplifiedBelow:
		return RegisterSimplified
	case level > technicalAbove:
		return RegisterTechnical
	default:
		return RegisterAcademic
	}
}

// ChatInstructions is the system part of the grounded Q&A prompt.
func ChatInstructions(subject entity.Subject, focusLevel int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are AskmyNote, a specialist in %s.\n", subject)
	b.WriteString("Answer ONLY from the evidence provided in the context.\n")
	fmt.Fprintf(&b, "If the answer is not in the context, say \"Not found in %s\".\n\n", subject)

	b.WriteString("CRITICAL FORMATTING:\n")
	b.WriteString("1. Every answer must cite the source as \"filename:chunk\".\n")
	b.WriteString("2. Provide a Confidence level: [HIGH/MEDIUM/LOW].\n")
	b.WriteString("3. Include 3 relevant snippets from the text.\n\n")

	b.WriteString("ADAPTATION:\n")
	b.WriteString(adaptation(RegisterFor(focusLevel)))

	return b.String()
}

func adaptation(r Register) string {
	switch r {
	case RegisterSimplified:
		return "Use extremely simple words, short sentences, and basic analogies."
	case RegisterTechnical:
		return "Provide deep technical details, complex comparisons, and advanced concepts."
	default:
		return "Use a standard academic tone."
	}
}

// BuildChat never sees an empty corpus; the caller short-circuits first.
func BuildChat(subject entity.Subject, context, question string, focusLevel int) string {
	var b strings.Builder

	b.WriteString("System: ")
	b.WriteString(ChatInstructions(subject, focusLevel))
	b.WriteString("\n\nContext:\n")
	b.WriteString(context)
	b.WriteString("\n\nQuestion: ")
	b.WriteString(question)

	return b.String()
}

func QuizInstructions(subject entity.Subject) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Based on the following content for %s, generate:\n", subject)
	fmt.Fprintf(&b, "1. %d Multiple Choice Questions (MCQs) with %d options each and the correct answer.\n",
		entity.StudyMCQCount, entity.StudyOptionCount)
	fmt.Fprintf(&b, "2. %d Short Answer Questions.\n\n", entity.StudyShortCount)

	b.WriteString("Format as JSON:\n")
	b.WriteString("{\n")
	b.WriteString("  \"mcqs\": [{\"question\": \"\", \"options\": [\"\", \"\", \"\", \"\"], \"answer\": index}],\n")
	b.WriteString("  \"short\": [{\"question\": \"\", \"answer\": \"\"}]\n")
	b.WriteString("}")

	return b.String()
}

func BuildQuiz(subject entity.Subject, context string) string {
	return "Context:\n" + context + "\n\n" + QuizInstructions(subject)
}
