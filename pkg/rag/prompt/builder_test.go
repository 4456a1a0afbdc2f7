package prompt

import (
	"strings"
	"testing"

	"neurostudy-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestRegisterFor(t *testing.T) {
	tests := []struct {
		level int
		want  Register
	}{
		{-20, RegisterSimplified},
		{0, RegisterSimplified},
		{39, RegisterSimplified},
		{40, RegisterAcademic},
		{DefaultFocusLevel, RegisterAcademic},
		{70, RegisterAcademic},
		{71, RegisterTechnical},
		{100, RegisterTechnical},
		{250, RegisterTechnical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RegisterFor(tt.level), "level %d", tt.level)
	}
}

func TestBuildChatLayout(t *testing.T) {
	ctx := "File: notes.txt\nContent: Newton's second law: F=ma"
	got := BuildChat(entity.SubjectPhysics, ctx, "What is F=ma?", 50)

	assert.True(t, strings.HasPrefix(got, "System: You are AskmyNote, a specialist in Physics."))
	assert.True(t, strings.HasSuffix(got, "\n\nContext:\n"+ctx+"\n\nQuestion: What is F=ma?"))
	assert.Contains(t, got, `say "Not found in Physics"`)
	assert.Contains(t, got, `"filename:chunk"`)
	assert.Contains(t, got, "[HIGH/MEDIUM/LOW]")
	assert.Contains(t, got, "Include 3 relevant snippets")
}

func TestBuildChatEmbedsExactlyOneRegister(t *testing.T) {
	registers := map[Register]string{
		RegisterSimplified: adaptation(RegisterSimplified),
		RegisterAcademic:   adaptation(RegisterAcademic),
		RegisterTechnical:  adaptation(RegisterTechnical),
	}

	for _, level := range []int{10, 55, 90} {
		got := BuildChat(entity.SubjectMath, "ctx", "q", level)
		want := RegisterFor(level)
		for r, line := range registers {
			if r == want {
				assert.Contains(t, got, line, "level %d", level)
			} else {
				assert.NotContains(t, got, line, "level %d", level)
			}
		}
	}
}

func TestBuildQuiz(t *testing.T) {
	got := BuildQuiz(entity.SubjectChemistry, "atoms\n\nbonds")

	assert.True(t, strings.HasPrefix(got, "Context:\natoms\n\nbonds\n\nBased on the following content for Chemistry"))
	assert.Contains(t, got, "5 Multiple Choice Questions (MCQs) with 4 options each")
	assert.Contains(t, got, "3 Short Answer Questions")
	assert.Contains(t, got, `"mcqs"`)
	assert.Contains(t, got, `"short"`)
}
