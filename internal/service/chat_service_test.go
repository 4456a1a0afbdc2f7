package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"neurostudy-be/internal/constant"
	"neurostudy-be/internal/dto"
	"neurostudy-be/internal/entity"
	"neurostudy-be/internal/pkg/logger"
	"neurostudy-be/internal/repository/memory"
	"neurostudy-be/pkg/llm"
	"neurostudy-be/pkg/rag/corpus"
	"neurostudy-be/pkg/rag/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatService(f *fixture) (IChatService, *memory.SessionRepository) {
	sessions := memory.NewSessionRepository()
	svc := NewChatService(
		corpus.NewAssembler(f.factory),
		f.llm,
		sessions,
		logger.NewNopLogger(),
		logger.NewNopLogger(),
	)
	return svc, sessions
}

func TestChatEmptyCorpusSkipsGeneration(t *testing.T) {
	for _, subject := range entity.Subjects() {
		t.Run(subject.String(), func(t *testing.T) {
			f := newFixture(t)
			svc, _ := newChatService(f)

			res, err := svc.Chat(context.Background(), &dto.ChatRequest{Message: "hi", Subject: subject.String()})
			require.NoError(t, err)

			assert.Equal(t, fmt.Sprintf(constant.EmptyCorpusChatMessage, subject), res.Text)
			assert.Equal(t, string(entity.ChatStateEmptyCorpus), res.State)
			assert.Empty(t, res.Error)
			assert.Equal(t, 0, f.llm.Calls())
		})
	}
}

func TestChatEndToEndPhysics(t *testing.T) {
	f := newFixture(t)
	f.seed(t, entity.SubjectPhysics, "notes.txt", "Newton's second law: F=ma")
	f.llm.reply = "F=ma is Newton's second law [notes.txt:1] Confidence: [HIGH]"
	svc, sessions := newChatService(f)

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{Message: "What is F=ma?", Subject: "Physics"})
	require.NoError(t, err)

	assert.Equal(t, "F=ma is Newton's second law [notes.txt:1] Confidence: [HIGH]", res.Text)
	assert.Equal(t, "F=ma is Newton's second law  Confidence: ", res.Speech)
	assert.Equal(t, []string{"notes.txt:1"}, res.Citations)
	assert.Equal(t, response.ConfidenceHigh, res.Confidence)
	assert.Equal(t, string(entity.ChatStateDone), res.State)
	assert.NotEmpty(t, res.SessionId)

	require.Equal(t, 1, f.llm.Calls())
	assert.Contains(t, f.llm.prompts[0], "Context:\nFile: notes.txt\nContent: Newton's second law: F=ma\n\nQuestion: What is F=ma?")
	assert.Contains(t, f.llm.prompts[0], "standard academic tone")
	assert.Equal(t, llm.FormatText, f.llm.formats[0])

	session, found := sessions.Get(res.SessionId)
	require.True(t, found)
	require.Len(t, session.Turns, 2)
	assert.Equal(t, entity.ChatRoleUser, session.Turns[0].Role)
	assert.Equal(t, res.Text, session.Turns[1].Content)
}

func TestChatFocusLevelPicksRegister(t *testing.T) {
	f := newFixture(t)
	f.seed(t, entity.SubjectMath, "m.txt", "2+2=4")
	f.llm.reply = "4"
	svc, _ := newChatService(f)

	low, high := 5, 500
	_, err := svc.Chat(context.Background(), &dto.ChatRequest{Message: "q", Subject: "Math", FocusLevel: &low})
	require.NoError(t, err)
	_, err = svc.Chat(context.Background(), &dto.ChatRequest{Message: "q", Subject: "Math", FocusLevel: &high})
	require.NoError(t, err)

	require.Len(t, f.llm.prompts, 2)
	assert.Contains(t, f.llm.prompts[0], "extremely simple words")
	assert.Contains(t, f.llm.prompts[1], "deep technical details")
}

func TestChatEmptyGenerationUsesFallback(t *testing.T) {
	f := newFixture(t)
	f.seed(t, entity.SubjectMath, "m.txt", "x")
	svc, _ := newChatService(f)

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{Message: "q", Subject: "Math"})
	require.NoError(t, err)
	assert.Equal(t, response.FallbackAnswer, res.Text)
	assert.Equal(t, string(entity.ChatStateDone), res.State)
}

func TestChatGenerationFailureIsReportedInline(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"missing credential", llm.ErrMissingCredential},
		{"remote failure", llm.NewGenerationError("fake", errors.New("503 from upstream"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.seed(t, entity.SubjectChemistry, "c.txt", "H2O")
			f.llm.err = tt.err
			svc, sessions := newChatService(f)

			res, err := svc.Chat(context.Background(), &dto.ChatRequest{Message: "q", Subject: "Chemistry", SessionId: "s-1"})
			require.NoError(t, err)

			assert.Equal(t, string(entity.ChatStateErrored), res.State)
			assert.Equal(t, tt.err.Error(), res.Error)
			assert.Empty(t, res.Text)
			assert.Equal(t, 1, f.llm.Calls())

			_, found := sessions.Get("s-1")
			assert.False(t, found)
		})
	}
}

func TestChatRejectsUnknownSubject(t *testing.T) {
	f := newFixture(t)
	svc, _ := newChatService(f)

	_, err := svc.Chat(context.Background(), &dto.ChatRequest{Message: "q", Subject: "Poetry"})
	assert.True(t, errors.Is(err, entity.ErrUnknownSubject))
	assert.Equal(t, 0, f.llm.Calls())
}

func TestChatSessions(t *testing.T) {
	f := newFixture(t)
	f.seed(t, entity.SubjectMath, "m.txt", "x")
	f.llm.reply = "answer"
	svc, _ := newChatService(f)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.Chat(ctx, &dto.ChatRequest{Message: fmt.Sprintf("q%d", i), Subject: "Math", SessionId: "abc"})
		require.NoError(t, err)
	}

	turns, err := svc.GetSession(ctx, "abc")
	require.NoError(t, err)
	require.Len(t, turns, 4)
	assert.Equal(t, "q1", turns[2].Content)

	require.NoError(t, svc.DeleteSession(ctx, "abc"))
	_, err = svc.GetSession(ctx, "abc")
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}

func TestChatRejectsSessionFromAnotherSubject(t *testing.T) {
	f := newFixture(t)
	f.seed(t, entity.SubjectPhysics, "p.txt", "F=ma")
	f.seed(t, entity.SubjectMath, "m.txt", "2+2=4")
	f.llm.reply = "answer"
	svc, sessions := newChatService(f)
	ctx := context.Background()

	_, err := svc.Chat(ctx, &dto.ChatRequest{Message: "q1", Subject: "Physics", SessionId: "shared"})
	require.NoError(t, err)

	_, err = svc.Chat(ctx, &dto.ChatRequest{Message: "q2", Subject: "Math", SessionId: "shared"})
	require.ErrorIs(t, err, ErrSessionSubjectMismatch)
	assert.Equal(t, 1, f.llm.Calls())

	session, found := sessions.Get("shared")
	require.True(t, found)
	assert.Equal(t, entity.SubjectPhysics, session.Subject)
	assert.Len(t, session.Turns, 2)

	// same subject keeps appending
	_, err = svc.Chat(ctx, &dto.ChatRequest{Message: "q3", Subject: "Physics", SessionId: "shared"})
	require.NoError(t, err)
	session, _ = sessions.Get("shared")
	assert.Len(t, session.Turns, 4)
}
