package service

import (
	"context"
	"errors"
	"fmt"

	"neurostudy-be/internal/constant"
	"neurostudy-be/internal/dto"
	"neurostudy-be/internal/entity"
	"neurostudy-be/internal/pkg/logger"
	"neurostudy-be/internal/repository/memory"
	"neurostudy-be/pkg/llm"
	"neurostudy-be/pkg/rag/corpus"
	"neurostudy-be/pkg/rag/prompt"
	"neurostudy-be/pkg/rag/response"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound        = errors.New("chat session not found")
	ErrSessionSubjectMismatch = errors.New("chat session belongs to another subject")
)

type IChatService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
	GetSession(ctx context.Context, sessionId string) ([]*dto.ChatTurnResponse, error)
	DeleteSession(ctx context.Context, sessionId string) error
}

type chatService struct {
	assembler   *corpus.Assembler
	llmProvider llm.LLMProvider
	sessionRepo *memory.SessionRepository
	logger      logger.ILogger
	llmLogger   logger.ILogger
}

func NewChatService(
	assembler *corpus.Assembler,
	llmProvider llm.LLMProvider,
	sessionRepo *memory.SessionRepository,
	log logger.ILogger,
	llmLogger logger.ILogger,
) IChatService {
	return &chatService{
		assembler:   assembler,
		llmProvider: llmProvider,
		sessionRepo: sessionRepo,
		logger:      log,
		llmLogger:   llmLogger,
	}
}

// chatRun tracks one request through the chat state machine.
type chatRun struct {
	sessionId string
	subject   entity.Subject
	state     entity.ChatState
	log       logger.ILogger
}

func (r *chatRun) to(state entity.ChatState, details map[string]interface{}) {
	if details == nil {
		details = map[string]interface{}{}
	}
	details["session_id"] = r.sessionId
	details["subject"] = r.subject.String()
	details["from"] = string(r.state)
	r.state = state
	r.log.Debug("CHAT", string(state), details)
}

// Chat only returns an error for bad input or storage failures. Generation
// failures end in ChatStateErrored with the message in the response.
func (s *chatService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	subject, err := entity.ParseSubject(req.Subject)
	if err != nil {
		return nil, err
	}

	sessionId := req.SessionId
	if sessionId == "" {
		sessionId = uuid.NewString()
	} else if existing, found := s.sessionRepo.Get(sessionId); found && existing.Subject != subject {
		return nil, fmt.Errorf("%w: session %s is %s", ErrSessionSubjectMismatch, sessionId, existing.Subject)
	}
	run := &chatRun{sessionId: sessionId, subject: subject, state: entity.ChatStateIdle, log: s.llmLogger}
	res := &dto.ChatResponse{SessionId: sessionId}

	run.to(entity.ChatStateFetchingCorpus, nil)
	corpusText, documents, err := s.assembler.AssembleChat(ctx, subject)
	if errors.Is(err, corpus.ErrEmptyCorpus) {
		run.to(entity.ChatStateEmptyCorpus, nil)
		res.Text = fmt.Sprintf(constant.EmptyCorpusChatMessage, subject)
		res.Speech = response.SpeechText(res.Text)
		res.State = string(run.state)
		s.record(sessionId, subject, req.Message, res.Text)
		return res, nil
	}
	if err != nil {
		return nil, err
	}

	focus := prompt.DefaultFocusLevel
	if req.FocusLevel != nil {
		focus = *req.FocusLevel
	}
	promptText := prompt.BuildChat(subject, corpusText, req.Message, focus)

	run.to(entity.ChatStateGenerating, map[string]interface{}{
		"documents":    documents,
		"prompt_chars": len(promptText),
		"focus_level":  prompt.ClampFocus(focus),
		"provider":     s.llmProvider.Name(),
	})
	raw, err := s.llmProvider.Generate(ctx, promptText)
	if err != nil {
		run.to(entity.ChatStateErrored, map[string]interface{}{"error": err.Error()})
		s.logger.Error("CHAT", "Generation failed", map[string]interface{}{"subject": subject.String(), "error": err.Error()})
		res.Error = err.Error()
		res.State = string(run.state)
		return res, nil
	}

	run.to(entity.ChatStateParsing, map[string]interface{}{"raw_chars": len(raw)})
	answer := response.ChatAnswer(raw)
	res.Text = answer
	res.Speech = response.SpeechText(answer)
	res.Citations = response.Citations(answer)
	res.Confidence = response.Confidence(answer)

	run.to(entity.ChatStateDone, nil)
	res.State = string(run.state)
	s.record(sessionId, subject, req.Message, answer)

	return res, nil
}

func (s *chatService) record(sessionId string, subject entity.Subject, question, answer string) {
	s.sessionRepo.AppendTurns(sessionId, subject,
		entity.ChatTurn{Role: entity.ChatRoleUser, Content: question},
		entity.ChatTurn{Role: entity.ChatRoleAssistant, Content: answer},
	)
}

func (s *chatService) GetSession(ctx context.Context, sessionId string) ([]*dto.ChatTurnResponse, error) {
	session, found := s.sessionRepo.Get(sessionId)
	if !found {
		return nil, ErrSessionNotFound
	}

	res := make([]*dto.ChatTurnResponse, 0, len(session.Turns))
	for _, turn := range session.Turns {
		res = append(res, &dto.ChatTurnResponse{Role: turn.Role, Content: turn.Content})
	}
	return res, nil
}

func (s *chatService) DeleteSession(ctx context.Context, sessionId string) error {
	s.sessionRepo.Delete(sessionId)
	return nil
}
