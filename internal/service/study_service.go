package service

import (
	"context"
	"errors"

	"neurostudy-be/internal/constant"
	"neurostudy-be/internal/dto"
	"neurostudy-be/internal/entity"
	"neurostudy-be/internal/pkg/logger"
	"neurostudy-be/pkg/events"
	"neurostudy-be/pkg/llm"
	"neurostudy-be/pkg/rag/corpus"
	"neurostudy-be/pkg/rag/prompt"
	"neurostudy-be/pkg/rag/response"
)

// ErrNoStudyMaterials is the hard failure for a study session on an empty subject.
var ErrNoStudyMaterials = errors.New(constant.EmptyCorpusStudyMessage)

type IStudyService interface {
	Generate(ctx context.Context, req *dto.StudyRequest) (*dto.StudyResponse, error)
}

type studyService struct {
	assembler        *corpus.Assembler
	llmProvider      llm.LLMProvider
	publisherService IPublisherService
	strictDefault    bool
	logger           logger.ILogger
	llmLogger        logger.ILogger
}

func NewStudyService(
	assembler *corpus.Assembler,
	llmProvider llm.LLMProvider,
	publisherService IPublisherService,
	strictDefault bool,
	log logger.ILogger,
	llmLogger logger.ILogger,
) IStudyService {
	return &studyService{
		assembler:        assembler,
		llmProvider:      llmProvider,
		publisherService: publisherService,
		strictDefault:    strictDefault,
		logger:           log,
		llmLogger:        llmLogger,
	}
}

// Generate fails before any network call when the subject has no documents.
// Malformed model output degrades to an empty session unless strict is on.
func (s *studyService) Generate(ctx context.Context, req *dto.StudyRequest) (*dto.StudyResponse, error) {
	subject, err := entity.ParseSubject(req.Subject)
	if err != nil {
		return nil, err
	}

	strict := s.strictDefault
	if req.Strict != nil {
		strict = *req.Strict
	}

	corpusText, documents, err := s.assembler.AssembleQuiz(ctx, subject)
	if errors.Is(err, corpus.ErrEmptyCorpus) {
		s.llmLogger.Debug("STUDY", "empty corpus", map[string]interface{}{"subject": subject.String()})
		return nil, ErrNoStudyMaterials
	}
	if err != nil {
		return nil, err
	}

	promptText := prompt.BuildQuiz(subject, corpusText)
	s.llmLogger.Debug("STUDY", "generating", map[string]interface{}{
		"subject":      subject.String(),
		"documents":    documents,
		"prompt_chars": len(promptText),
		"provider":     s.llmProvider.Name(),
	})

	raw, err := s.llmProvider.Generate(ctx, promptText, llm.WithJSONResponse())
	if err != nil {
		s.logger.Error("STUDY", "Generation failed", map[string]interface{}{"subject": subject.String(), "error": err.Error()})
		return nil, err
	}

	parsed := response.ParseStudySession(raw)
	s.llmLogger.Debug("STUDY", "parsing", map[string]interface{}{
		"subject":     subject.String(),
		"raw_chars":   len(raw),
		"malformed":   parsed.Malformed,
		"diagnostics": parsed.Diagnostics,
	})
	if len(parsed.Diagnostics) > 0 {
		s.logger.Warn("STUDY", "Generated session needed coercion", map[string]interface{}{
			"subject":     subject.String(),
			"malformed":   parsed.Malformed,
			"diagnostics": parsed.Diagnostics,
		})
	}
	if strict && parsed.Malformed {
		return nil, parsed.Err()
	}

	publishEvent(ctx, s.publisherService, s.logger, events.New(events.TypeStudySessionGenerated, map[string]interface{}{
		"subject":   subject.String(),
		"mcqs":      len(parsed.Session.MCQs),
		"short":     len(parsed.Session.Short),
		"malformed": parsed.Malformed,
	}))

	return &dto.StudyResponse{
		StudySession: parsed.Session,
		Diagnostics:  parsed.Diagnostics,
	}, nil
}
