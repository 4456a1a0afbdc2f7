package corpus

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"neurostudy-be/internal/entity"
	"neurostudy-be/internal/repository/specification"
	"neurostudy-be/internal/repository/unitofwork"
)

const (
	ChatSeparator = "\n\n---\n\n"
	QuizSeparator = "\n\n"
)

// ErrEmptyCorpus means the subject has no documents at all, which is not the
// same as documents with empty content.
var ErrEmptyCorpus = errors.New("no documents for subject")

// Assembler turns every document of a subject into one context string.
// There is no chunking or ranking: all rows, insertion order.
type Assembler struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAssembler(uowFactory unitofwork.RepositoryFactory) *Assembler {
	return &Assembler{uowFactory: uowFactory}
}

func (a *Assembler) documents(ctx context.Context, subject entity.Subject) ([]*entity.Document, error) {
	uow := a.uowFactory.NewUnitOfWork(ctx)
	docs, err := uow.DocumentRepository().FindAll(ctx,
		specification.BySubject{Subject: string(subject)},
		specification.InsertionOrder{},
	)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w %s", ErrEmptyCorpus, subject)
	}
	return docs, nil
}

// AssembleChat labels each document with its filename.
func (a *Assembler) AssembleChat(ctx context.Context, subject entity.Subject) (string, int, error) {
	docs, err := a.documents(ctx, subject)
	if err != nil {
		return "", 0, err
	}
	return FormatChatContext(docs), len(docs), nil
}

// AssembleQuiz joins raw contents only. Unlike the chat context it carries
// no filename labels.
func (a *Assembler) AssembleQuiz(ctx context.Context, subject entity.Subject) (string, int, error) {
	docs, err := a.documents(ctx, subject)
	if err != nil {
		return "", 0, err
	}
	return FormatQuizContext(docs), len(docs), nil
}

func FormatChatContext(docs []*entity.Document) string {
	parts := make([]string, len(docs))
	for i, d := range docs {
		parts[i] = "File: " + d.Filename + "\nContent: " + d.Content
	}
	return strings.Join(parts, ChatSeparator)
}

func FormatQuizContext(docs []*entity.Document) string {
	parts := make([]string, len(docs))
	for i, d := range docs {
		parts[i] = d.Content
	}
	return strings.Join(parts, QuizSeparator)
}
