package service

import (
	"context"
	"sync"
	"testing"

	"neurostudy-be/internal/entity"
	"neurostudy-be/internal/pkg/testutil"
	"neurostudy-be/internal/repository/unitofwork"
	"neurostudy-be/pkg/events"
	"neurostudy-be/pkg/llm"

	"github.com/stretchr/testify/require"
)

// fakeLLM counts calls so tests can prove no network call happened.
type fakeLLM struct {
	mu      sync.Mutex
	calls   int
	prompts []string
	formats []llm.ResponseFormat
	reply   string
	err     error
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return f.Generate(ctx, history[len(history)-1].Content, options...)
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.prompts = append(f.prompts, prompt)
	f.formats = append(f.formats, llm.ApplyOptions(options...).Format)
	return f.reply, f.err
}

func (f *fakeLLM) Name() string { return "fake" }

func (f *fakeLLM) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type capturePublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *capturePublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *capturePublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.EventType()
	}
	return out
}

type fixture struct {
	factory   unitofwork.RepositoryFactory
	llm       *fakeLLM
	publisher *capturePublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{
		factory:   unitofwork.NewRepositoryFactory(testutil.DB(t)),
		llm:       &fakeLLM{},
		publisher: &capturePublisher{},
	}
}

func (f *fixture) seed(t *testing.T, subject entity.Subject, filename, content string) {
	t.Helper()
	doc := entity.Document{Subject: subject, Filename: filename, Content: content}
	require.NoError(t, f.factory.NewUnitOfWork(context.Background()).DocumentRepository().Create(context.Background(), &doc))
}
