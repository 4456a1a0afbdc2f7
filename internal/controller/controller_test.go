package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"neurostudy-be/internal/pkg/logger"
	"neurostudy-be/internal/pkg/serverutils"
	"neurostudy-be/internal/pkg/testutil"
	"neurostudy-be/internal/repository/memory"
	"neurostudy-be/internal/repository/unitofwork"
	"neurostudy-be/internal/service"
	"neurostudy-be/pkg/llm"
	"neurostudy-be/pkg/rag/corpus"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type stubLLM struct {
	mu    sync.Mutex
	calls int
	reply string
	err   error
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.Generate(ctx, "", options...)
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.reply, s.err
}

func (s *stubLLM) Name() string { return "stub" }

type testApp struct {
	app *fiber.App
	llm *stubLLM
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	factory := unitofwork.NewRepositoryFactory(testutil.DB(t))
	nop := logger.NewNopLogger()
	stub := &stubLLM{}
	assembler := corpus.NewAssembler(factory)

	app := fiber.New(fiber.Config{ErrorHandler: serverutils.ErrorHandler})
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")

	NewDocumentController(service.NewDocumentService(factory, nil, nop)).RegisterRoutes(api)
	NewNoteController(service.NewNoteService(factory, nil, nop)).RegisterRoutes(api)
	NewChatController(service.NewChatService(assembler, stub, memory.NewSessionRepository(), nop, nop)).RegisterRoutes(api)
	NewStudyController(service.NewStudyService(assembler, stub, nil, false, nop, nop)).RegisterRoutes(api)
	NewSubjectController().RegisterRoutes(api)

	return &testApp{app: app, llm: stub}
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (a *testApp) do(t *testing.T, method, path string, body interface{}) (int, envelope) {
	t.Helper()

	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func decodeData(t *testing.T, env envelope, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}
