package bootstrap

import (
	"context"
	"fmt"

	"neurostudy-be/internal/config"
	"neurostudy-be/internal/constant"
	"neurostudy-be/internal/controller"
	"neurostudy-be/internal/pkg/logger"
	"neurostudy-be/internal/repository/memory"
	"neurostudy-be/internal/repository/unitofwork"
	"neurostudy-be/internal/service"
	"neurostudy-be/pkg/llm/factory"
	pktNats "neurostudy-be/pkg/nats"
	"neurostudy-be/pkg/rag/corpus"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	DocumentController controller.IDocumentController
	NoteController     controller.INoteController
	ChatController     controller.IChatController
	StudyController    controller.IStudyController
	SubjectController  controller.ISubjectController

	// Services, also driven directly by the CLI
	DocumentService service.IDocumentService
	NoteService     service.INoteService
	ChatService     service.IChatService
	StudyService    service.IStudyService
	Assembler       *corpus.Assembler

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) (*Container, error) {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	llmLogger := logger.NewIsolatedLogger(cfg.App.LLMLogFilePath)

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)

	c := &Container{Logger: sysLogger}
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	var sinks []service.EventSink
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "NATS relay disabled", map[string]interface{}{"error": err.Error()})
		} else {
			sinks = append(sinks, natsPub)
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// 3. Generation client
	llmProvider, err := factory.NewLLMProvider(factory.ProviderConfig{
		Provider:      cfg.Ai.LLMProvider,
		Model:         cfg.Ai.LLMModel,
		APIKey:        cfg.Ai.GeminiAPIKey,
		OllamaBaseURL: cfg.Ai.OllamaBaseURL,
		Timeout:       cfg.Ai.RequestTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM provider: %w", err)
	}
	sysLogger.Info("BOOTSTRAP", "LLM provider ready", map[string]interface{}{
		"provider": llmProvider.Name(),
		"model":    cfg.Ai.LLMModel,
		"timeout":  cfg.Ai.RequestTimeout.String(),
	})

	// 4. Services
	sessionRepo := memory.NewSessionRepository()
	assembler := corpus.NewAssembler(uowFactory)
	c.Assembler = assembler

	publisherService := service.NewPublisherService(constant.StudyEventsTopic, pubSub)
	c.ConsumerService = service.NewConsumerService(pubSub, constant.StudyEventsTopic, sysLogger, sinks...)

	c.DocumentService = service.NewDocumentService(uowFactory, publisherService, sysLogger)
	c.NoteService = service.NewNoteService(uowFactory, publisherService, sysLogger)
	c.ChatService = service.NewChatService(assembler, llmProvider, sessionRepo, sysLogger, llmLogger)
	c.StudyService = service.NewStudyService(assembler, llmProvider, publisherService, cfg.Study.StrictJSON, sysLogger, llmLogger)

	// 5. Controllers
	c.DocumentController = controller.NewDocumentController(c.DocumentService)
	c.NoteController = controller.NewNoteController(c.NoteService)
	c.ChatController = controller.NewChatController(c.ChatService)
	c.StudyController = controller.NewStudyController(c.StudyService)
	c.SubjectController = controller.NewSubjectController()

	c.closers = append(c.closers, func() {
		_ = llmLogger.Sync()
		_ = sysLogger.Sync()
	})

	return c, nil
}

// StartBackground runs the event consumer until ctx ends.
func (c *Container) StartBackground(ctx context.Context) error {
	return c.ConsumerService.Consume(ctx)
}

// Close releases the bus, the NATS connection and flushes the logs.
func (c *Container) Close() {
	for _, closeFn := range c.closers {
		closeFn()
	}
}
