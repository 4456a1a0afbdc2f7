package service

import (
	"context"

	"neurostudy-be/internal/dto"
	"neurostudy-be/internal/entity"
	"neurostudy-be/internal/pkg/logger"
	"neurostudy-be/internal/repository/specification"
	"neurostudy-be/internal/repository/unitofwork"
	"neurostudy-be/pkg/events"
)

type INoteService interface {
	List(ctx context.Context, subject string) ([]*dto.NoteResponse, error)
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error)
	Delete(ctx context.Context, id uint) error
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           log,
	}
}

// List is newest first.
func (c *noteService) List(ctx context.Context, subject string) ([]*dto.NoteResponse, error) {
	parsed, err := entity.ParseSubject(subject)
	if err != nil {
		return nil, err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.BySubject{Subject: parsed.String()},
		specification.NewestFirst{},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		res = append(res, &dto.NoteResponse{
			Id:        n.Id,
			Subject:   n.Subject.String(),
			Title:     n.Title,
			Content:   n.Content,
			CreatedAt: n.CreatedAt,
		})
	}
	return res, nil
}

func (c *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error) {
	subject, err := entity.ParseSubject(req.Subject)
	if err != nil {
		return nil, err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	note := entity.Note{
		Subject: subject,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	publishEvent(ctx, c.publisherService, c.logger, events.New(events.TypeNoteCreated, map[string]interface{}{
		"note_id": note.Id,
		"subject": subject.String(),
		"title":   note.Title,
	}))

	return &dto.CreateNoteResponse{Id: note.Id}, nil
}

// Delete succeeds for unknown ids; only a real removal emits NOTE_DELETED.
func (c *noteService) Delete(ctx context.Context, id uint) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		return err
	}
	if existing == nil {
		return nil
	}

	publishEvent(ctx, c.publisherService, c.logger, events.New(events.TypeNoteDeleted, map[string]interface{}{
		"note_id": id,
		"subject": existing.Subject.String(),
	}))
	return nil
}
