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

type IDocumentService interface {
	Upload(ctx context.Context, req *dto.UploadDocumentRequest) (*dto.UploadDocumentResponse, error)
	UploadBatch(ctx context.Context, req *dto.UploadBatchRequest) (*dto.UploadBatchResponse, error)
	List(ctx context.Context, subject string) ([]*dto.DocumentResponse, error)
	Search(ctx context.Context, subject, query string) ([]*dto.DocumentResponse, error)
}

type documentService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IDocumentService {
	return &documentService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           log,
	}
}

func toDocument(req *dto.UploadDocumentRequest) (*entity.Document, error) {
	subject, err := entity.ParseSubject(req.Subject)
	if err != nil {
		return nil, err
	}
	return &entity.Document{
		Subject:  subject,
		Filename: req.Filename,
		Content:  req.Content,
		Metadata: req.Metadata,
	}, nil
}

func (s *documentService) uploaded(ctx context.Context, doc *entity.Document) {
	s.logger.Info("DOCUMENT", "Document indexed", map[string]interface{}{
		"id": doc.Id, "subject": doc.Subject, "filename": doc.Filename, "bytes": len(doc.Content),
	})
	publishEvent(ctx, s.publisherService, s.logger, events.New(events.TypeDocumentUploaded, map[string]interface{}{
		"document_id": doc.Id,
		"subject":     doc.Subject.String(),
		"filename":    doc.Filename,
	}))
}

// Upload is not idempotent: the same file twice gives two rows.
func (s *documentService) Upload(ctx context.Context, req *dto.UploadDocumentRequest) (*dto.UploadDocumentResponse, error) {
	doc, err := toDocument(req)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.DocumentRepository().Create(ctx, doc); err != nil {
		return nil, err
	}

	s.uploaded(ctx, doc)

	return &dto.UploadDocumentResponse{Id: doc.Id}, nil
}

// UploadBatch stores every document or none.
func (s *documentService) UploadBatch(ctx context.Context, req *dto.UploadBatchRequest) (*dto.UploadBatchResponse, error) {
	docs := make([]*entity.Document, 0, len(req.Documents))
	for i := range req.Documents {
		doc, err := toDocument(&req.Documents[i])
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	for _, doc := range docs {
		if err := uow.DocumentRepository().Create(ctx, doc); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	ids := make([]uint, len(docs))
	for i, doc := range docs {
		ids[i] = doc.Id
		s.uploaded(ctx, doc)
	}

	return &dto.UploadBatchResponse{Ids: ids}, nil
}

func toDocumentResponses(docs []*entity.Document) []*dto.DocumentResponse {
	res := make([]*dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		res = append(res, &dto.DocumentResponse{
			Id:       d.Id,
			Filename: d.Filename,
			Content:  d.Content,
			Metadata: d.Metadata,
		})
	}
	return res
}

func (s *documentService) List(ctx context.Context, subject string) ([]*dto.DocumentResponse, error) {
	parsed, err := entity.ParseSubject(subject)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	docs, err := uow.DocumentRepository().FindAll(ctx,
		specification.BySubject{Subject: parsed.String()},
		specification.InsertionOrder{},
	)
	if err != nil {
		return nil, err
	}

	return toDocumentResponses(docs), nil
}

// Search returns an empty list for an empty query without touching storage.
func (s *documentService) Search(ctx context.Context, subject, query string) ([]*dto.DocumentResponse, error) {
	if query == "" {
		return []*dto.DocumentResponse{}, nil
	}

	parsed, err := entity.ParseSubject(subject)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	docs, err := uow.DocumentRepository().FindAll(ctx,
		specification.BySubject{Subject: parsed.String()},
		specification.DocumentSearchQuery{Query: query},
		specification.InsertionOrder{},
	)
	if err != nil {
		return nil, err
	}

	res := toDocumentResponses(docs)
	for _, d := range res {
		d.Metadata = nil
	}
	return res, nil
}
