package contract

import (
	"context"

	"neurostudy-be/internal/entity"
	"neurostudy-be/internal/repository/specification"
)

// DocumentRepository is append-only: documents are never updated or deleted.
type DocumentRepository interface {
	Create(ctx context.Context, document *entity.Document) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Document, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
