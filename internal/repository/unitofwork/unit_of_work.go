package unitofwork

import (
	"context"

	"neurostudy-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	DocumentRepository() contract.DocumentRepository
	NoteRepository() contract.NoteRepository
}
