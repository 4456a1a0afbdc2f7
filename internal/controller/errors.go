package controller

import (
	"errors"

	"neurostudy-be/internal/entity"
	"neurostudy-be/internal/pkg/serverutils"
	"neurostudy-be/internal/service"
	"neurostudy-be/pkg/llm"
	"neurostudy-be/pkg/rag/response"

	"github.com/gofiber/fiber/v2"
)

// domainError attaches an HTTP status to errors the services return.
// Anything unrecognised is handed back unchanged and ends up a 500.
func domainError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, entity.ErrUnknownSubject), errors.Is(err, service.ErrSessionSubjectMismatch):
		return serverutils.BadRequest(err.Error(), err)
	case errors.Is(err, service.ErrSessionNotFound):
		return serverutils.NewAppError(fiber.StatusNotFound, err.Error(), err)
	case errors.Is(err, service.ErrNoStudyMaterials):
		return serverutils.NewAppError(fiber.StatusNotFound, err.Error(), err)
	case errors.Is(err, llm.ErrMissingCredential):
		return serverutils.NewAppError(fiber.StatusServiceUnavailable, err.Error(), err)
	case llm.IsGenerationError(err), errors.Is(err, response.ErrMalformedGenerationOutput):
		return serverutils.NewAppError(fiber.StatusBadGateway, err.Error(), err)
	default:
		return err
	}
}

func parseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return serverutils.BadRequest("Invalid request body", err)
	}
	return serverutils.ValidateRequest(out)
}
