package controller

import (
	"fmt"

	"neurostudy-be/internal/constant"
	"neurostudy-be/internal/dto"
	"neurostudy-be/internal/pkg/serverutils"
	"neurostudy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	UploadBatch(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
}

type documentController struct {
	documentService service.IDocumentService
}

func NewDocumentController(documentService service.IDocumentService) IDocumentController {
	return &documentController{
		documentService: documentService,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	r.Post("/upload", c.Upload)
	r.Post("/upload/batch", c.UploadBatch)
	r.Get("/documents/:subject", c.List)
	r.Get("/search", c.Search)
}

func (c *documentController) Upload(ctx *fiber.Ctx) error {
	var req dto.UploadDocumentRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.documentService.Upload(ctx.UserContext(), &req)
	if err != nil {
		return domainError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse(fmt.Sprintf(constant.UploadSuccessMessage, req.Filename, req.Subject), res))
}

func (c *documentController) UploadBatch(ctx *fiber.Ctx) error {
	var req dto.UploadBatchRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.documentService.UploadBatch(ctx.UserContext(), &req)
	if err != nil {
		return domainError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse(fmt.Sprintf("Successfully indexed %d documents", len(res.Ids)), res))
}

func (c *documentController) List(ctx *fiber.Ctx) error {
	res, err := c.documentService.List(ctx.UserContext(), ctx.Params("subject"))
	if err != nil {
		return domainError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get documents", res))
}

func (c *documentController) Search(ctx *fiber.Ctx) error {
	var req dto.SearchDocumentsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return serverutils.BadRequest("Invalid query", err)
	}

	res, err := c.documentService.Search(ctx.UserContext(), req.Subject, req.Query)
	if err != nil {
		return domainError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search documents", res))
}
