package controller

import (
	"neurostudy-be/internal/entity"
	"neurostudy-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type ISubjectController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type subjectController struct{}

func NewSubjectController() ISubjectController {
	return &subjectController{}
}

func (c *subjectController) RegisterRoutes(r fiber.Router) {
	r.Get("/subjects", c.List)
}

func (c *subjectController) List(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get subjects", entity.Subjects()))
}
