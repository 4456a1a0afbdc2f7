package controller

import (
	"strconv"

	"neurostudy-be/internal/dto"
	"neurostudy-be/internal/pkg/serverutils"
	"neurostudy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IStudyController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
}

type studyController struct {
	studyService service.IStudyService
}

func NewStudyController(studyService service.IStudyService) IStudyController {
	return &studyController{
		studyService: studyService,
	}
}

func (c *studyController) RegisterRoutes(r fiber.Router) {
	r.Post("/study", c.Generate)
}

func (c *studyController) Generate(ctx *fiber.Ctx) error {
	var req dto.StudyRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if raw := ctx.Query("strict"); raw != "" {
		strict, err := strconv.ParseBool(raw)
		if err != nil {
			return serverutils.BadRequest("strict must be a boolean", err)
		}
		req.Strict = &strict
	}

	res, err := c.studyService.Generate(ctx.UserContext(), &req)
	if err != nil {
		return domainError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate study session", res))
}
