package controller

import (
	"neurostudy-be/internal/dto"
	"neurostudy-be/internal/pkg/serverutils"
	"neurostudy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Post("", c.Chat)
	h.Get("sessions/:id", c.GetSession)
	h.Delete("sessions/:id", c.DeleteSession)
}

// Chat answers 200 even when generation failed; see ChatResponse.Error.
func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.chatService.Chat(ctx.UserContext(), &req)
	if err != nil {
		return domainError(err)
	}

	message := "Success chat"
	if res.Error != "" {
		message = "AI Error"
	}
	return ctx.JSON(serverutils.SuccessResponse(message, res))
}

func (c *chatController) GetSession(ctx *fiber.Ctx) error {
	res, err := c.chatService.GetSession(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return domainError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat session", res))
}

func (c *chatController) DeleteSession(ctx *fiber.Ctx) error {
	if err := c.chatService.DeleteSession(ctx.UserContext(), ctx.Params("id")); err != nil {
		return domainError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete chat session", nil))
}
