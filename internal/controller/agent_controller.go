package controller

import (
	"errors"

	"ai-strategy-agent-be/internal/dto"
	"ai-strategy-agent-be/internal/pkg/serverutils"
	"ai-strategy-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAgentController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	GetAllSessions(ctx *fiber.Ctx) error
	GetChatHistory(ctx *fiber.Ctx) error
	SendChat(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	GetSectionsStatus(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
}

type agentController struct {
	agentService service.IAgentService
}

func NewAgentController(agentService service.IAgentService) IAgentController {
	return &agentController{
		agentService: agentService,
	}
}

func (c *agentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/agent/v1/:agentKey")
	h.Use(serverutils.JwtMiddleware)
	h.Post("session", c.CreateSession)
	h.Get("sessions", c.GetAllSessions)
	h.Get("history/:sessionId", c.GetChatHistory)
	h.Post("chat", c.SendChat)
	h.Delete("session/:sessionId", c.DeleteSession)
	h.Get("sections-status", c.GetSectionsStatus)
	h.Post("export", c.Export)
}

func identity(ctx *fiber.Ctx) (uuid.UUID, int64) {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	remoteUserId, _ := ctx.Locals("remote_user_id").(int64)
	return userId, remoteUserId
}

func (c *agentController) CreateSession(ctx *fiber.Ctx) error {
	userId, remoteUserId := identity(ctx)
	agentKey := ctx.Params("agentKey")

	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.agentService.CreateSession(ctx.Context(), agentKey, userId, remoteUserId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *agentController) GetAllSessions(ctx *fiber.Ctx) error {
	userId, _ := identity(ctx)
	agentKey := ctx.Params("agentKey")

	res, err := c.agentService.GetAllSessions(ctx.Context(), agentKey, userId,
		ctx.QueryInt("limit"), ctx.QueryInt("offset"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get sessions", res))
}

func (c *agentController) GetChatHistory(ctx *fiber.Ctx) error {
	userId, _ := identity(ctx)

	sessionId, err := uuid.Parse(ctx.Params("sessionId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	res, err := c.agentService.GetChatHistory(ctx.Context(), userId, sessionId,
		ctx.QueryInt("limit"), ctx.QueryInt("offset"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}

func (c *agentController) SendChat(ctx *fiber.Ctx) error {
	userId, remoteUserId := identity(ctx)
	agentKey := ctx.Params("agentKey")

	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.agentService.SendChat(ctx.Context(), agentKey, userId, remoteUserId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *agentController) DeleteSession(ctx *fiber.Ctx) error {
	userId, _ := identity(ctx)

	sessionId, err := uuid.Parse(ctx.Params("sessionId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	if err := c.agentService.DeleteSession(ctx.Context(), userId, sessionId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete session", nil))
}

func (c *agentController) GetSectionsStatus(ctx *fiber.Ctx) error {
	userId, remoteUserId := identity(ctx)
	agentKey := ctx.Params("agentKey")

	res, err := c.agentService.GetSectionsStatus(ctx.Context(), agentKey, userId, remoteUserId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get sections status", res))
}

func (c *agentController) Export(ctx *fiber.Ctx) error {
	_, remoteUserId := identity(ctx)
	agentKey := ctx.Params("agentKey")

	res, err := c.agentService.Export(ctx.Context(), agentKey, remoteUserId)
	if err != nil {
		if errors.Is(err, service.ErrExportNotReady) {
			return fiber.NewError(fiber.StatusConflict,
				"We still have a few sections to finish together before I can put your export together. Let's complete them first!")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success export", res))
}
