package handler

import (
	"strings"
	"time"

	"talentscope/internal/dto"
	"talentscope/internal/middleware"
	"talentscope/internal/usecase"
	"talentscope/internal/util"

	"github.com/gofiber/fiber/v2"
)

type ChatHandler struct {
	uc *usecase.ChatUsecase
}

func NewChatHandler(uc *usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

func (h *ChatHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/chat", middleware.RateLimiter(20, 1*time.Minute), h.Chat)
}

func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if strings.TrimSpace(req.Message) == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "message is required",
		})
	}

	result := h.uc.Answer(c.UserContext(), req.Message)

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success",
		Data:    result,
	})
}
