package handler

import (
	"talentscope/internal/model"
	"talentscope/internal/usecase"
	"talentscope/internal/util"

	"github.com/gofiber/fiber/v2"
)

type LibraryHandler struct {
	uc   *usecase.LibraryUsecase
	chat *usecase.ChatUsecase
}

func NewLibraryHandler(uc *usecase.LibraryUsecase, chat *usecase.ChatUsecase) *LibraryHandler {
	return &LibraryHandler{uc: uc, chat: chat}
}

func (h *LibraryHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/cv-library", h.List)
	app.Post("/api/cv-library", h.Add)
	app.Get("/api/cv-library/:id", h.Get)
	app.Delete("/api/cv-library/:id", h.Delete)
	app.Get("/api/status", h.Status)
}

func (h *LibraryHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	candidates, pagination := h.uc.List(page, pageSize)
	_, bySource := h.uc.Counts()

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get CV library",
		Data:       candidates,
		Pagination: pagination,
		Meta: fiber.Map{
			"uploaded_count":  bySource[model.SourceUploaded],
			"generated_count": bySource[model.SourceGenerated],
		},
	})
}

func (h *LibraryHandler) Get(c *fiber.Ctx) error {
	candidate, ok := h.uc.Get(c.Params("id"))
	if !ok {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "candidate not found",
		})
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get candidate",
		Data:    candidate,
	})
}

func (h *LibraryHandler) Add(c *fiber.Ctx) error {
	var candidate model.Candidate
	if err := c.BodyParser(&candidate); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid candidate payload",
		}, err)
	}
	if candidate.Name == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "name is required",
		})
	}

	added := h.uc.Add(&candidate)

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Candidate added to library",
		Data:    added,
	})
}

func (h *LibraryHandler) Delete(c *fiber.Ctx) error {
	if !h.uc.Delete(c.Params("id")) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "candidate not found",
		})
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Candidate deleted",
	})
}

func (h *LibraryHandler) Status(c *fiber.Ctx) error {
	total, bySource := h.uc.Counts()

	aiStatus := "unavailable"
	if h.chat.AssistantAvailable() {
		aiStatus = "available"
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get status",
		Data: fiber.Map{
			"library": fiber.Map{
				"total":     total,
				"generated": bySource[model.SourceGenerated],
				"uploaded":  bySource[model.SourceUploaded],
			},
			"ai": fiber.Map{
				"status": aiStatus,
				"model":  h.chat.AssistantModel(),
			},
		},
	})
}
