package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"talentscope/internal/config"
	"talentscope/internal/dto"
	"talentscope/internal/middleware"
	"talentscope/internal/usecase"
	"talentscope/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxGenerateCount = 50

type UploadHandler struct {
	uc *usecase.IngestUsecase
}

func NewUploadHandler(uc *usecase.IngestUsecase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

func (h *UploadHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/upload-cv", middleware.RateLimiter(10, 1*time.Minute), h.Upload)
	app.Post("/api/generate-cvs", h.Generate)
}

func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "file is required",
		}, err)
	}

	if strings.ToLower(filepath.Ext(file.Filename)) != ".pdf" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "only PDF files are supported",
		})
	}

	cfg := config.LoadUploadConfig()
	if file.Size > cfg.MaxSizeMB*1024*1024 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("file size is too large (max %dMB)", cfg.MaxSizeMB),
		})
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot prepare upload directory",
		}, err)
	}

	savePath := filepath.Join(cfg.Dir, uuid.NewString()+".pdf")
	if err := c.SaveFile(file, savePath); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot save file",
		}, err)
	}

	candidate := h.uc.ProcessUpload(file.Filename, savePath)
	candidateDTO := dto.FromCandidate(candidate)

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "CV uploaded and processed",
		Data:    candidateDTO,
	})
}

func (h *UploadHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if req.Count < 1 || req.Count > maxGenerateCount {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("count must be between 1 and %d", maxGenerateCount),
		})
	}

	generated := h.uc.GenerateBatch(req.Count)

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: fmt.Sprintf("Generated %d candidate profiles", len(generated)),
		Data:    dto.FromCandidates(generated),
	})
}
