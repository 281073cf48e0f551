package handler

import (
	"bytes"
	"fmt"

	"github.com/evandrarf/mathplay-be/internal/delivery/http/domain"
	"github.com/evandrarf/mathplay-be/internal/delivery/http/entity"
	"github.com/evandrarf/mathplay-be/internal/delivery/http/usecase"
	"github.com/evandrarf/mathplay-be/internal/pkg/export"
	"github.com/evandrarf/mathplay-be/internal/pkg/mapper"
	"github.com/evandrarf/mathplay-be/internal/pkg/response"
	"github.com/evandrarf/mathplay-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	ScoreHandler interface {
		List(ctx *fiber.Ctx) error
		Save(ctx *fiber.Ctx) error
		Export(ctx *fiber.Ctx) error
		Report(ctx *fiber.Ctx) error
	}

	scoreHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.ScoreUsecase
	}
)

func NewScoreHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.ScoreUsecase) ScoreHandler {
	return &scoreHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// GET /scores?topic=addition
func (h *scoreHandler) List(ctx *fiber.Ctx) error {
	var req entity.ListScoresRequest
	if err := h.validator.ParseQueryAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.SCORE_LIST_FAILED, err, h.logger).Send(ctx)
	}

	scores, err := h.usecase.ListScores(ctx.UserContext(), req.Topic)
	if err != nil {
		return response.NewFailed(domain.SCORE_LIST_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.SCORE_LIST_SUCCESS, mapper.ToScoreResponses(scores), fiber.Map{
		"count": len(scores),
	}).Send(ctx)
}

// POST /score
func (h *scoreHandler) Save(ctx *fiber.Ctx) error {
	var req entity.SaveScoreRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.SCORE_SAVE_FAILED, err, h.logger).Send(ctx)
	}

	record, err := h.usecase.SaveScore(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.SCORE_SAVE_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewCreated(domain.SCORE_SAVE_SUCCESS, mapper.ToScoreResponse(*record)).Send(ctx)
}

// GET /scores/export
func (h *scoreHandler) Export(ctx *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.usecase.ExportScores(ctx.UserContext(), &buf); err != nil {
		return response.NewFailed(domain.SCORE_EXPORT_FAILED, err, h.logger).Send(ctx)
	}

	ctx.Set(fiber.HeaderContentType, export.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, "mathplay-scores.xlsx"))
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// GET /report
func (h *scoreHandler) Report(ctx *fiber.Ctx) error {
	report, err := h.usecase.Report(ctx.UserContext())
	if err != nil {
		return response.NewFailed(domain.REPORT_GET_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.REPORT_GET_SUCCESS, report, nil).Send(ctx)
}
