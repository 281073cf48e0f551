package handler

import (
	"strings"

	"github.com/evandrarf/mathplay-be/internal/delivery/http/domain"
	"github.com/evandrarf/mathplay-be/internal/delivery/http/entity"
	"github.com/evandrarf/mathplay-be/internal/delivery/http/usecase"
	"github.com/evandrarf/mathplay-be/internal/pkg/response"
	"github.com/evandrarf/mathplay-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	FeedbackHandler interface {
		Save(ctx *fiber.Ctx) error
		SaveCartoon(ctx *fiber.Ctx) error
	}

	feedbackHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.FeedbackUsecase
	}
)

func NewFeedbackHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.FeedbackUsecase) FeedbackHandler {
	return &feedbackHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /feedback
func (h *feedbackHandler) Save(ctx *fiber.Ctx) error {
	var req entity.FeedbackRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.FEEDBACK_SAVE_FAILED, err, h.logger).Send(ctx)
	}

	record, err := h.usecase.SaveFeedback(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.FEEDBACK_SAVE_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewCreated(domain.FEEDBACK_SAVE_SUCCESS, entity.FeedbackResponse{ID: record.ID}).Send(ctx)
}

// POST /cartoon-feedback
func (h *feedbackHandler) SaveCartoon(ctx *fiber.Ctx) error {
	var req entity.CartoonFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return response.NewFailed(domain.CARTOON_FEEDBACK_SAVE_FAILED, fiber.NewError(fiber.StatusBadRequest, "Request body is not valid"), h.logger).Send(ctx)
	}

	// blank names and ages count as missing
	req.ChildName = strings.TrimSpace(req.ChildName)
	req.Age = strings.TrimSpace(req.Age)
	if err := h.validator.Validate(&req); err != nil {
		return response.NewFailed(domain.CARTOON_FEEDBACK_SAVE_FAILED, err, h.logger).Send(ctx)
	}

	record, err := h.usecase.SaveCartoonFeedback(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.CARTOON_FEEDBACK_SAVE_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewCreated(domain.CARTOON_FEEDBACK_SAVE_SUCCESS, entity.FeedbackResponse{ID: record.ID}).Send(ctx)
}
