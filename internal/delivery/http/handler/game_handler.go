package handler

import (
	"github.com/evandrarf/mathplay-be/internal/delivery/http/domain"
	"github.com/evandrarf/mathplay-be/internal/delivery/http/entity"
	"github.com/evandrarf/mathplay-be/internal/delivery/http/usecase"
	"github.com/evandrarf/mathplay-be/internal/game"
	"github.com/evandrarf/mathplay-be/internal/pkg/mapper"
	"github.com/evandrarf/mathplay-be/internal/pkg/response"
	"github.com/evandrarf/mathplay-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	GameHandler interface {
		Topics(ctx *fiber.Ctx) error
		Generate(ctx *fiber.Ctx) error
		Start(ctx *fiber.Ctx) error
		Get(ctx *fiber.Ctx) error
		SubmitAnswer(ctx *fiber.Ctx) error
		Tap(ctx *fiber.Ctx) error
		ChangeDifficulty(ctx *fiber.Ctx) error
		ChangeTopic(ctx *fiber.Ctx) error
		End(ctx *fiber.Ctx) error
	}

	gameHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.GameUsecase
	}
)

func NewGameHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.GameUsecase) GameHandler {
	return &gameHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// GET /topics
func (h *gameHandler) Topics(ctx *fiber.Ctx) error {
	topics, err := h.usecase.Topics(ctx.UserContext())
	if err != nil {
		return response.NewFailed(domain.TOPIC_LIST_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.TOPIC_LIST_SUCCESS, mapper.ToTopicResponses(topics), nil).Send(ctx)
}

// GET /questions/generate?topic=addition&difficulty=easy&count=1&includeAnswer=false
func (h *gameHandler) Generate(ctx *fiber.Ctx) error {
	var req entity.GenerateQuestionsRequest
	if err := h.validator.ParseQueryAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.QUESTION_GENERATE_FAILED, err, h.logger).Send(ctx)
	}

	topic, _ := game.ParseTopic(req.Topic)
	questions := h.usecase.Generate(topic, game.ParseDifficulty(req.Difficulty), req.Count)

	return response.NewSuccess(domain.QUESTION_GENERATE_SUCCESS, mapper.ToQuestionResponses(questions, req.IncludeAnswer), fiber.Map{
		"count": len(questions),
	}).Send(ctx)
}

// POST /games
func (h *gameHandler) Start(ctx *fiber.Ctx) error {
	var req entity.StartGameRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.GAME_START_FAILED, err, h.logger).Send(ctx)
	}

	state, err := h.usecase.Start(ctx.UserContext(), req.Topic, game.ParseDifficulty(req.Difficulty))
	if err != nil {
		return response.NewFailed(domain.GAME_START_FAILED, gameError(err), h.logger).Send(ctx)
	}

	return response.NewCreated(domain.GAME_START_SUCCESS, mapper.ToGameStateResponse(state)).Send(ctx)
}

// GET /games/:id
func (h *gameHandler) Get(ctx *fiber.Ctx) error {
	state, err := h.usecase.Get(ctx.Params("id"))
	if err != nil {
		return response.NewFailed(domain.GAME_GET_FAILED, gameError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.GAME_GET_SUCCESS, mapper.ToGameStateResponse(state), nil).Send(ctx)
}

// POST /games/:id/answer
func (h *gameHandler) SubmitAnswer(ctx *fiber.Ctx) error {
	var req entity.SubmitAnswerRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.GAME_ANSWER_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.Submit(ctx.Params("id"), *req.Answer)
	if err != nil {
		return response.NewFailed(domain.GAME_ANSWER_FAILED, gameError(err), h.logger).Send(ctx)
	}

	msg := domain.GAME_ANSWER_SUCCESS
	if !result.Accepted {
		msg = domain.GAME_ANSWER_IGNORED
	}
	return response.NewSuccess(msg, mapper.ToSubmitAnswerResponse(result), nil).Send(ctx)
}

// POST /games/:id/tap
func (h *gameHandler) Tap(ctx *fiber.Ctx) error {
	var req entity.TapRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.GAME_TAP_FAILED, err, h.logger).Send(ctx)
	}

	state, err := h.usecase.Tap(ctx.Params("id"), *req.Index)
	if err != nil {
		return response.NewFailed(domain.GAME_TAP_FAILED, gameError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.GAME_TAP_SUCCESS, mapper.ToGameStateResponse(state), nil).Send(ctx)
}

// PUT /games/:id/difficulty
func (h *gameHandler) ChangeDifficulty(ctx *fiber.Ctx) error {
	var req entity.ChangeDifficultyRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.GAME_DIFFICULTY_FAILED, err, h.logger).Send(ctx)
	}

	state, err := h.usecase.SetDifficulty(ctx.Params("id"), game.Difficulty(req.Difficulty))
	if err != nil {
		return response.NewFailed(domain.GAME_DIFFICULTY_FAILED, gameError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.GAME_DIFFICULTY_SUCCESS, mapper.ToGameStateResponse(state), nil).Send(ctx)
}

// PUT /games/:id/topic
func (h *gameHandler) ChangeTopic(ctx *fiber.Ctx) error {
	var req entity.ChangeTopicRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.GAME_TOPIC_FAILED, err, h.logger).Send(ctx)
	}

	state, err := h.usecase.SetTopic(ctx.UserContext(), ctx.Params("id"), req.Topic)
	if err != nil {
		return response.NewFailed(domain.GAME_TOPIC_FAILED, gameError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.GAME_TOPIC_SUCCESS, mapper.ToGameStateResponse(state), nil).Send(ctx)
}

// DELETE /games/:id
func (h *gameHandler) End(ctx *fiber.Ctx) error {
	summary, err := h.usecase.End(ctx.Params("id"))
	if err != nil {
		return response.NewFailed(domain.GAME_END_FAILED, gameError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.GAME_END_SUCCESS, mapper.ToGameSummaryResponse(summary), nil).Send(ctx)
}
