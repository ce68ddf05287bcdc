package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"os-scheduler/config"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	EarliestDeadline(ctx *fiber.Ctx) error
	MultilevelQueue(ctx *fiber.Ctx) error
	ByName(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, logger: logger}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityScheduling)
}

func (s *SchedulerHandlerImpl) EarliestDeadline(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.EarliestDeadline)
}

func (s *SchedulerHandlerImpl) MultilevelQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.MultilevelQueue)
}

// ByName serves /simulate/:policy.
func (s *SchedulerHandlerImpl) ByName(ctx *fiber.Ctx) error {
	policy, err := schedulers.ParsePolicy(ctx.Params("policy"))
	if err != nil {
		s.logger.Warn("rejected simulation", "error", err)
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return s.schedule(ctx, policy)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, ok, err := s.parse(ctx)
	if !ok {
		return err
	}
	response, err := schedulers.SimulateAll(request.Processes(), request.Params(s.config.LowerIsHigherPriority))
	if err != nil {
		return s.fail(ctx, err)
	}
	s.logger.Info("simulated all policies", "processes", len(request.Jobs))
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, policy schedulers.Policy) error {
	request, ok, err := s.parse(ctx)
	if !ok {
		return err
	}
	response, err := schedulers.Simulate(request.Processes(), policy, request.Params(s.config.LowerIsHigherPriority))
	if err != nil {
		return s.fail(ctx, err)
	}
	s.logger.Info("simulated", "run_id", response.RunId, "policy", response.Algorithm, "processes", len(request.Jobs))
	return ctx.JSON(response)
}

// parse decodes and count-checks the body. When ok is false the error
// response has already been written and err is what the handler returns.
func (s *SchedulerHandlerImpl) parse(ctx *fiber.Ctx) (request requests.ScheduleRequests, ok bool, err error) {
	if err := ctx.BodyParser(&request); err != nil {
		s.logger.Warn("rejected simulation", "error", err)
		return request, false, ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	if err := request.Validate(s.config.MinProcesses, s.config.MaxProcesses); err != nil {
		return request, false, s.fail(ctx, err)
	}
	return request, true, nil
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, schedulers.ErrInvalidInput),
		errors.Is(err, requests.ErrTooFewProcesses),
		errors.Is(err, requests.ErrTooManyProcesses),
		errors.Is(err, requests.ErrDuplicateId):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, schedulers.ErrUnknownPolicy):
		status = fiber.StatusNotFound
	}
	if status == fiber.StatusInternalServerError {
		s.logger.Error("simulation failed", "error", err)
	} else {
		s.logger.Warn("rejected simulation", "error", err)
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
