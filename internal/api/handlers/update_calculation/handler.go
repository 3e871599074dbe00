package update_calculation

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-DeadlineService/internal/api/handlers"
	"github.com/m04kA/SMC-DeadlineService/internal/service/calculations"
	createCalculation "github.com/m04kA/SMC-DeadlineService/internal/usecase/create_calculation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "запись расчета не найдена"
	msgInvalidDateTime    = "некорректный формат startingDateTime, ожидается \"2024-03-01 9:30\""
	msgInvalidInterval    = "некорректный интервал рабочих минут"
)

type Handler struct {
	service CalculationService
	useCase CreateCalculationUseCase
	logger  Logger
}

func NewHandler(service CalculationService, useCase CreateCalculationUseCase, logger Logger) *Handler {
	return &Handler{
		service: service,
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/business-hours-calculators
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateCalculationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /business-hours-calculators - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Запрос без ID обрабатывается как создание новой записи
	if req.ID == nil {
		h.handleCreate(w, r, &req)
		return
	}

	// Запись сохраняется как пришла, пересчет вычисляемых полей не выполняется
	result, err := h.service.Update(r.Context(), *req.ID, req.ToUpdateData())
	if err != nil {
		switch {
		case errors.Is(err, calculations.ErrCalculationNotFound):
			h.logger.Warn("PUT /business-hours-calculators - Calculation not found: id=%d", *req.ID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /business-hours-calculators - Failed to update calculation: id=%d, error=%v", *req.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /business-hours-calculators - Calculation updated successfully: id=%d", result.ID)
	handlers.SetUpdatedAlert(w, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request, req *UpdateCalculationRequest) {
	result, err := h.useCase.Execute(r.Context(), req.ToCreateRequest())
	if err != nil {
		switch {
		case errors.Is(err, createCalculation.ErrInvalidStartingDateTime):
			h.logger.Warn("PUT /business-hours-calculators - Invalid startingDateTime: %v", err)
			handlers.RespondBadRequest(w, fmt.Sprintf("%s: получено %q", msgInvalidDateTime, req.StartingDateTime))

		case errors.Is(err, createCalculation.ErrInvalidTimeInterval):
			h.logger.Warn("PUT /business-hours-calculators - Invalid timeInterval: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("PUT /business-hours-calculators - Failed to create calculation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /business-hours-calculators - Calculation created via update: id=%d", result.ID)
	w.Header().Set("Location", fmt.Sprintf("/api/v1/business-hours-calculators/%d", result.ID))
	handlers.SetCreatedAlert(w, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
