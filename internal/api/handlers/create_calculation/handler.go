package create_calculation

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-DeadlineService/internal/api/handlers"
	createCalculation "github.com/m04kA/SMC-DeadlineService/internal/usecase/create_calculation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgIDAlreadySet       = "новая запись не может содержать ID"
	msgInvalidDateTime    = "некорректный формат startingDateTime, ожидается \"2024-03-01 9:30\""
	msgInvalidInterval    = "некорректный интервал рабочих минут"
)

type Handler struct {
	useCase CreateCalculationUseCase
	logger  Logger
}

func NewHandler(useCase CreateCalculationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/business-hours-calculators
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateCalculationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /business-hours-calculators - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createCalculation.ErrIDAlreadySet):
			h.logger.Warn("POST /business-hours-calculators - Client sent an id for a new record")
			handlers.SetErrorAlert(w, "idexists")
			handlers.RespondBadRequest(w, msgIDAlreadySet)

		case errors.Is(err, createCalculation.ErrInvalidStartingDateTime):
			h.logger.Warn("POST /business-hours-calculators - Invalid startingDateTime: %v", err)
			handlers.RespondBadRequest(w, fmt.Sprintf("%s: получено %q", msgInvalidDateTime, req.StartingDateTime))

		case errors.Is(err, createCalculation.ErrInvalidTimeInterval):
			h.logger.Warn("POST /business-hours-calculators - Invalid timeInterval: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("POST /business-hours-calculators - Failed to create calculation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /business-hours-calculators - Calculation created successfully: id=%d", result.ID)
	w.Header().Set("Location", fmt.Sprintf("/api/v1/business-hours-calculators/%d", result.ID))
	handlers.SetCreatedAlert(w, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
