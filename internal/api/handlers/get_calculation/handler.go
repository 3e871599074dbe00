package get_calculation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeadlineService/internal/api/handlers"
	"github.com/m04kA/SMC-DeadlineService/internal/service/calculations"
)

const (
	msgInvalidCalculationID = "некорректный ID записи расчета"
	msgNotFound             = "запись расчета не найдена"
)

type Handler struct {
	service CalculationService
	logger  Logger
}

func NewHandler(service CalculationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/business-hours-calculators/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем id из URL
	vars := mux.Vars(r)
	idStr := vars["id"]

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /business-hours-calculators/{id} - Invalid calculation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCalculationID)
		return
	}

	// Возвращаем запись как она хранится, без форматирования рабочих часов
	calc, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, calculations.ErrCalculationNotFound):
			h.logger.Warn("GET /business-hours-calculators/{id} - Calculation not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /business-hours-calculators/{id} - Failed to get calculation: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /business-hours-calculators/{id} - Calculation retrieved successfully: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, calc)
}
