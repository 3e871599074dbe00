package delete_calculation

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeadlineService/internal/api/handlers"
)

const msgInvalidCalculationID = "некорректный ID записи расчета"

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

// Handle DELETE /api/v1/business-hours-calculators/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем id из URL
	vars := mux.Vars(r)
	idStr := vars["id"]

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /business-hours-calculators/{id} - Invalid calculation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCalculationID)
		return
	}

	// Удаление отсутствующей записи не считается ошибкой
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("DELETE /business-hours-calculators/{id} - Failed to delete calculation: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /business-hours-calculators/{id} - Calculation deleted successfully: id=%d", id)
	handlers.SetDeletedAlert(w, id)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
