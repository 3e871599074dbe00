package get_calculations

import (
	"net/http"

	"github.com/m04kA/SMC-DeadlineService/internal/api/handlers"
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

// Handle GET /api/v1/business-hours-calculators
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Список отдается с рабочими часами в отображаемом виде
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /business-hours-calculators - Failed to list calculations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /business-hours-calculators - Retrieved %d calculations", len(result.Calculations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
