package get_calculations_report

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-DeadlineService/internal/api/handlers"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	reportFileName  = "business-hours-calculations.xlsx"
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

// Handle GET /api/v1/business-hours-calculators/report
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Отчет собирается в буфер, чтобы ошибка не ушла клиенту обрезанным файлом
	var buf bytes.Buffer
	if err := h.service.WriteReport(r.Context(), &buf); err != nil {
		h.logger.Error("GET /business-hours-calculators/report - Failed to build report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /business-hours-calculators/report - Report built, %d bytes", buf.Len())

	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", "attachment; filename="+reportFileName)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
