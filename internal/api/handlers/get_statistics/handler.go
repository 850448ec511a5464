package get_statistics

import (
	"net/http"

	"github.com/m04kA/SMC-AdvisingService/internal/api/handlers"
)

type Handler struct {
	service StatisticsService
	logger  Logger
}

func NewHandler(service StatisticsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/faculty/statistics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("GET /faculty/statistics - Failed to build statistics: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /faculty/statistics - Statistics retrieved: total=%d", stats.TotalBooked)
	handlers.RespondJSON(w, http.StatusOK, stats)
}
