package get_all_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-AdvisingService/internal/api/handlers"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/faculty/appointments
// Записи отсортированы по дате, затем по времени в порядке каталога
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /faculty/appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /faculty/appointments - Appointments listed: count=%d", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
