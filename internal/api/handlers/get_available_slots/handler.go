package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AdvisingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-AdvisingService/internal/usecase/get_available_slots"
)

const (
	msgDateNotFound = "date is not offered"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (опционально, например "August 11, 2025")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrDateNotFound):
			h.logger.Warn("GET /availability - Date not found: date=%q", date)
			handlers.RespondNotFound(w, msgDateNotFound)

		default:
			h.logger.Error("GET /availability - Failed to get availability: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Availability retrieved: courses=%d, dates=%d",
		len(result.Courses), len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
