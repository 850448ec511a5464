package get_student_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdvisingService/internal/api/handlers"
	"github.com/m04kA/SMC-AdvisingService/internal/service/bookings"
)

const (
	queryStudentName = "name"

	msgMissingStudentName = "student name is required"
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

// Handle GET /api/v1/students/{studentName}/appointments
// Handle GET /api/v1/students/appointments?name={studentName}
// Имя сравнивается без учета регистра; пустой список - не ошибка.
// Имена со слешем передаются только через query-параметр
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studentName, ok := mux.Vars(r)["studentName"]
	if !ok {
		studentName = r.URL.Query().Get(queryStudentName)
	}

	result, err := h.service.FindByStudent(r.Context(), studentName)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /students/{name}/appointments - Empty student name")
			handlers.RespondBadRequest(w, msgMissingStudentName)

		default:
			h.logger.Error("GET /students/{name}/appointments - Failed to find appointments: student=%q, error=%v",
				studentName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /students/{name}/appointments - Appointments found: student=%q, count=%d",
		studentName, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
