package get_course_details

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdvisingService/internal/api/handlers"
	"github.com/m04kA/SMC-AdvisingService/internal/service/bookings"
)

const (
	msgCourseNotFound = "course not found"
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

// Handle GET /api/v1/faculty/courses/{courseName}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courseName := mux.Vars(r)["courseName"]

	details, err := h.service.CourseDetails(r.Context(), courseName)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrCourseNotFound):
			h.logger.Warn("GET /faculty/courses/{name} - Course not found: course=%q", courseName)
			handlers.RespondNotFound(w, msgCourseNotFound)

		default:
			h.logger.Error("GET /faculty/courses/{name} - Failed to get course details: course=%q, error=%v",
				courseName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /faculty/courses/{name} - Course details retrieved: course=%q, booked=%d",
		courseName, details.BookedSlots)
	handlers.RespondJSON(w, http.StatusOK, details)
}
