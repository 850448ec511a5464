package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AdvisingService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-AdvisingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownCourse      = "selected course does not exist"
	msgUnknownSlot        = "selected date and time do not exist"
	msgInvalidInput       = "student name, course, date and time are required"
	msgCourseFull         = "this course is fully booked"
	msgSlotFull           = "this time slot is fully booked, please choose another time"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		// ErrCourseNotFound и ErrSlotNotFound оборачивают ErrInvalidInput, поэтому проверяются раньше
		switch {
		case errors.Is(err, createBooking.ErrCourseNotFound):
			h.logger.Warn("POST /appointments - Unknown course: course=%q", req.Course)
			handlers.RespondBadRequest(w, msgUnknownCourse)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /appointments - Unknown slot: date=%q, time=%q", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgUnknownSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrCourseFull):
			h.logger.Warn("POST /appointments - Course full: course=%q", req.Course)
			handlers.RespondConflict(w, msgCourseFull)

		case errors.Is(err, createBooking.ErrSlotFull):
			h.logger.Warn("POST /appointments - Slot full: date=%q, time=%q", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotFull)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: student=%q, error=%v",
				req.StudentName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%d, course=%q, date=%q, time=%q",
		result.ID, result.Course, result.Date, result.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
