package get_student_bookings

import (
	"context"

	"github.com/m04kA/SMC-AdvisingService/internal/service/bookings/models"
)

type BookingService interface {
	FindByStudent(ctx context.Context, studentName string) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
