package get_all_bookings

import (
	"context"

	"github.com/m04kA/SMC-AdvisingService/internal/service/bookings/models"
)

type BookingService interface {
	ListAll(ctx context.Context) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
