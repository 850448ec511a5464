package get_course_details

import (
	"context"

	"github.com/m04kA/SMC-AdvisingService/internal/service/bookings/models"
)

type BookingService interface {
	CourseDetails(ctx context.Context, courseName string) (*models.CourseDetailsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
