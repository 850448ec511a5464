package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AdvisingService/internal/domain"
)

// normalizeRequest обрезает пробелы во всех полях запроса
func normalizeRequest(req *Request) *Request {
	return &Request{
		StudentName: strings.TrimSpace(req.StudentName),
		Course:      strings.TrimSpace(req.Course),
		Date:        strings.TrimSpace(req.Date),
		Time:        strings.TrimSpace(req.Time),
	}
}

// validateRequest проверяет наличие обязательных полей
func validateRequest(req *Request) error {
	if req.StudentName == "" {
		return fmt.Errorf("%w: studentName is required", ErrInvalidInput)
	}

	if req.Course == "" {
		return fmt.Errorf("%w: course is required", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	return nil
}

// isDateFullyBooked проверяет, что во всех слотах даты нет свободных мест
func isDateFullyBooked(slots []*domain.DateTimeSlot) bool {
	for _, s := range slots {
		if s.AvailableSlots() > 0 {
			return false
		}
	}
	return true
}
