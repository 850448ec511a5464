package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-AdvisingService/internal/usecase/create_booking"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	StudentName string `json:"studentName"`
	Course      string `json:"course"`
	Date        string `json:"date"` // "August 11, 2025"
	Time        string `json:"time"` // "8:00 AM"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	StudentName     string `json:"studentName"`
	Course          string `json:"course"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	CreatedAt       string `json:"createdAt"`
	SlotAvailable   int    `json:"slotAvailable"`
	CourseAvailable int    `json:"courseAvailable"`
	DateFullyBooked bool   `json:"dateFullyBooked"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		StudentName: r.StudentName,
		Course:      r.Course,
		Date:        r.Date,
		Time:        r.Time,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		StudentName:     resp.StudentName,
		Course:          resp.Course,
		Date:            resp.Date,
		Time:            resp.Time,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		SlotAvailable:   resp.SlotAvailable,
		CourseAvailable: resp.CourseAvailable,
		DateFullyBooked: resp.DateFullyBooked,
	}
}
