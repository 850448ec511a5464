package models

import (
	"time"

	"github.com/m04kA/SMC-AdvisingService/internal/domain"
)

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID          int64     `json:"id"`
	StudentName string    `json:"studentName"`
	Course      string    `json:"course"`
	Date        string    `json:"date"` // "August 11, 2025"
	Time        string    `json:"time"` // "8:00 AM"
	CreatedAt   time.Time `json:"createdAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// DateAppointments записи курса на одну дату
type DateAppointments struct {
	Date         string                `json:"date"`
	Appointments []AppointmentResponse `json:"appointments"`
}

// CourseDetailsResponse детальная информация по курсу для преподавателя
type CourseDetailsResponse struct {
	Course           string             `json:"course"`
	TotalSlots       int                `json:"totalSlots"`
	BookedSlots      int                `json:"bookedSlots"`
	AvailableSlots   int                `json:"availableSlots"`
	OccupancyPercent float64            `json:"occupancyPercent"`
	ByDate           []DateAppointments `json:"byDate"`
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:          a.ID,
		StudentName: a.StudentName,
		Course:      a.Course,
		Date:        a.Date,
		Time:        a.Time,
		CreatedAt:   a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if dto := FromDomainAppointment(a); dto != nil {
			resp.Appointments = append(resp.Appointments, *dto)
		}
	}

	return resp
}
