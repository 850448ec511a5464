package domain

import (
	"strings"
	"time"
)

// Appointment represents a confirmed advising appointment
// Существует только между успешным бронированием и отменой, не изменяется
type Appointment struct {
	ID          int64
	StudentName string
	Course      string
	Date        string
	Time        string
	CreatedAt   time.Time
}

// BelongsTo returns true if the appointment was booked by the student (case-insensitive)
func (a *Appointment) BelongsTo(studentName string) bool {
	return strings.EqualFold(a.StudentName, studentName)
}

// Clone returns a detached copy of the appointment
func (a *Appointment) Clone() *Appointment {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}
