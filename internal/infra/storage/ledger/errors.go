package ledger

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("ledger: appointment not found")

	// ErrInvalidAppointment возвращается при попытке вставить пустую запись
	ErrInvalidAppointment = errors.New("ledger: invalid appointment")
)
