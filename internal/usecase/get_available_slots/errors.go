package get_available_slots

import "errors"

var (
	// ErrDateNotFound возвращается, когда запрошенной даты нет в каталоге
	ErrDateNotFound = errors.New("date not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
