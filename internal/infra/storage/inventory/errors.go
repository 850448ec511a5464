package inventory

import "errors"

var (
	// ErrCourseNotFound возвращается, когда курса нет в каталоге
	ErrCourseNotFound = errors.New("inventory: course not found")

	// ErrSlotNotFound возвращается, когда пары (дата, время) нет в каталоге
	ErrSlotNotFound = errors.New("inventory: slot not found")

	// ErrDateNotFound возвращается, когда даты нет в каталоге
	ErrDateNotFound = errors.New("inventory: date not found")
)
