package statistics

import "errors"

var (
	// ErrCourseNotFound возвращается, когда курса нет в каталоге
	ErrCourseNotFound = errors.New("statistics: course not found")

	// ErrDateNotFound возвращается, когда даты нет в каталоге
	ErrDateNotFound = errors.New("statistics: date not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("statistics: internal error")
)
