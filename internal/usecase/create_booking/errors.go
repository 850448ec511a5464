package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrCourseNotFound возвращается, когда курса нет в каталоге
	ErrCourseNotFound = fmt.Errorf("%w: unknown course", ErrInvalidInput)

	// ErrSlotNotFound возвращается, когда пары (дата, время) нет в каталоге
	ErrSlotNotFound = fmt.Errorf("%w: unknown date or time", ErrInvalidInput)

	// ErrCourseFull возвращается, когда на курсе не осталось мест
	ErrCourseFull = errors.New("create_booking: course is full")

	// ErrSlotFull возвращается, когда в выбранном слоте не осталось мест
	ErrSlotFull = errors.New("create_booking: slot is full")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
