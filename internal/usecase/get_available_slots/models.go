package get_available_slots

import "github.com/m04kA/SMC-AdvisingService/internal/domain"

// Request модель запроса на получение доступности
type Request struct {
	Date string // Необязательный фильтр по дате; пустая строка - все даты каталога
}

// Response модель ответа с доступностью курсов и слотов
type Response struct {
	Courses             []CourseAvailability // В порядке каталога
	Dates               []DateAvailability   // В порядке каталога
	AllDatesFullyBooked bool                 // Все даты каталога заняты (не зависит от фильтра)
}

// CourseAvailability свободные места курса
type CourseAvailability struct {
	Name             string
	Available        int
	Total            int
	PercentAvailable float64
	Status           domain.AvailabilityStatus
}

// DateAvailability свободные места на дату
type DateAvailability struct {
	Date        string
	FullyBooked bool
	Times       []TimeAvailability
}

// TimeAvailability свободные места в слоте (дата, время)
type TimeAvailability struct {
	Time      string
	Available int
	Max       int
	Full      bool
}
