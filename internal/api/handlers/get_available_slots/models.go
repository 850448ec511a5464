package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-AdvisingService/internal/usecase/get_available_slots"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Courses             []CourseAvailability `json:"courses"`
	Dates               []DateAvailability   `json:"dates"`
	AllDatesFullyBooked bool                 `json:"allDatesFullyBooked"`
}

// CourseAvailability свободные места курса
type CourseAvailability struct {
	Name             string  `json:"name"`
	Available        int     `json:"available"`
	Total            int     `json:"total"`
	PercentAvailable float64 `json:"percentAvailable"`
	Status           string  `json:"status"` // available | limited | full
}

// DateAvailability свободные места на дату
type DateAvailability struct {
	Date        string             `json:"date"`
	FullyBooked bool               `json:"fullyBooked"`
	Times       []TimeAvailability `json:"times"`
}

// TimeAvailability свободные места в слоте
type TimeAvailability struct {
	Time      string `json:"time"`
	Available int    `json:"available"`
	Max       int    `json:"max"`
	Full      bool   `json:"full"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailabilityResponse {
	courses := make([]CourseAvailability, len(resp.Courses))
	for i, c := range resp.Courses {
		courses[i] = CourseAvailability{
			Name:             c.Name,
			Available:        c.Available,
			Total:            c.Total,
			PercentAvailable: c.PercentAvailable,
			Status:           string(c.Status),
		}
	}

	dates := make([]DateAvailability, len(resp.Dates))
	for i, d := range resp.Dates {
		times := make([]TimeAvailability, len(d.Times))
		for j, t := range d.Times {
			times[j] = TimeAvailability{
				Time:      t.Time,
				Available: t.Available,
				Max:       t.Max,
				Full:      t.Full,
			}
		}
		dates[i] = DateAvailability{
			Date:        d.Date,
			FullyBooked: d.FullyBooked,
			Times:       times,
		}
	}

	return &AvailabilityResponse{
		Courses:             courses,
		Dates:               dates,
		AllDatesFullyBooked: resp.AllDatesFullyBooked,
	}
}
