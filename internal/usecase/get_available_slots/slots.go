package get_available_slots

import "github.com/m04kA/SMC-AdvisingService/internal/domain"

// courseStatus определяет статус курса: full при нуле мест,
// limited при остатке меньше порога, иначе available
func courseStatus(course *domain.Course, limitedThreshold int) domain.AvailabilityStatus {
	switch {
	case course.IsFull():
		return domain.StatusFull
	case course.IsLimited(limitedThreshold):
		return domain.StatusLimited
	default:
		return domain.StatusAvailable
	}
}

func courseAvailability(course *domain.Course, limitedThreshold int) CourseAvailability {
	percent := 0.0
	if course.TotalSlots() > 0 {
		percent = float64(course.AvailableSlots()) / float64(course.TotalSlots()) * 100
	}

	return CourseAvailability{
		Name:             course.Name,
		Available:        course.AvailableSlots(),
		Total:            course.TotalSlots(),
		PercentAvailable: percent,
		Status:           courseStatus(course, limitedThreshold),
	}
}

func dateAvailability(date string, slots []*domain.DateTimeSlot) DateAvailability {
	times := make([]TimeAvailability, len(slots))
	fullyBooked := true

	for i, s := range slots {
		times[i] = TimeAvailability{
			Time:      s.Time,
			Available: s.AvailableSlots(),
			Max:       s.MaxSlots(),
			Full:      s.IsFull(),
		}
		if !s.IsFull() {
			fullyBooked = false
		}
	}

	return DateAvailability{
		Date:        date,
		FullyBooked: fullyBooked,
		Times:       times,
	}
}
