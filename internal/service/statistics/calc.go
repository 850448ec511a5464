package statistics

import (
	"github.com/m04kA/SMC-AdvisingService/internal/domain"
	"github.com/m04kA/SMC-AdvisingService/internal/service/statistics/models"
)

// percent возвращает part/total*100, 0 при нулевом total
func percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// isDateFullyBooked проверяет, что ни в одном слоте даты нет свободных мест
func isDateFullyBooked(slots []*domain.DateTimeSlot) bool {
	for _, s := range slots {
		if s.AvailableSlots() > 0 {
			return false
		}
	}
	return true
}

// countBy считает записи по ключу для каждого имени из names (в порядке names)
func countBy(names []string, appointments []*domain.Appointment, key func(a *domain.Appointment) string) []models.Breakdown {
	counts := make(map[string]int, len(names))
	for _, a := range appointments {
		counts[key(a)]++
	}

	result := make([]models.Breakdown, len(names))
	for i, name := range names {
		result[i] = models.Breakdown{
			Name:    name,
			Count:   counts[name],
			Percent: percent(counts[name], len(appointments)),
		}
	}
	return result
}

// busiestDate выбирает дату с максимумом записей; при равенстве побеждает более ранняя в каталоге.
// Возвращает nil, если записей нет.
func busiestDate(byDate []models.Breakdown) *models.BusiestDate {
	var best *models.BusiestDate
	for _, d := range byDate {
		if d.Count == 0 {
			continue
		}
		if best == nil || d.Count > best.Count {
			best = &models.BusiestDate{Date: d.Name, Count: d.Count}
		}
	}
	return best
}

func courseOccupancy(course *domain.Course) models.CourseOccupancy {
	return models.CourseOccupancy{
		Course:           course.Name,
		BookedSlots:      course.BookedSlots(),
		TotalSlots:       course.TotalSlots(),
		AvailableSlots:   course.AvailableSlots(),
		OccupancyPercent: percent(course.BookedSlots(), course.TotalSlots()),
	}
}

func courseNames(courses []*domain.Course) []string {
	names := make([]string, len(courses))
	for i, c := range courses {
		names[i] = c.Name
	}
	return names
}

func totalSlots(courses []*domain.Course) int {
	total := 0
	for _, c := range courses {
		total += c.TotalSlots()
	}
	return total
}
