package inventory

import (
	"fmt"

	"github.com/m04kA/SMC-AdvisingService/internal/domain"
)

type slotKey struct {
	date string
	time string
}

// Repository хранит счётчики мест курсов и слотов (дата, время).
// Все слоты создаются при старте и живут до конца процесса.
// Не синхронизирован: доступ сериализуется через pkg/txmanager.
type Repository struct {
	catalog domain.Catalog

	courses     []*domain.Course
	courseIndex map[string]*domain.Course

	slots     map[slotKey]*domain.DateTimeSlot
	dateIndex map[string]int
	timeIndex map[string]int
}

// NewRepository создает хранилище по каталогу
func NewRepository(catalog domain.Catalog) *Repository {
	r := &Repository{
		catalog:     catalog,
		courses:     make([]*domain.Course, 0, len(catalog.Courses)),
		courseIndex: make(map[string]*domain.Course, len(catalog.Courses)),
		slots:       make(map[slotKey]*domain.DateTimeSlot, len(catalog.Dates)*len(catalog.Times)),
		dateIndex:   make(map[string]int, len(catalog.Dates)),
		timeIndex:   make(map[string]int, len(catalog.Times)),
	}

	for _, cs := range catalog.Courses {
		course := domain.NewCourse(cs.Name, cs.TotalSlots)
		r.courses = append(r.courses, course)
		r.courseIndex[cs.Name] = course
	}

	for i, date := range catalog.Dates {
		r.dateIndex[date] = i
	}
	for i, t := range catalog.Times {
		r.timeIndex[t] = i
	}

	for _, date := range catalog.Dates {
		for _, t := range catalog.Times {
			r.slots[slotKey{date: date, time: t}] = domain.NewDateTimeSlot(date, t, catalog.SlotMaxStudents)
		}
	}

	return r
}

// Catalog возвращает каталог, по которому построено хранилище
func (r *Repository) Catalog() domain.Catalog {
	return r.catalog
}

// Course возвращает курс по имени
func (r *Repository) Course(name string) (*domain.Course, error) {
	course, ok := r.courseIndex[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCourseNotFound, name)
	}
	return course, nil
}

// Courses возвращает курсы в порядке каталога
func (r *Repository) Courses() []*domain.Course {
	out := make([]*domain.Course, len(r.courses))
	copy(out, r.courses)
	return out
}

// Slot возвращает слот по дате и времени
func (r *Repository) Slot(date, time string) (*domain.DateTimeSlot, error) {
	slot, ok := r.slots[slotKey{date: date, time: time}]
	if !ok {
		return nil, fmt.Errorf("%w: %q at %q", ErrSlotNotFound, date, time)
	}
	return slot, nil
}

// SlotsForDate возвращает слоты даты в порядке времени из каталога
func (r *Repository) SlotsForDate(date string) ([]*domain.DateTimeSlot, error) {
	if !r.HasDate(date) {
		return nil, fmt.Errorf("%w: %q", ErrDateNotFound, date)
	}

	out := make([]*domain.DateTimeSlot, 0, len(r.catalog.Times))
	for _, t := range r.catalog.Times {
		out = append(out, r.slots[slotKey{date: date, time: t}])
	}
	return out, nil
}

// Dates возвращает даты в порядке каталога
func (r *Repository) Dates() []string {
	return append([]string(nil), r.catalog.Dates...)
}

// Times возвращает время в порядке каталога
func (r *Repository) Times() []string {
	return append([]string(nil), r.catalog.Times...)
}

// HasDate проверяет, что дата есть в каталоге
func (r *Repository) HasDate(date string) bool {
	_, ok := r.dateIndex[date]
	return ok
}

// DateIndex позиция даты в каталоге, -1 если даты нет
func (r *Repository) DateIndex(date string) int {
	if i, ok := r.dateIndex[date]; ok {
		return i
	}
	return -1
}

// TimeIndex позиция времени в каталоге, -1 если времени нет
func (r *Repository) TimeIndex(time string) int {
	if i, ok := r.timeIndex[time]; ok {
		return i
	}
	return -1
}
