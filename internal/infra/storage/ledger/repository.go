package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AdvisingService/internal/domain"
)

// Repository журнал активных записей на консультацию, хранится в памяти.
// Порядок вставки сохраняется, ID выдаются последовательно и не переиспользуются.
//
// Repository не синхронизирован: вызывающий код выполняет операции
// внутри транзакции (pkg/txmanager).
type Repository struct {
	appointments []*domain.Appointment
	nextID       int64
	timeProvider TimeProvider
}

// NewRepository создает пустой журнал. Первый выданный ID равен 1
func NewRepository() *Repository {
	return NewRepositoryWithTimeProvider(&RealTimeProvider{})
}

// NewRepositoryWithTimeProvider создает журнал с указанным источником времени
func NewRepositoryWithTimeProvider(tp TimeProvider) *Repository {
	return &Repository{
		nextID:       1,
		timeProvider: tp,
	}
}

// Insert добавляет запись, присваивая ей следующий ID и время создания.
// Возвращает копию сохранённой записи.
func (r *Repository) Insert(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if appointment == nil {
		return nil, fmt.Errorf("%w: Insert - appointment is nil", ErrInvalidAppointment)
	}

	stored := appointment.Clone()
	stored.ID = r.nextID
	stored.CreatedAt = r.timeProvider.Now()
	r.nextID++

	r.appointments = append(r.appointments, stored)

	return stored.Clone(), nil
}

// RemoveByID удаляет запись. Отсутствие записи не является ошибкой: возвращается false
func (r *Repository) RemoveByID(ctx context.Context, id int64) (bool, error) {
	for i, a := range r.appointments {
		if a.ID == id {
			r.appointments = append(r.appointments[:i], r.appointments[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	for _, a := range r.appointments {
		if a.ID == id {
			return a.Clone(), nil
		}
	}
	return nil, ErrAppointmentNotFound
}

// FindByStudent возвращает записи студента (имя сравнивается без учёта регистра)
func (r *Repository) FindByStudent(ctx context.Context, studentName string) ([]*domain.Appointment, error) {
	name := strings.TrimSpace(studentName)
	return r.filter(func(a *domain.Appointment) bool {
		return a.BelongsTo(name)
	}), nil
}

// FindByCourse возвращает записи на курс
func (r *Repository) FindByCourse(ctx context.Context, course string) ([]*domain.Appointment, error) {
	return r.filter(func(a *domain.Appointment) bool {
		return a.Course == course
	}), nil
}

// FindByDate возвращает записи на дату
func (r *Repository) FindByDate(ctx context.Context, date string) ([]*domain.Appointment, error) {
	return r.filter(func(a *domain.Appointment) bool {
		return a.Date == date
	}), nil
}

// All возвращает снимок всех записей в порядке вставки
func (r *Repository) All(ctx context.Context) ([]*domain.Appointment, error) {
	return r.filter(func(*domain.Appointment) bool { return true }), nil
}

// Count возвращает количество активных записей
func (r *Repository) Count(ctx context.Context) (int, error) {
	return len(r.appointments), nil
}

func (r *Repository) filter(match func(a *domain.Appointment) bool) []*domain.Appointment {
	result := make([]*domain.Appointment, 0)
	for _, a := range r.appointments {
		if match(a) {
			result = append(result, a.Clone())
		}
	}
	return result
}
