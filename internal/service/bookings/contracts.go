package bookings

import (
	"context"

	"github.com/m04kA/SMC-AdvisingService/internal/domain"
)

// LedgerRepository интерфейс журнала записей
type LedgerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	RemoveByID(ctx context.Context, id int64) (bool, error)
	FindByStudent(ctx context.Context, studentName string) ([]*domain.Appointment, error)
	FindByCourse(ctx context.Context, course string) ([]*domain.Appointment, error)
	All(ctx context.Context) ([]*domain.Appointment, error)
}

// InventoryRepository интерфейс хранилища счётчиков мест
type InventoryRepository interface {
	Course(name string) (*domain.Course, error)
	Slot(date, time string) (*domain.DateTimeSlot, error)
	Dates() []string
	DateIndex(date string) int
	TimeIndex(time string) int
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс для учёта исходов отмены
type MetricsRecorder interface {
	RecordCancellation(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
