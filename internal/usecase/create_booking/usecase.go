package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AdvisingService/internal/domain"
	"github.com/m04kA/SMC-AdvisingService/internal/infra/storage/inventory"
	"github.com/m04kA/SMC-AdvisingService/pkg/metrics"
)

// UseCase use case для создания записи на консультацию
type UseCase struct {
	ledger    LedgerRepository
	inventory InventoryRepository
	txManager TransactionManager
	metrics   MetricsRecorder
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	ledger LedgerRepository,
	inventory InventoryRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		ledger:    ledger,
		inventory: inventory,
		txManager: txManager,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute выполняет use case создания записи.
// Проверки и изменения выполняются в одной сериализуемой транзакции:
// либо увеличены оба счётчика и добавлена запись в журнал, либо не изменилось ничего.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	req = normalizeRequest(req)
	uc.logger.Info("CreateBooking: student=%q, course=%q, date=%q, time=%q",
		req.StudentName, req.Course, req.Date, req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.RecordBooking(outcomeFor(err))
		return nil, err
	}

	var result *Response

	// 2. Проверяем вместимость и изменяем состояние в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Курс существует и на нём есть места
		course, err := uc.inventory.Course(req.Course)
		if err != nil {
			if errors.Is(err, inventory.ErrCourseNotFound) {
				uc.logger.Warn("CreateBooking: course %q not found", req.Course)
				return ErrCourseNotFound
			}
			return fmt.Errorf("%w: failed to get course: %v", ErrInternal, err)
		}
		if course.IsFull() {
			uc.logger.Warn("CreateBooking: course %q is full, %d/%d booked",
				req.Course, course.BookedSlots(), course.TotalSlots())
			return ErrCourseFull
		}

		// 2.2. Слот существует и в нём есть места
		slot, err := uc.inventory.Slot(req.Date, req.Time)
		if err != nil {
			if errors.Is(err, inventory.ErrSlotNotFound) {
				uc.logger.Warn("CreateBooking: slot %q at %q not found", req.Date, req.Time)
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}
		if slot.IsFull() {
			uc.logger.Warn("CreateBooking: slot %q at %q is full, %d/%d booked",
				req.Date, req.Time, slot.BookedSlots(), slot.MaxSlots())
			return ErrSlotFull
		}

		// 2.3. Занимаем места: сначала курс, затем слот
		if !course.Counter().TryReserve(req.StudentName) {
			return ErrCourseFull
		}
		if !slot.Counter().TryReserve(req.StudentName) {
			course.Counter().Release(req.StudentName)
			return ErrSlotFull
		}

		// 2.4. Добавляем запись в журнал
		created, err := uc.ledger.Insert(txCtx, &domain.Appointment{
			StudentName: req.StudentName,
			Course:      req.Course,
			Date:        req.Date,
			Time:        req.Time,
		})
		if err != nil {
			slot.Counter().Release(req.StudentName)
			course.Counter().Release(req.StudentName)
			uc.logger.Error("CreateBooking: failed to insert appointment: %v", err)
			return fmt.Errorf("%w: failed to insert appointment: %v", ErrInternal, err)
		}

		dateSlots, err := uc.inventory.SlotsForDate(req.Date)
		if err != nil {
			// Слот уже найден, поэтому дата точно есть в каталоге
			uc.logger.Error("CreateBooking: failed to get slots for date %q: %v", req.Date, err)
			dateSlots = nil
		}

		result = &Response{
			ID:              created.ID,
			StudentName:     created.StudentName,
			Course:          created.Course,
			Date:            created.Date,
			Time:            created.Time,
			CreatedAt:       created.CreatedAt,
			SlotAvailable:   slot.AvailableSlots(),
			CourseAvailable: course.AvailableSlots(),
			DateFullyBooked: dateSlots != nil && isDateFullyBooked(dateSlots),
		}
		return nil
	})

	uc.metrics.RecordBooking(outcomeFor(err))
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created appointment id=%d", result.ID)
	if result.DateFullyBooked {
		uc.logger.Info("CreateBooking: date %q is now fully booked", result.Date)
	}

	return result, nil
}

// outcomeFor конвертирует ошибку в label метрики
func outcomeFor(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeCreated
	case errors.Is(err, ErrInvalidInput):
		return metrics.OutcomeInvalidInput
	case errors.Is(err, ErrCourseFull):
		return metrics.OutcomeCourseFull
	case errors.Is(err, ErrSlotFull):
		return metrics.OutcomeSlotFull
	default:
		return metrics.OutcomeError
	}
}
