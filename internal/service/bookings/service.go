package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-AdvisingService/internal/domain"
	"github.com/m04kA/SMC-AdvisingService/internal/infra/storage/inventory"
	"github.com/m04kA/SMC-AdvisingService/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-AdvisingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-AdvisingService/pkg/metrics"
)

// Service сервис для работы с записями на консультацию
type Service struct {
	ledger    LedgerRepository
	inventory InventoryRepository
	txManager TransactionManager
	metrics   MetricsRecorder
	logger    Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	ledger LedgerRepository,
	inventory InventoryRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		ledger:    ledger,
		inventory: inventory,
		txManager: txManager,
		metrics:   metrics,
		logger:    logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	var appointment *domain.Appointment
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		appointment, err = s.ledger.GetByID(txCtx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, ledger.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: ledger error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - ledger error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment), nil
}

// FindByStudent ищет записи студента по имени (без учёта регистра)
func (s *Service) FindByStudent(ctx context.Context, studentName string) (*models.AppointmentListResponse, error) {
	name := strings.TrimSpace(studentName)
	if name == "" {
		s.logger.Warn("FindByStudent: empty student name")
		return nil, fmt.Errorf("%w: studentName is required", ErrInvalidInput)
	}

	s.logger.Info("FindByStudent: searching appointments for student=%q", name)

	var appointments []*domain.Appointment
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		appointments, err = s.ledger.FindByStudent(txCtx, name)
		return err
	})
	if err != nil {
		s.logger.Error("FindByStudent: ledger error for student=%q: %v", name, err)
		return nil, fmt.Errorf("%w: FindByStudent - ledger error: %v", ErrInternal, err)
	}

	s.logger.Info("FindByStudent: found %d appointments for student=%q", len(appointments), name)
	return models.FromDomainAppointmentList(appointments), nil
}

// ListAll возвращает все записи, отсортированные по дате и времени (в порядке каталога)
func (s *Service) ListAll(ctx context.Context) (*models.AppointmentListResponse, error) {
	var appointments []*domain.Appointment
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		appointments, err = s.ledger.All(txCtx)
		return err
	})
	if err != nil {
		s.logger.Error("ListAll: ledger error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - ledger error: %v", ErrInternal, err)
	}

	s.sortBySchedule(appointments)

	s.logger.Info("ListAll: fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// CourseDetails возвращает загрузку курса и его записи, сгруппированные по датам
// Даты без записей не включаются
func (s *Service) CourseDetails(ctx context.Context, courseName string) (*models.CourseDetailsResponse, error) {
	name := strings.TrimSpace(courseName)
	s.logger.Info("CourseDetails: fetching details for course=%q", name)

	var resp *models.CourseDetailsResponse
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		course, err := s.inventory.Course(name)
		if err != nil {
			if errors.Is(err, inventory.ErrCourseNotFound) {
				return ErrCourseNotFound
			}
			return fmt.Errorf("%w: failed to get course: %v", ErrInternal, err)
		}

		appointments, err := s.ledger.FindByCourse(txCtx, name)
		if err != nil {
			return fmt.Errorf("%w: CourseDetails - ledger error: %v", ErrInternal, err)
		}
		s.sortBySchedule(appointments)

		byDate := make([]models.DateAppointments, 0)
		for _, date := range s.inventory.Dates() {
			var group []*domain.Appointment
			for _, a := range appointments {
				if a.Date == date {
					group = append(group, a)
				}
			}
			if len(group) == 0 {
				continue
			}
			byDate = append(byDate, models.DateAppointments{
				Date:         date,
				Appointments: models.FromDomainAppointmentList(group).Appointments,
			})
		}

		resp = &models.CourseDetailsResponse{
			Course:           course.Name,
			TotalSlots:       course.TotalSlots(),
			BookedSlots:      course.BookedSlots(),
			AvailableSlots:   course.AvailableSlots(),
			OccupancyPercent: course.Counter().OccupancyRate(),
			ByDate:           byDate,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrCourseNotFound) {
			s.logger.Warn("CourseDetails: course %q not found", name)
		} else {
			s.logger.Error("CourseDetails: failed for course=%q: %v", name, err)
		}
		return nil, err
	}

	return resp, nil
}

// Cancel отменяет запись: освобождает место на курсе и в слоте и удаляет запись из журнала.
// Повторная отмена того же ID возвращает ErrAppointmentNotFound и не меняет счётчики.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Находим запись
		appointment, err := s.ledger.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, ledger.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: Cancel - ledger error: %v", ErrInternal, err)
		}

		// 2. Освобождаем место на курсе (на нуле ничего не происходит)
		if course, err := s.inventory.Course(appointment.Course); err == nil {
			course.Counter().Release(appointment.StudentName)
		} else {
			s.logger.Error("Cancel: course %q of appointment id=%d not in catalog", appointment.Course, id)
		}

		// 3. Освобождаем место в слоте
		if slot, err := s.inventory.Slot(appointment.Date, appointment.Time); err == nil {
			slot.Counter().Release(appointment.StudentName)
		} else {
			s.logger.Error("Cancel: slot %q at %q of appointment id=%d not in catalog",
				appointment.Date, appointment.Time, id)
		}

		// 4. Удаляем запись из журнала
		removed, err := s.ledger.RemoveByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("%w: Cancel - ledger error: %v", ErrInternal, err)
		}
		if !removed {
			return ErrAppointmentNotFound
		}

		return nil
	})

	switch {
	case err == nil:
		s.metrics.RecordCancellation(metrics.OutcomeCancelled)
	case errors.Is(err, ErrAppointmentNotFound):
		s.metrics.RecordCancellation(metrics.OutcomeNotFound)
		s.logger.Warn("Cancel: appointment id=%d not found", id)
		return err
	default:
		s.metrics.RecordCancellation(metrics.OutcomeError)
		s.logger.Error("Cancel: failed to cancel appointment id=%d: %v", id, err)
		return err
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return nil
}

// sortBySchedule сортирует записи по дате, затем по времени (порядок каталога), затем по ID
func (s *Service) sortBySchedule(appointments []*domain.Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		a, b := appointments[i], appointments[j]
		if da, db := s.inventory.DateIndex(a.Date), s.inventory.DateIndex(b.Date); da != db {
			return da < db
		}
		if ta, tb := s.inventory.TimeIndex(a.Time), s.inventory.TimeIndex(b.Time); ta != tb {
			return ta < tb
		}
		return a.ID < b.ID
	})
}
