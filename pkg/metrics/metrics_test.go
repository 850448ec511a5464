package metrics

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type stubSource struct {
	calls    atomic.Int32
	snapshot CapacitySnapshot
	err      error
}

func (s *stubSource) CapacitySnapshot(ctx context.Context) (CapacitySnapshot, error) {
	s.calls.Add(1)
	return s.snapshot, s.err
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func TestRecordBookingAndCancellation(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.RecordBooking(OutcomeCreated)
	m.RecordBooking(OutcomeCreated)
	m.RecordBooking(OutcomeCourseFull)
	m.RecordCancellation(OutcomeNotFound)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsTotal.WithLabelValues(OutcomeCreated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsTotal.WithLabelValues(OutcomeCourseFull)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CancellationsTotal.WithLabelValues(OutcomeNotFound)))
}

func TestObserve(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.Observe(CapacitySnapshot{
		Courses:    []CourseLoad{{Name: "Computer Science", Booked: 3, Total: 120}},
		Dates:      []DateLoad{{Date: "August 11, 2025", Count: 3}},
		LedgerSize: 3,
	})

	assert.Equal(t, 3.0, testutil.ToFloat64(m.CourseBookedSlots.WithLabelValues("Computer Science")))
	assert.Equal(t, 120.0, testutil.ToFloat64(m.CourseTotalSlots.WithLabelValues("Computer Science")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.DateAppointments.WithLabelValues("August 11, 2025")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.LedgerSize))
}

func TestStartCapacityCollector(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())
	source := &stubSource{snapshot: CapacitySnapshot{LedgerSize: 5}}
	stopCh := make(chan struct{})
	defer close(stopCh)

	StartCapacityCollector(m, source, 10*time.Millisecond, stopCh, nopLogger{})

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(m.LedgerSize) == 5 && source.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestStartCapacityCollector_SourceErrorKeepsPreviousValues(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())
	m.LedgerSize.Set(7)
	source := &stubSource{err: errors.New("unavailable")}
	stopCh := make(chan struct{})
	defer close(stopCh)

	StartCapacityCollector(m, source, 10*time.Millisecond, stopCh, nopLogger{})

	assert.Eventually(t, func() bool { return source.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 7.0, testutil.ToFloat64(m.LedgerSize))
}
