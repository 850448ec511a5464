package statistics

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdvisingService/internal/domain"
	"github.com/m04kA/SMC-AdvisingService/internal/infra/storage/inventory"
	"github.com/m04kA/SMC-AdvisingService/internal/infra/storage/ledger"
	createBooking "github.com/m04kA/SMC-AdvisingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-AdvisingService/pkg/metrics"
	"github.com/m04kA/SMC-AdvisingService/pkg/txmanager"
)

const (
	cs    = "Computer Science"
	civil = "Civil Engineering"
	d1    = "August 11, 2025"
	d2    = "August 12, 2025"
	d3    = "August 13, 2025"
	am8   = "8:00 AM"
	am9   = "9:00 AM"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	svc  *Service
	book *createBooking.UseCase
}

func newFixture(catalog domain.Catalog) *fixture {
	inv := inventory.NewRepository(catalog)
	led := ledger.NewRepository()
	tx := txmanager.NewTransactionManager()

	return &fixture{
		svc:  NewService(led, inv, tx, nopLogger{}),
		book: createBooking.NewUseCase(led, inv, tx, metrics.Noop{}, nopLogger{}),
	}
}

func (f *fixture) mustBook(t *testing.T, student, course, date, tm string) {
	t.Helper()
	_, err := f.book.Execute(context.Background(), &createBooking.Request{
		StudentName: student, Course: course, Date: date, Time: tm,
	})
	require.NoError(t, err)
}

// smallCatalog два курса, три даты по два времени, по одному месту в слоте
func smallCatalog() domain.Catalog {
	return domain.Catalog{
		Courses: []domain.CourseSpec{
			{Name: cs, TotalSlots: 10},
			{Name: civil, TotalSlots: 10},
		},
		Dates:            []string{d1, d2, d3},
		Times:            []string{am8, am9},
		SlotMaxStudents:  1,
		LimitedThreshold: 3,
	}
}

func TestStats_EmptyLedger(t *testing.T) {
	f := newFixture(domain.DefaultCatalog())

	stats, err := f.svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalBooked)
	assert.Equal(t, 600, stats.TotalSlots)
	assert.Zero(t, stats.OverallOccupancy)
	assert.Nil(t, stats.BusiestDate)
	require.Len(t, stats.ByCourse, 5)
	require.Len(t, stats.ByDate, 5)
	for _, b := range stats.ByCourse {
		assert.Zero(t, b.Count)
		assert.Zero(t, b.Percent)
	}
	for _, o := range stats.Occupancy {
		assert.Equal(t, 120, o.AvailableSlots)
	}

	_, ok, err := f.svc.BusiestDate(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStats_Breakdowns(t *testing.T) {
	f := newFixture(domain.DefaultCatalog())

	f.mustBook(t, "Alice", cs, d1, am8)
	f.mustBook(t, "Bob", cs, d1, am9)
	f.mustBook(t, "Carol", civil, d2, am8)
	f.mustBook(t, "Dave", cs, d2, am8)

	stats, err := f.svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalBooked)
	assert.InDelta(t, 4.0/600*100, stats.OverallOccupancy, 1e-9)

	assert.Equal(t, cs, stats.ByCourse[0].Name)
	assert.Equal(t, 3, stats.ByCourse[0].Count)
	assert.InDelta(t, 75.0, stats.ByCourse[0].Percent, 1e-9)

	assert.Equal(t, d1, stats.ByDate[0].Name)
	assert.Equal(t, 2, stats.ByDate[0].Count)
	assert.InDelta(t, 50.0, stats.ByDate[0].Percent, 1e-9)

	assert.Equal(t, 3, stats.Occupancy[0].BookedSlots)
	assert.InDelta(t, 2.5, stats.Occupancy[0].OccupancyPercent, 1e-9)

	require.NotNil(t, stats.BusiestDate)
	assert.Equal(t, d1, stats.BusiestDate.Date)
	assert.Equal(t, 2, stats.BusiestDate.Count)
}

func TestBusiestDate_TieGoesToFirstConfiguredDate(t *testing.T) {
	f := newFixture(domain.DefaultCatalog())

	times := domain.DefaultTimes
	book := func(date string, n int) {
		for i := 0; i < n; i++ {
			f.mustBook(t, fmt.Sprintf("%s-%d", date, i), cs, date, times[i])
		}
	}
	book(d1, 3)
	book(d3, 5)
	book(d2, 5)

	best, ok, err := f.svc.BusiestDate(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, d2, best.Date)
	assert.Equal(t, 5, best.Count)
}

func TestIsDateFullyBooked(t *testing.T) {
	f := newFixture(smallCatalog())
	ctx := context.Background()

	full, err := f.svc.IsDateFullyBooked(ctx, d1)
	require.NoError(t, err)
	assert.False(t, full)

	f.mustBook(t, "Alice", cs, d1, am8)
	full, err = f.svc.IsDateFullyBooked(ctx, d1)
	require.NoError(t, err)
	assert.False(t, full, "one time still has room")

	f.mustBook(t, "Bob", cs, d1, am9)
	full, err = f.svc.IsDateFullyBooked(ctx, d1)
	require.NoError(t, err)
	assert.True(t, full)

	_, err = f.svc.IsDateFullyBooked(ctx, "December 25, 2025")
	assert.ErrorIs(t, err, ErrDateNotFound)
}

func TestIsDateFullyBooked_DefaultCatalog(t *testing.T) {
	f := newFixture(domain.DefaultCatalog())
	ctx := context.Background()

	n := 0
	for ti, tm := range domain.DefaultTimes {
		for i := 0; i < domain.DefaultSlotMaxStudents; i++ {
			course := domain.DefaultCourses[n%len(domain.DefaultCourses)]
			f.mustBook(t, fmt.Sprintf("student-%d", n), course, d1, tm)
			n++
		}

		full, err := f.svc.IsDateFullyBooked(ctx, d1)
		require.NoError(t, err)
		if ti < len(domain.DefaultTimes)-1 {
			assert.False(t, full, "after %d bookings", n)
		} else {
			assert.True(t, full, "after %d bookings", n)
		}
	}
	assert.Equal(t, 160, n)

	full, err := f.svc.IsDateFullyBooked(ctx, d2)
	require.NoError(t, err)
	assert.False(t, full)
}

func TestAllDatesFullyBooked(t *testing.T) {
	f := newFixture(smallCatalog())
	ctx := context.Background()

	i := 0
	for _, date := range []string{d1, d2, d3} {
		for _, tm := range []string{am8, am9} {
			all, err := f.svc.AllDatesFullyBooked(ctx)
			require.NoError(t, err)
			assert.False(t, all)

			f.mustBook(t, fmt.Sprintf("student-%d", i), civil, date, tm)
			i++
		}
	}

	all, err := f.svc.AllDatesFullyBooked(ctx)
	require.NoError(t, err)
	assert.True(t, all)
}

func TestCourseOccupancy(t *testing.T) {
	f := newFixture(smallCatalog())
	ctx := context.Background()

	f.mustBook(t, "Alice", cs, d1, am8)
	f.mustBook(t, "Bob", cs, d2, am8)

	occupancy, err := f.svc.CourseOccupancy(ctx, cs)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, occupancy, 1e-9)

	occupancy, err = f.svc.CourseOccupancy(ctx, civil)
	require.NoError(t, err)
	assert.Zero(t, occupancy)

	_, err = f.svc.CourseOccupancy(ctx, "Astrology")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestOverallOccupancy(t *testing.T) {
	f := newFixture(smallCatalog())

	f.mustBook(t, "Alice", cs, d1, am8)
	f.mustBook(t, "Bob", civil, d1, am9)

	overall, err := f.svc.OverallOccupancy(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 10.0, overall, 1e-9)
}

func TestCapacitySnapshot(t *testing.T) {
	f := newFixture(smallCatalog())

	f.mustBook(t, "Alice", cs, d2, am8)

	snapshot, err := f.svc.CapacitySnapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, snapshot.LedgerSize)
	assert.Equal(t, []metrics.CourseLoad{
		{Name: cs, Booked: 1, Total: 10},
		{Name: civil, Booked: 0, Total: 10},
	}, snapshot.Courses)
	assert.Equal(t, []metrics.DateLoad{
		{Date: d1, Count: 0},
		{Date: d2, Count: 1},
		{Date: d3, Count: 0},
	}, snapshot.Dates)
}

func TestCapacitySnapshot_DatesFromLedger(t *testing.T) {
	f := newFixture(smallCatalog())

	f.mustBook(t, "Alice", cs, d1, am8)
	f.mustBook(t, "Bob", civil, d1, am9)
	f.mustBook(t, "Carol", cs, d3, am9)

	snapshot, err := f.svc.CapacitySnapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, snapshot.LedgerSize)
	assert.Equal(t, []metrics.DateLoad{
		{Date: d1, Count: 2},
		{Date: d2, Count: 0},
		{Date: d3, Count: 1},
	}, snapshot.Dates)
}

func TestPercent_ZeroTotal(t *testing.T) {
	assert.Zero(t, percent(5, 0))
	assert.InDelta(t, 50.0, percent(1, 2), 1e-9)
}
