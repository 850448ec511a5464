package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacityCounter_TryReserve(t *testing.T) {
	c := NewCapacityCounter(2)

	require.True(t, c.TryReserve("Juan"))
	require.True(t, c.TryReserve("Maria"))
	assert.False(t, c.TryReserve("Pedro"))

	assert.Equal(t, 2, c.Booked())
	assert.Equal(t, 0, c.Available())
	assert.True(t, c.IsFull())
	assert.Equal(t, []string{"Juan", "Maria"}, c.Occupants())
}

func TestCapacityCounter_ReleaseClampsAtZero(t *testing.T) {
	c := NewCapacityCounter(3)
	require.True(t, c.TryReserve("Juan"))

	c.Release("Juan")
	c.Release("Juan")
	c.Release("nobody")

	assert.Equal(t, 0, c.Booked())
	assert.Equal(t, 3, c.Available())
	assert.Empty(t, c.Occupants())
}

func TestCapacityCounter_ReleaseRemovesFirstOccupantOnly(t *testing.T) {
	c := NewCapacityCounter(3)
	c.TryReserve("Juan")
	c.TryReserve("Maria")
	c.TryReserve("Juan")

	c.Release("Juan")

	assert.Equal(t, 2, c.Booked())
	assert.Equal(t, []string{"Maria", "Juan"}, c.Occupants())
}

func TestCapacityCounter_ReleaseUnknownOccupantStillDecrements(t *testing.T) {
	c := NewCapacityCounter(2)
	c.TryReserve("Juan")

	c.Release("Maria")

	assert.Equal(t, 0, c.Booked())
	assert.Equal(t, []string{"Juan"}, c.Occupants())
}

func TestCapacityCounter_OccupantsIsACopy(t *testing.T) {
	c := NewCapacityCounter(1)
	c.TryReserve("Juan")

	got := c.Occupants()
	got[0] = "changed"

	assert.Equal(t, []string{"Juan"}, c.Occupants())
}

func TestCapacityCounter_OccupancyRate(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		reserve  int
		want     float64
	}{
		{name: "empty", capacity: 4, reserve: 0, want: 0},
		{name: "half", capacity: 4, reserve: 2, want: 50},
		{name: "full", capacity: 4, reserve: 4, want: 100},
		{name: "zero capacity", capacity: 0, reserve: 1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCapacityCounter(tt.capacity)
			for i := 0; i < tt.reserve; i++ {
				c.TryReserve("s")
			}
			assert.InDelta(t, tt.want, c.OccupancyRate(), 0.0001)
		})
	}
}

func TestCourse_IsLimited(t *testing.T) {
	course := NewCourse("Computer Science", 30)
	assert.False(t, course.IsLimited(DefaultLimitedThreshold))

	course.Counter().TryReserve("Juan")
	assert.True(t, course.IsLimited(DefaultLimitedThreshold))

	for !course.IsFull() {
		course.Counter().TryReserve("x")
	}
	assert.False(t, course.IsLimited(DefaultLimitedThreshold))
}

func TestAppointment_BelongsTo(t *testing.T) {
	a := &Appointment{StudentName: "Juan Dela Cruz"}

	assert.True(t, a.BelongsTo("juan dela cruz"))
	assert.True(t, a.BelongsTo("JUAN DELA CRUZ"))
	assert.False(t, a.BelongsTo("juan"))
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	assert.Len(t, c.Courses, 5)
	assert.Len(t, c.Dates, 5)
	assert.Len(t, c.Times, 8)
	assert.Equal(t, 600, c.TotalCourseSlots())
	assert.Equal(t, 20, c.SlotMaxStudents)
}
