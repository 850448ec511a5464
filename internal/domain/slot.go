package domain

// Course represents an advising course with a fixed number of appointment places
type Course struct {
	Name    string
	counter *CapacityCounter
}

// NewCourse creates a course with totalSlots places
func NewCourse(name string, totalSlots int) *Course {
	return &Course{
		Name:    name,
		counter: NewCapacityCounter(totalSlots),
	}
}

// Counter returns the course capacity counter
func (c *Course) Counter() *CapacityCounter { return c.counter }

func (c *Course) TotalSlots() int     { return c.counter.Capacity() }
func (c *Course) BookedSlots() int    { return c.counter.Booked() }
func (c *Course) AvailableSlots() int { return c.counter.Available() }

// IsFull returns true if the course has no available places
func (c *Course) IsFull() bool { return c.counter.IsFull() }

// IsLimited returns true if the course still has places but fewer than threshold
func (c *Course) IsLimited(threshold int) bool {
	return !c.IsFull() && c.AvailableSlots() < threshold
}

// DateTimeSlot represents a (date, time) reservation unit
type DateTimeSlot struct {
	Date    string
	Time    string
	counter *CapacityCounter
}

// NewDateTimeSlot creates a slot with maxSlots places
func NewDateTimeSlot(date, time string, maxSlots int) *DateTimeSlot {
	return &DateTimeSlot{
		Date:    date,
		Time:    time,
		counter: NewCapacityCounter(maxSlots),
	}
}

// Counter returns the slot capacity counter
func (s *DateTimeSlot) Counter() *CapacityCounter { return s.counter }

func (s *DateTimeSlot) MaxSlots() int       { return s.counter.Capacity() }
func (s *DateTimeSlot) BookedSlots() int    { return s.counter.Booked() }
func (s *DateTimeSlot) AvailableSlots() int { return s.counter.Available() }

// Students returns names of students holding a place in the slot
func (s *DateTimeSlot) Students() []string { return s.counter.Occupants() }

// IsFull returns true if the slot has no available places
func (s *DateTimeSlot) IsFull() bool { return s.counter.IsFull() }
