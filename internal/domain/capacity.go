package domain

// CapacityCounter ограниченный счётчик мест со списком занявших место студентов.
// Используется и для курса, и для слота (дата, время).
// Счётчик не синхронизирован: все изменения выполняются под блокировкой координатора.
type CapacityCounter struct {
	capacity  int
	booked    int
	occupants []string
}

// NewCapacityCounter создает счётчик с заданной вместимостью
func NewCapacityCounter(capacity int) *CapacityCounter {
	if capacity < 0 {
		capacity = 0
	}
	return &CapacityCounter{capacity: capacity}
}

// TryReserve занимает одно место, если оно есть.
// Возвращает false и ничего не меняет, когда мест нет.
func (c *CapacityCounter) TryReserve(occupant string) bool {
	if c.booked >= c.capacity {
		return false
	}
	c.booked++
	c.occupants = append(c.occupants, occupant)
	return true
}

// Release освобождает одно место и убирает первое вхождение occupant.
// На нуле вызов ничего не делает.
func (c *CapacityCounter) Release(occupant string) {
	if c.booked <= 0 {
		return
	}
	c.booked--
	for i, name := range c.occupants {
		if name == occupant {
			c.occupants = append(c.occupants[:i], c.occupants[i+1:]...)
			break
		}
	}
}

func (c *CapacityCounter) Capacity() int { return c.capacity }

func (c *CapacityCounter) Booked() int { return c.booked }

// Available returns the number of free places
func (c *CapacityCounter) Available() int {
	return c.capacity - c.booked
}

// IsFull returns true if no places are left
func (c *CapacityCounter) IsFull() bool {
	return c.Available() <= 0
}

// Occupants возвращает копию списка студентов, занявших места
func (c *CapacityCounter) Occupants() []string {
	out := make([]string, len(c.occupants))
	copy(out, c.occupants)
	return out
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (c *CapacityCounter) OccupancyRate() float64 {
	if c.capacity == 0 {
		return 0
	}
	return float64(c.booked) / float64(c.capacity) * 100
}
