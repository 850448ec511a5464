package domain

// Default catalog values
const (
	DefaultCourseTotalSlots = 120
	DefaultSlotMaxStudents  = 20
	DefaultLimitedThreshold = 30 // курс помечается как "limited", если свободных мест меньше
)

// DefaultCourses список курсов по умолчанию
var DefaultCourses = []string{
	"Information Technology",
	"Information System",
	"Computer Science",
	"Industrial Technology",
	"Civil Engineering",
}

// DefaultDates даты консультаций по умолчанию
var DefaultDates = []string{
	"August 11, 2025",
	"August 12, 2025",
	"August 13, 2025",
	"August 14, 2025",
	"August 15, 2025",
}

// DefaultTimes время консультаций по умолчанию (одинаково для всех дат)
var DefaultTimes = []string{
	"8:00 AM",
	"9:00 AM",
	"10:00 AM",
	"11:00 AM",
	"1:00 PM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
}

// AvailabilityStatus статус курса на экране доступности
type AvailabilityStatus string

const (
	StatusAvailable AvailabilityStatus = "available"
	StatusLimited   AvailabilityStatus = "limited"
	StatusFull      AvailabilityStatus = "full"
)
