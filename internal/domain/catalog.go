package domain

// CourseSpec describes a course in the catalog
type CourseSpec struct {
	Name       string
	TotalSlots int
}

// Catalog is the fixed set of courses, dates and times loaded at startup
// Не меняется во время работы сервиса
type Catalog struct {
	Courses          []CourseSpec
	Dates            []string
	Times            []string
	SlotMaxStudents  int
	LimitedThreshold int
}

// DefaultCatalog returns the catalog used when no configuration overrides it
func DefaultCatalog() Catalog {
	courses := make([]CourseSpec, len(DefaultCourses))
	for i, name := range DefaultCourses {
		courses[i] = CourseSpec{Name: name, TotalSlots: DefaultCourseTotalSlots}
	}

	return Catalog{
		Courses:          courses,
		Dates:            append([]string(nil), DefaultDates...),
		Times:            append([]string(nil), DefaultTimes...),
		SlotMaxStudents:  DefaultSlotMaxStudents,
		LimitedThreshold: DefaultLimitedThreshold,
	}
}

// TotalCourseSlots returns the sum of all course capacities
func (c Catalog) TotalCourseSlots() int {
	total := 0
	for _, course := range c.Courses {
		total += course.TotalSlots
	}
	return total
}
