package models

// Breakdown количество записей и доля от общего числа записей
type Breakdown struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// CourseOccupancy загрузка курса по счётчику мест
type CourseOccupancy struct {
	Course           string  `json:"course"`
	BookedSlots      int     `json:"bookedSlots"`
	TotalSlots       int     `json:"totalSlots"`
	AvailableSlots   int     `json:"availableSlots"`
	OccupancyPercent float64 `json:"occupancyPercent"`
}

// BusiestDate дата с наибольшим числом записей
type BusiestDate struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// StatsResponse сводная статистика для преподавателя
type StatsResponse struct {
	TotalBooked      int               `json:"totalBooked"`
	TotalSlots       int               `json:"totalSlots"`
	OverallOccupancy float64           `json:"overallOccupancy"`
	ByCourse         []Breakdown       `json:"byCourse"`
	ByDate           []Breakdown       `json:"byDate"`
	Occupancy        []CourseOccupancy `json:"occupancy"`
	BusiestDate      *BusiestDate      `json:"busiestDate"` // nil, если записей нет
}
