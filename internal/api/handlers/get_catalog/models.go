package get_catalog

import "github.com/m04kA/SMC-AdvisingService/internal/domain"

// CourseResponse курс каталога
type CourseResponse struct {
	Name       string `json:"name"`
	TotalSlots int    `json:"totalSlots"`
}

// CatalogResponse HTTP response model
type CatalogResponse struct {
	Courses          []CourseResponse `json:"courses"`
	Dates            []string         `json:"dates"`
	Times            []string         `json:"times"`
	SlotMaxStudents  int              `json:"slotMaxStudents"`
	LimitedThreshold int              `json:"limitedThreshold"`
}

// FromDomainCatalog конвертирует каталог в HTTP response
func FromDomainCatalog(c domain.Catalog) *CatalogResponse {
	courses := make([]CourseResponse, len(c.Courses))
	for i, course := range c.Courses {
		courses[i] = CourseResponse{Name: course.Name, TotalSlots: course.TotalSlots}
	}

	return &CatalogResponse{
		Courses:          courses,
		Dates:            append([]string{}, c.Dates...),
		Times:            append([]string{}, c.Times...),
		SlotMaxStudents:  c.SlotMaxStudents,
		LimitedThreshold: c.LimitedThreshold,
	}
}
