package get_catalog

import "github.com/m04kA/SMC-AdvisingService/internal/domain"

// CatalogProvider источник неизменяемого каталога
type CatalogProvider interface {
	Catalog() domain.Catalog
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
