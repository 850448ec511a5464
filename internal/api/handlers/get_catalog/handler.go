package get_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-AdvisingService/internal/api/handlers"
)

type Handler struct {
	provider CatalogProvider
	logger   Logger
}

func NewHandler(provider CatalogProvider, logger Logger) *Handler {
	return &Handler{
		provider: provider,
		logger:   logger,
	}
}

// Handle GET /api/v1/catalog
// Публичный endpoint: каталог задается конфигурацией и не меняется во время работы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp := FromDomainCatalog(h.provider.Catalog())

	h.logger.Info("GET /catalog - Catalog retrieved: courses=%d, dates=%d, times=%d",
		len(resp.Courses), len(resp.Dates), len(resp.Times))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
