package catalog

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-tourism-filter/internal/api"
	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

// Listing is the response of GET /api/v1/categories.
type Listing struct {
	Version string                           `json:"version"`
	Total   int                              `json:"total"`
	Lists   map[types.ListKind][]ParentGroup `json:"lists"`
}

type Handler struct {
	logger  *slog.Logger
	catalog *Catalog
}

func NewCatalogHandler(catalog *Catalog, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		catalog: catalog,
	}
}

// ListCategories godoc
// @Summary      List the category catalog
// @Description  Returns every catalog record grouped by list and parent category, in catalog order.
// @Tags         Categories
// @Produce      json
// @Success      200 {object} Listing
// @Router       /categories [get]
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CatalogHandler").Start(r.Context(), "ListCategories")
	defer span.End()

	listing := Listing{
		Version: h.catalog.Version,
		Total:   h.catalog.Size(),
		Lists:   h.catalog.Grouped(),
	}
	span.SetAttributes(attribute.Int("categories", listing.Total))
	h.logger.DebugContext(ctx, "Returning catalog", slog.Int("categories", listing.Total))

	api.WriteJSONResponse(w, r, http.StatusOK, listing)
	span.SetStatus(codes.Ok, "Catalog returned")
}
