package destination

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-tourism-filter/internal/api"
)

type Handler struct {
	logger *slog.Logger
	table  *Table
}

func NewDestinationHandler(table *Table, logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger,
		table:  table,
	}
}

// ListDestinations godoc
// @Summary      List known destinations
// @Description  Returns every destination of the lookup table grouped by country, both levels sorted by name.
// @Tags         Destinations
// @Produce      json
// @Success      200 {array} CountryGroup
// @Router       /destinations [get]
func (h *Handler) ListDestinations(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("DestinationHandler").Start(r.Context(), "ListDestinations")
	defer span.End()

	groups := h.table.ByCountry()
	span.SetAttributes(attribute.Int("countries", len(groups)))

	h.logger.DebugContext(ctx, "Returning destinations", slog.Int("countries", len(groups)))
	api.WriteJSONResponse(w, r, http.StatusOK, groups)
	span.SetStatus(codes.Ok, "Destinations returned")
}
