package health

import (
	"log/slog"
	"net/http"

	"github.com/FACorreiaa/go-tourism-filter/internal/api"
	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

// Status exposes the counts reported by the health endpoint.
type Status interface {
	DestinationsLoaded() int
	CategoriesLoaded() int
	CachedInferredProfiles() int
	InferenceState() string
}

type Handler struct {
	logger *slog.Logger
	status Status
}

func NewHealthHandler(status Status, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, status: status}
}

// Health godoc
// @Summary      Service health
// @Description  Reports the loaded catalog and destination counts and the inference breaker state.
// @Tags         Health
// @Produce      json
// @Success      200 {object} api.HealthResponse
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := api.HealthResponse{
		Status:                 "healthy",
		VocabularyVersion:      types.VocabularyVersion,
		DestinationsLoaded:     h.status.DestinationsLoaded(),
		CategoriesLoaded:       h.status.CategoriesLoaded(),
		CachedInferredProfiles: h.status.CachedInferredProfiles(),
		InferenceState:         h.status.InferenceState(),
	}
	if resp.DestinationsLoaded == 0 || resp.CategoriesLoaded == 0 {
		resp.Status = "degraded"
		h.logger.WarnContext(r.Context(), "Health check reports empty data",
			slog.Int("destinations", resp.DestinationsLoaded),
			slog.Int("categories", resp.CategoriesLoaded),
		)
	}
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}
