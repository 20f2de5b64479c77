package filter

import (
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-tourism-filter/internal/api"
	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

// Limits bounds the number of parent categories returned per list.
type Limits struct {
	Default int
	Min     int
}

type Handler struct {
	logger  *slog.Logger
	service Service
	limits  Limits
}

func NewFilterHandler(service Service, limits Limits, logger *slog.Logger) *Handler {
	if limits.Min <= 0 {
		limits.Min = 10
	}
	if limits.Default < limits.Min {
		limits.Default = max(20, limits.Min)
	}
	return &Handler{
		logger:  logger,
		service: service,
		limits:  limits,
	}
}

// FilterCategories godoc
// @Summary      Filter and rank tourism categories
// @Description  Resolves the destination, derives the trip's season and special periods, and returns every catalog list hard-filtered and ranked by relevance. Each list keeps the `limit` parent categories with the best average score.
// @Tags         Filter
// @Accept       json
// @Produce      json
// @Param        request body api.FilterRequest true "Trip details"
// @Success      200 {object} types.FilterResult
// @Failure      400 {object} api.ErrorBody "Invalid input"
// @Failure      500 {object} api.ErrorBody "Internal server error"
// @Router       /filter [post]
func (h *Handler) FilterCategories(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("FilterHandler").Start(r.Context(), "FilterCategories", trace.WithAttributes(
		attribute.String("http.method", r.Method),
		attribute.String("http.route", "/api/v1/filter"),
	))
	defer span.End()
	l := h.logger.With(slog.String("handler", "FilterCategories"))

	var req api.FilterRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request body", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := api.ValidateRequest(req); err != nil {
		l.WarnContext(ctx, "Request validation failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Validation failed")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	prefs, err := req.Preferences()
	if err != nil {
		l.WarnContext(ctx, "Invalid preferences", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid preferences")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Filter(ctx, req.City, req.Country, prefs)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Filter failed")
		if errors.Is(err, types.ErrInvalidInput) {
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
			return
		}
		l.ErrorContext(ctx, "Filter failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to filter categories")
		return
	}

	limit := h.limit(req.Limit)
	for _, kind := range types.ListKinds {
		items := result.List(kind)
		*items = LimitByParent(*items, limit)
	}

	span.SetAttributes(
		attribute.Int("limit", limit),
		attribute.String("resolution", string(result.Destination.Resolution)),
	)
	api.WriteJSONResponse(w, r, http.StatusOK, result)
	span.SetStatus(codes.Ok, "Categories filtered")
}

func (h *Handler) limit(requested int) int {
	if requested == 0 {
		return h.limits.Default
	}
	return max(requested, h.limits.Min)
}
