package api

import (
	"net/http"
	"strconv"

	"github.com/2beens/physioroutines/internal/analytics"
	"github.com/2beens/physioroutines/internal/telemetry/tracing"
	"github.com/2beens/physioroutines/pkg"

	"go.opentelemetry.io/otel/attribute"
)

func intQueryParam(r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (handler *Handler) HandleProgressData(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.data")
	defer span.End()

	days, ok := intQueryParam(r, "days", analytics.DefaultProgressDays)
	if !ok {
		pkg.WriteJSONError(w, http.StatusBadRequest, "parameter <days> must be a number")
		return
	}
	span.SetAttributes(attribute.Int("days", days))

	entries, err := handler.service.ProgressData(ctx, days)
	if err != nil {
		handler.writeServiceError(w, "progress data", err)
		return
	}
	pkg.WriteJSONResponseOK(w, entries)
}

func (handler *Handler) HandleRecentActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.recent")
	defer span.End()

	limit, ok := intQueryParam(r, "limit", analytics.DefaultActivityLimit)
	if !ok {
		pkg.WriteJSONError(w, http.StatusBadRequest, "parameter <limit> must be a number")
		return
	}
	span.SetAttributes(attribute.Int("limit", limit))

	records, err := handler.service.RecentActivity(ctx, limit)
	if err != nil {
		handler.writeServiceError(w, "recent activity", err)
		return
	}
	pkg.WriteJSONResponseOK(w, records)
}

func (handler *Handler) HandleProgressStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.stats")
	defer span.End()

	pkg.WriteJSONResponseOK(w, handler.service.ProgressStats(ctx))
}
