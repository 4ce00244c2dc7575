package routines

import (
	"context"

	"github.com/2beens/physioroutines/internal/analytics"
	"github.com/2beens/physioroutines/internal/document"
	"github.com/2beens/physioroutines/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// LogRoutineCompletion appends a completion record to today's progress entry,
// creating the entry on the first completion of the day.
func (s *Store) LogRoutineCompletion(
	ctx context.Context,
	routineID, routineName string,
	durationMinutes int,
) (_ *document.ProgressEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.routines.log-completion")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", routineID))
	span.SetAttributes(attribute.Int("duration", durationMinutes))

	if routineID == "" || routineName == "" {
		return nil, validationErr("routine id and name are required")
	}

	now := s.now()
	today := analytics.Midnight(now)

	var logged document.ProgressEntry
	err = s.transact(ctx, func(doc *document.Document) (bool, error) {
		idx := -1
		for i := range doc.Progress {
			if analytics.SameDay(doc.Progress[i].Date, today, now.Location()) {
				idx = i
				break
			}
		}
		if idx < 0 {
			doc.Progress = append(doc.Progress, document.ProgressEntry{
				Date:              today,
				ActivityLevel:     0,
				RoutinesCompleted: []document.CompletionRecord{},
			})
			idx = len(doc.Progress) - 1
		}

		entry := &doc.Progress[idx]
		entry.RoutinesCompleted = append(entry.RoutinesCompleted, document.CompletionRecord{
			RoutineID:   routineID,
			RoutineName: routineName,
			Duration:    max(0, durationMinutes),
			CompletedAt: now,
		})
		entry.RecomputeActivityLevel()

		logged = *entry
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("activity_level", logged.ActivityLevel))
	return &logged, nil
}
