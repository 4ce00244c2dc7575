package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/physioroutines/internal/document"
	"github.com/2beens/physioroutines/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

var ErrValidation = document.ErrValidation

const (
	DefaultProgressDays  = 30
	DefaultActivityLimit = 5
	shortWindowDays      = 7
	longWindowDays       = 30
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=analytics_test

type progressReader interface {
	ProgressLog(ctx context.Context) []document.ProgressEntry
}

// Stats are the progress metrics for the last 7 and 30 days.
type Stats struct {
	ActiveDays7   int `json:"activeDays7"`
	ActiveDays30  int `json:"activeDays30"`
	Routines7     int `json:"routines7"`
	Routines30    int `json:"routines30"`
	Duration7     int `json:"duration7"`
	Duration30    int `json:"duration30"`
	CurrentStreak int `json:"currentStreak"`
}

// Analyzer derives read-only statistics from the progress log. It keeps no
// state, the log is re-read on every call.
type Analyzer struct {
	repo progressReader
	now  func() time.Time
}

func NewAnalyzer(repo progressReader, now func() time.Time) *Analyzer {
	if now == nil {
		now = time.Now
	}
	return &Analyzer{
		repo: repo,
		now:  now,
	}
}

// ProgressData returns the entries of the last n days, oldest first.
func (a *Analyzer) ProgressData(ctx context.Context, days int) (_ []document.ProgressEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.progress.data")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("days", days))

	if days <= 0 {
		return nil, fmt.Errorf("%w: days must be greater than 0", ErrValidation)
	}

	return EntriesSince(a.repo.ProgressLog(ctx), a.now().AddDate(0, 0, -days)), nil
}

// RecentActivity returns the latest completions across the whole log, newest first.
func (a *Analyzer) RecentActivity(ctx context.Context, limit int) (_ []document.CompletionRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.progress.recent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", limit))

	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must be non-negative", ErrValidation)
	}

	completions := Completions(a.repo.ProgressLog(ctx))
	sort.SliceStable(completions, func(i, j int) bool {
		return completions[i].CompletedAt.After(completions[j].CompletedAt)
	})

	if len(completions) > limit {
		completions = completions[:limit]
	}
	return completions, nil
}

func (a *Analyzer) ProgressStats(ctx context.Context) Stats {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.progress.stats")
	defer span.End()

	stats := ComputeStats(a.repo.ProgressLog(ctx), a.now())
	span.SetAttributes(attribute.Int("current_streak", stats.CurrentStreak))
	return stats
}

// EntriesSince returns the entries dated at or after cutoff, sorted by date.
func EntriesSince(entries []document.ProgressEntry, cutoff time.Time) []document.ProgressEntry {
	filtered := make([]document.ProgressEntry, 0, len(entries))
	for _, e := range entries {
		if !e.Date.Before(cutoff) {
			filtered = append(filtered, e)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.Before(filtered[j].Date)
	})
	return filtered
}

// Completions flattens the completion records of all entries.
func Completions(entries []document.ProgressEntry) []document.CompletionRecord {
	var completions []document.CompletionRecord
	for _, e := range entries {
		completions = append(completions, e.RoutinesCompleted...)
	}
	if completions == nil {
		return []document.CompletionRecord{}
	}
	return completions
}

func ComputeStats(entries []document.ProgressEntry, now time.Time) Stats {
	last7 := EntriesSince(entries, now.AddDate(0, 0, -shortWindowDays))
	last30 := EntriesSince(entries, now.AddDate(0, 0, -longWindowDays))

	stats := Stats{
		CurrentStreak: Streak(entries, now),
	}
	stats.ActiveDays7, stats.Routines7, stats.Duration7 = windowTotals(last7)
	stats.ActiveDays30, stats.Routines30, stats.Duration30 = windowTotals(last30)
	return stats
}

func windowTotals(entries []document.ProgressEntry) (activeDays, routines, duration int) {
	for _, e := range entries {
		if e.ActivityLevel > 0 {
			activeDays++
		}
		routines += len(e.RoutinesCompleted)
		duration += e.TotalDuration()
	}
	return activeDays, routines, duration
}

// Streak counts consecutive active days going back from today. An inactive
// today does not break the streak, counting then starts from yesterday.
// There is no lookback limit, the scan stops at the first inactive day.
func Streak(entries []document.ProgressEntry, now time.Time) int {
	loc := now.Location()
	active := make(map[dayKey]bool, len(entries))
	for _, e := range entries {
		if e.ActivityLevel > 0 {
			active[dayKeyOf(e.Date, loc)] = true
		}
	}

	cursor := Midnight(now)
	if !active[dayKeyOf(cursor, loc)] {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for active[dayKeyOf(cursor, loc)] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}
