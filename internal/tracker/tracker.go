package tracker

import (
	"context"
	"time"

	"github.com/2beens/physioroutines/internal/analytics"
	"github.com/2beens/physioroutines/internal/document"
	"github.com/2beens/physioroutines/internal/routines"
	"github.com/2beens/physioroutines/internal/storage"
)

// RoutineManager is routine CRUD and exercise membership.
type RoutineManager interface {
	CreateRoutine(ctx context.Context, name string, exerciseIDs []string) (*document.Routine, error)
	GetRoutines(ctx context.Context) []document.Routine
	GetRoutineByID(ctx context.Context, id string) (document.Routine, bool)
	UpdateRoutine(ctx context.Context, id string, patch routines.RoutinePatch) (bool, error)
	DeleteRoutine(ctx context.Context, id string) (bool, error)
	AddExerciseToRoutine(ctx context.Context, routineID, exerciseID string) (bool, error)
	RemoveExerciseFromRoutine(ctx context.Context, routineID, exerciseID string) (bool, error)
}

type ProgressLogger interface {
	LogRoutineCompletion(ctx context.Context, routineID, routineName string, durationMinutes int) (*document.ProgressEntry, error)
}

type ProgressReporter interface {
	ProgressData(ctx context.Context, days int) ([]document.ProgressEntry, error)
	RecentActivity(ctx context.Context, limit int) ([]document.CompletionRecord, error)
	ProgressStats(ctx context.Context) analytics.Stats
}

var (
	_ RoutineManager   = (*Tracker)(nil)
	_ ProgressLogger   = (*Tracker)(nil)
	_ ProgressReporter = (*Tracker)(nil)
)

// Tracker is the routine store and its analytics over one backend.
type Tracker struct {
	*routines.Store
	*analytics.Analyzer
}

type Params struct {
	Backend storage.Backend
	// Key defaults to document.DefaultKey
	Key string
	// Now defaults to time.Now
	Now func() time.Time
}

func New(params Params) *Tracker {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	store := routines.NewStore(
		params.Backend,
		routines.WithKey(params.Key),
		routines.WithClock(now),
	)
	return &Tracker{
		Store:    store,
		Analyzer: analytics.NewAnalyzer(store, now),
	}
}

// Open creates the tracker and makes sure the document exists.
func Open(ctx context.Context, params Params) (*Tracker, error) {
	t := New(params)
	if err := t.Initialize(ctx); err != nil {
		return nil, err
	}
	return t, nil
}
