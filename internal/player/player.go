package player

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/2beens/physioroutines/internal/catalog"
	"github.com/2beens/physioroutines/internal/document"
	"github.com/2beens/physioroutines/internal/routines"
	"github.com/2beens/physioroutines/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrRoutineNotFound = errors.New("routine not found")
	ErrNoExercises     = errors.New("no valid exercises found in routine")
	ErrSessionFinished = errors.New("session already finished")
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=player_test

type routineStore interface {
	GetRoutineByID(ctx context.Context, id string) (document.Routine, bool)
	UpdateRoutine(ctx context.Context, id string, patch routines.RoutinePatch) (bool, error)
	LogRoutineCompletion(ctx context.Context, routineID, routineName string, durationMinutes int) (*document.ProgressEntry, error)
}

type exerciseResolver interface {
	Resolve(ids []string) []catalog.Exercise
}

// Player starts guided sessions of a routine.
type Player struct {
	store     routineStore
	exercises exerciseResolver
	now       func() time.Time
}

func New(store routineStore, exercises exerciseResolver, now func() time.Time) *Player {
	if now == nil {
		now = time.Now
	}
	return &Player{
		store:     store,
		exercises: exercises,
		now:       now,
	}
}

// Start resolves the routine exercises and marks the routine as used.
// Exercises missing from the catalog are skipped.
func (p *Player) Start(ctx context.Context, routineID string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "player.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", routineID))

	routine, found := p.store.GetRoutineByID(ctx, routineID)
	if !found {
		return nil, ErrRoutineNotFound
	}

	exercises := p.exercises.Resolve(routine.Exercises)
	if len(exercises) == 0 {
		return nil, ErrNoExercises
	}
	if skipped := len(routine.Exercises) - len(exercises); skipped > 0 {
		log.Warnf("routine [%s]: %d exercises not found in catalog, skipping", routineID, skipped)
	}

	if _, err := p.store.UpdateRoutine(ctx, routineID, routines.RoutinePatch{}); err != nil {
		return nil, fmt.Errorf("touch routine: %w", err)
	}

	return &Session{
		routine:   routine,
		exercises: exercises,
		store:     p.store,
		now:       p.now,
	}, nil
}

// Session walks through the exercises of one routine and times it.
type Session struct {
	routine   document.Routine
	exercises []catalog.Exercise
	store     routineStore
	now       func() time.Time

	mu        sync.Mutex
	idx       int
	running   bool
	startedAt time.Time
	elapsed   time.Duration
	finished  bool
}

func (s *Session) Routine() document.Routine {
	return s.routine
}

func (s *Session) Exercises() []catalog.Exercise {
	return s.exercises
}

func (s *Session) Current() catalog.Exercise {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exercises[s.idx]
}

// Position returns the 0-based index of the current exercise.
func (s *Session) Position() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idx
}

// Next moves to the next exercise. It reports false on the last one.
func (s *Session) Next() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.idx >= len(s.exercises)-1 {
		return false
	}
	s.idx++
	return true
}

// Prev moves to the previous exercise. It reports false on the first one.
func (s *Session) Prev() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.idx == 0 {
		return false
	}
	s.idx--
	return true
}

func (s *Session) StartTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running || s.finished {
		return
	}
	s.running = true
	s.startedAt = s.now()
}

func (s *Session) StopTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimer()
}

func (s *Session) stopTimer() {
	if !s.running {
		return
	}
	s.elapsed += s.now().Sub(s.startedAt)
	s.running = false
}

func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Elapsed returns the timed duration so far, in whole seconds.
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	elapsed := s.elapsed
	if s.running {
		elapsed += s.now().Sub(s.startedAt)
	}
	return elapsed.Truncate(time.Second)
}

// Finish stops the timer and logs the routine completion, rounding the
// timed duration up to whole minutes.
func (s *Session) Finish(ctx context.Context) (_ *document.ProgressEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "player.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", s.routine.ID))

	s.mu.Lock()
	if s.finished {
		s.mu.Unlock()
		return nil, ErrSessionFinished
	}
	s.stopTimer()
	s.finished = true
	elapsed := s.elapsed.Truncate(time.Second)
	s.mu.Unlock()

	minutes := DurationMinutes(elapsed)
	span.SetAttributes(attribute.Int("duration", minutes))
	return s.store.LogRoutineCompletion(ctx, s.routine.ID, s.routine.Name, minutes)
}

// DurationMinutes rounds up to whole minutes.
func DurationMinutes(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds() / 60))
}
