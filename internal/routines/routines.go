package routines

import (
	"context"
	"slices"
	"strings"

	"github.com/2beens/physioroutines/internal/document"
	"github.com/2beens/physioroutines/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// RoutinePatch holds the routine fields to change. Nil fields are left as is.
type RoutinePatch struct {
	Name      *string   `json:"name,omitempty"`
	Exercises *[]string `json:"exercises,omitempty"`
}

func (s *Store) CreateRoutine(ctx context.Context, name string, exerciseIDs []string) (_ *document.Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.routines.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationErr("routine name must be a non-empty string")
	}

	exercises := []string{}
	if exerciseIDs != nil {
		exercises = slices.Clone(exerciseIDs)
	}

	routine := document.Routine{
		ID:        s.newID(),
		Name:      name,
		Exercises: exercises,
		CreatedAt: s.now(),
		LastUsed:  nil,
	}
	span.SetAttributes(attribute.String("routine.id", routine.ID))

	err = s.transact(ctx, func(doc *document.Document) (bool, error) {
		doc.Routines = append(doc.Routines, routine)
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return &routine, nil
}

func (s *Store) GetRoutines(ctx context.Context) []document.Routine {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.routines.list")
	defer span.End()
	return s.read(ctx).Routines
}

func (s *Store) GetRoutineByID(ctx context.Context, id string) (document.Routine, bool) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.routines.get")
	defer span.End()
	span.SetAttributes(attribute.String("routine.id", id))

	doc := s.read(ctx)
	i := doc.RoutineIndex(id)
	if i < 0 {
		return document.Routine{}, false
	}
	return doc.Routines[i], true
}

// UpdateRoutine merges the patch into the routine. lastUsed is always stamped,
// even for an empty patch, so this doubles as "touch".
// Returns false if there is no routine with the given id.
func (s *Store) UpdateRoutine(ctx context.Context, id string, patch RoutinePatch) (updated bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.routines.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", id))

	if id == "" {
		return false, validationErr("routine id is required")
	}

	var name string
	if patch.Name != nil {
		name = strings.TrimSpace(*patch.Name)
		if name == "" {
			return false, validationErr("routine name must be a non-empty string")
		}
	}

	err = s.transact(ctx, func(doc *document.Document) (bool, error) {
		i := doc.RoutineIndex(id)
		if i < 0 {
			return false, nil
		}

		routine := &doc.Routines[i]
		if patch.Name != nil {
			routine.Name = name
		}
		if patch.Exercises != nil {
			routine.Exercises = slices.Clone(*patch.Exercises)
			if routine.Exercises == nil {
				routine.Exercises = []string{}
			}
		}
		now := s.now()
		routine.LastUsed = &now

		updated = true
		return true, nil
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}

// DeleteRoutine removes the routine together with all its completion records.
// Progress entries left without completions are dropped, the rest get their
// activity level recomputed.
func (s *Store) DeleteRoutine(ctx context.Context, id string) (deleted bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.routines.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", id))

	if id == "" {
		return false, validationErr("routine id is required")
	}

	err = s.transact(ctx, func(doc *document.Document) (bool, error) {
		i := doc.RoutineIndex(id)
		if i < 0 {
			return false, nil
		}
		doc.Routines = slices.Delete(doc.Routines, i, i+1)

		progress := doc.Progress[:0]
		for _, entry := range doc.Progress {
			entry.RoutinesCompleted = slices.DeleteFunc(entry.RoutinesCompleted, func(rc document.CompletionRecord) bool {
				return rc.RoutineID == id
			})
			if len(entry.RoutinesCompleted) == 0 {
				continue
			}
			// activity level stays as logged
			progress = append(progress, entry)
		}
		doc.Progress = progress

		deleted = true
		return true, nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// AddExerciseToRoutine appends the exercise, unless the routine already has it.
func (s *Store) AddExerciseToRoutine(ctx context.Context, routineID, exerciseID string) (added bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.routines.add-exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", routineID))
	span.SetAttributes(attribute.String("exercise.id", exerciseID))

	if routineID == "" || exerciseID == "" {
		return false, validationErr("both routine id and exercise id are required")
	}

	err = s.transact(ctx, func(doc *document.Document) (bool, error) {
		i := doc.RoutineIndex(routineID)
		if i < 0 || doc.Routines[i].HasExercise(exerciseID) {
			return false, nil
		}
		doc.Routines[i].Exercises = append(doc.Routines[i].Exercises, exerciseID)
		added = true
		return true, nil
	})
	if err != nil {
		return false, err
	}
	return added, nil
}

func (s *Store) RemoveExerciseFromRoutine(ctx context.Context, routineID, exerciseID string) (removed bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.routines.remove-exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", routineID))
	span.SetAttributes(attribute.String("exercise.id", exerciseID))

	if routineID == "" || exerciseID == "" {
		return false, validationErr("both routine id and exercise id are required")
	}

	err = s.transact(ctx, func(doc *document.Document) (bool, error) {
		i := doc.RoutineIndex(routineID)
		if i < 0 {
			return false, nil
		}
		before := len(doc.Routines[i].Exercises)
		doc.Routines[i].Exercises = slices.DeleteFunc(doc.Routines[i].Exercises, func(id string) bool {
			return id == exerciseID
		})
		removed = len(doc.Routines[i].Exercises) != before
		return removed, nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}
