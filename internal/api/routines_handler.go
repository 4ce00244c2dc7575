package api

import (
	"net/http"

	"github.com/2beens/physioroutines/internal/catalog"
	"github.com/2beens/physioroutines/internal/document"
	"github.com/2beens/physioroutines/internal/routines"
	"github.com/2beens/physioroutines/internal/telemetry/tracing"
	"github.com/2beens/physioroutines/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type CreateRoutineRequest struct {
	Name      string   `json:"name"`
	Exercises []string `json:"exercises"`
}

type DeleteRoutineResponse struct {
	DeletedID string `json:"deletedId"`
}

type RoutineExerciseResponse struct {
	RoutineID  string `json:"routineId"`
	ExerciseID string `json:"exerciseId"`
	Changed    bool   `json:"changed"`
}

type StartRoutineResponse struct {
	Routine   document.Routine   `json:"routine"`
	Exercises []catalog.Exercise `json:"exercises"`
}

type CompleteRoutineRequest struct {
	// minutes
	Duration int `json:"duration"`
}

func (handler *Handler) HandleListRoutines(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.list")
	defer span.End()

	pkg.WriteJSONResponseOK(w, handler.service.GetRoutines(ctx))
}

func (handler *Handler) HandleCreateRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.new")
	defer span.End()

	var req CreateRoutineRequest
	if err := decodeJSONBody(r, &req); err != nil {
		log.Tracef("new routine, decode body: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	routine, err := handler.service.CreateRoutine(ctx, req.Name, req.Exercises)
	if err != nil {
		handler.writeServiceError(w, "create routine", err)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterRoutinesCreated.Inc()
	}
	log.Debugf("new routine added: [%s] %s", routine.ID, routine.Name)
	pkg.WriteJSONResponse(w, http.StatusCreated, routine)
}

func (handler *Handler) HandleGetRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	span.SetAttributes(attribute.String("routine.id", id))

	routine, found := handler.service.GetRoutineByID(ctx, id)
	if !found {
		pkg.WriteJSONError(w, http.StatusNotFound, "routine not found")
		return
	}
	pkg.WriteJSONResponseOK(w, routine)
}

func (handler *Handler) HandleUpdateRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.update")
	defer span.End()

	id := mux.Vars(r)["id"]
	span.SetAttributes(attribute.String("routine.id", id))

	var patch routines.RoutinePatch
	if err := decodeJSONBody(r, &patch); err != nil {
		log.Tracef("update routine, decode body: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := handler.service.UpdateRoutine(ctx, id, patch)
	if err != nil {
		handler.writeServiceError(w, "update routine", err)
		return
	}
	if !updated {
		pkg.WriteJSONError(w, http.StatusNotFound, "routine not found")
		return
	}

	routine, _ := handler.service.GetRoutineByID(ctx, id)
	pkg.WriteJSONResponseOK(w, routine)
}

func (handler *Handler) HandleDeleteRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	span.SetAttributes(attribute.String("routine.id", id))

	deleted, err := handler.service.DeleteRoutine(ctx, id)
	if err != nil {
		handler.writeServiceError(w, "delete routine", err)
		return
	}
	if !deleted {
		pkg.WriteJSONError(w, http.StatusNotFound, "routine not found")
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterRoutinesDeleted.Inc()
	}
	log.Debugf("routine deleted: %s", id)
	pkg.WriteJSONResponseOK(w, DeleteRoutineResponse{DeletedID: id})
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.add-exercise")
	defer span.End()

	vars := mux.Vars(r)
	routineID, exerciseID := vars["id"], vars["exerciseId"]
	span.SetAttributes(attribute.String("routine.id", routineID))
	span.SetAttributes(attribute.String("exercise.id", exerciseID))

	if _, found := handler.exercises.ByID(exerciseID); !found {
		pkg.WriteJSONError(w, http.StatusNotFound, "exercise not found")
		return
	}

	added, err := handler.service.AddExerciseToRoutine(ctx, routineID, exerciseID)
	if err != nil {
		handler.writeServiceError(w, "add exercise to routine", err)
		return
	}
	// not added: either a missing routine, or the exercise is already there
	if !added {
		if _, found := handler.service.GetRoutineByID(ctx, routineID); !found {
			pkg.WriteJSONError(w, http.StatusNotFound, "routine not found")
			return
		}
	}

	pkg.WriteJSONResponseOK(w, RoutineExerciseResponse{
		RoutineID:  routineID,
		ExerciseID: exerciseID,
		Changed:    added,
	})
}

func (handler *Handler) HandleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.remove-exercise")
	defer span.End()

	vars := mux.Vars(r)
	routineID, exerciseID := vars["id"], vars["exerciseId"]
	span.SetAttributes(attribute.String("routine.id", routineID))
	span.SetAttributes(attribute.String("exercise.id", exerciseID))

	removed, err := handler.service.RemoveExerciseFromRoutine(ctx, routineID, exerciseID)
	if err != nil {
		handler.writeServiceError(w, "remove exercise from routine", err)
		return
	}
	if !removed {
		if _, found := handler.service.GetRoutineByID(ctx, routineID); !found {
			pkg.WriteJSONError(w, http.StatusNotFound, "routine not found")
			return
		}
	}

	pkg.WriteJSONResponseOK(w, RoutineExerciseResponse{
		RoutineID:  routineID,
		ExerciseID: exerciseID,
		Changed:    removed,
	})
}

// HandleStartRoutine marks the routine as used and returns it along with its
// resolved exercises, in routine order.
func (handler *Handler) HandleStartRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.start")
	defer span.End()

	id := mux.Vars(r)["id"]
	span.SetAttributes(attribute.String("routine.id", id))

	session, err := handler.player.Start(ctx, id)
	if err != nil {
		handler.writeServiceError(w, "start routine", err)
		return
	}

	routine, found := handler.service.GetRoutineByID(ctx, id)
	if !found {
		// deleted in between
		routine = session.Routine()
	}
	pkg.WriteJSONResponseOK(w, StartRoutineResponse{
		Routine:   routine,
		Exercises: session.Exercises(),
	})
}

func (handler *Handler) HandleCompleteRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.complete")
	defer span.End()

	id := mux.Vars(r)["id"]
	span.SetAttributes(attribute.String("routine.id", id))

	var req CompleteRoutineRequest
	if err := decodeJSONBody(r, &req); err != nil {
		log.Tracef("complete routine, decode body: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	routine, found := handler.service.GetRoutineByID(ctx, id)
	if !found {
		pkg.WriteJSONError(w, http.StatusNotFound, "routine not found")
		return
	}

	entry, err := handler.service.LogRoutineCompletion(ctx, routine.ID, routine.Name, req.Duration)
	if err != nil {
		handler.writeServiceError(w, "log routine completion", err)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterCompletionsLogged.Inc()
		handler.metricsManager.HistCompletionDurationMin.Observe(float64(max(0, req.Duration)))
	}
	pkg.WriteJSONResponse(w, http.StatusCreated, entry)
}
