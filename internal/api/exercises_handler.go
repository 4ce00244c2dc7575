package api

import (
	"net/http"

	"github.com/2beens/physioroutines/internal/catalog"
	"github.com/2beens/physioroutines/internal/telemetry/tracing"
	"github.com/2beens/physioroutines/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

func (handler *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	if category := r.URL.Query().Get("category"); category != "" {
		pkg.WriteJSONResponseOK(w, handler.exercises.ByCategory(category))
		return
	}
	pkg.WriteJSONResponseOK(w, handler.exercises.All())
}

func (handler *Handler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.categories")
	defer span.End()

	pkg.WriteJSONResponseOK(w, handler.exercises.Categories())
}

func (handler *Handler) HandleGetExercise(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	exercise, found := handler.exercises.ByID(mux.Vars(r)["id"])
	if !found {
		pkg.WriteJSONError(w, http.StatusNotFound, "exercise not found")
		return
	}
	pkg.WriteJSONResponseOK(w, exercise)
}

func (handler *Handler) HandleAddExerciseToCatalog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.new")
	defer span.End()

	var exercise catalog.Exercise
	if err := decodeJSONBody(r, &exercise); err != nil {
		log.Tracef("new exercise, decode body: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	added, err := handler.exercises.Add(ctx, exercise)
	if err != nil {
		handler.writeServiceError(w, "add exercise", err)
		return
	}

	log.Debugf("new exercise added: [%s] %s", added.ID, added.Name)
	pkg.WriteJSONResponse(w, http.StatusCreated, added)
}
