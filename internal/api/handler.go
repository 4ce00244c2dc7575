package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/2beens/physioroutines/internal/analytics"
	"github.com/2beens/physioroutines/internal/catalog"
	"github.com/2beens/physioroutines/internal/document"
	"github.com/2beens/physioroutines/internal/player"
	"github.com/2beens/physioroutines/internal/routines"
	"github.com/2beens/physioroutines/internal/telemetry/metrics"
	"github.com/2beens/physioroutines/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=api_test

type routineService interface {
	CreateRoutine(ctx context.Context, name string, exerciseIDs []string) (*document.Routine, error)
	GetRoutines(ctx context.Context) []document.Routine
	GetRoutineByID(ctx context.Context, id string) (document.Routine, bool)
	UpdateRoutine(ctx context.Context, id string, patch routines.RoutinePatch) (bool, error)
	DeleteRoutine(ctx context.Context, id string) (bool, error)
	AddExerciseToRoutine(ctx context.Context, routineID, exerciseID string) (bool, error)
	RemoveExerciseFromRoutine(ctx context.Context, routineID, exerciseID string) (bool, error)
	LogRoutineCompletion(ctx context.Context, routineID, routineName string, durationMinutes int) (*document.ProgressEntry, error)
	ProgressData(ctx context.Context, days int) ([]document.ProgressEntry, error)
	RecentActivity(ctx context.Context, limit int) ([]document.CompletionRecord, error)
	ProgressStats(ctx context.Context) analytics.Stats
}

type exerciseCatalog interface {
	All() []catalog.Exercise
	ByID(id string) (catalog.Exercise, bool)
	ByCategory(category string) []catalog.Exercise
	Categories() []string
	Resolve(ids []string) []catalog.Exercise
	Add(ctx context.Context, exercise catalog.Exercise) (*catalog.Exercise, error)
}

// Handler serves the JSON API over the routines document and the exercise
// catalog.
type Handler struct {
	service        routineService
	exercises      exerciseCatalog
	player         *player.Player
	metricsManager *metrics.Manager
}

func NewHandler(
	service routineService,
	exercises exerciseCatalog,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		service:        service,
		exercises:      exercises,
		player:         player.New(service, exercises, nil),
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/routines", handler.HandleListRoutines).Methods("GET", "OPTIONS").Name("list-routines")
	r.HandleFunc("/routines", handler.HandleCreateRoutine).Methods("POST", "OPTIONS").Name("new-routine")
	r.HandleFunc("/routines/{id}", handler.HandleGetRoutine).Methods("GET", "OPTIONS").Name("get-routine")
	r.HandleFunc("/routines/{id}", handler.HandleUpdateRoutine).Methods("PUT", "OPTIONS").Name("update-routine")
	r.HandleFunc("/routines/{id}", handler.HandleDeleteRoutine).Methods("DELETE", "OPTIONS").Name("delete-routine")
	r.HandleFunc("/routines/{id}/exercises/{exerciseId}", handler.HandleAddExercise).Methods("POST", "OPTIONS").Name("add-routine-exercise")
	r.HandleFunc("/routines/{id}/exercises/{exerciseId}", handler.HandleRemoveExercise).Methods("DELETE", "OPTIONS").Name("remove-routine-exercise")
	r.HandleFunc("/routines/{id}/start", handler.HandleStartRoutine).Methods("POST", "OPTIONS").Name("start-routine")
	r.HandleFunc("/routines/{id}/complete", handler.HandleCompleteRoutine).Methods("POST", "OPTIONS").Name("complete-routine")

	r.HandleFunc("/progress", handler.HandleProgressData).Methods("GET", "OPTIONS").Name("progress-data")
	r.HandleFunc("/progress/recent", handler.HandleRecentActivity).Methods("GET", "OPTIONS").Name("recent-activity")
	r.HandleFunc("/progress/stats", handler.HandleProgressStats).Methods("GET", "OPTIONS").Name("progress-stats")

	r.HandleFunc("/exercises", handler.HandleListExercises).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises", handler.HandleAddExerciseToCatalog).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/exercises/categories", handler.HandleCategories).Methods("GET", "OPTIONS").Name("exercise-categories")
	r.HandleFunc("/exercises/{id}", handler.HandleGetExercise).Methods("GET", "OPTIONS").Name("get-exercise")
}

var errUnsupportedContentType = errors.New("content type must be application/json")

func decodeJSONBody(r *http.Request, v any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != pkg.ContentType.JSON {
		return errUnsupportedContentType
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid json body: %w", err)
	}
	return nil
}

// writeServiceError maps store and catalog errors to status codes.
func (handler *Handler) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, document.ErrValidation):
		log.Tracef("%s: %s", op, err)
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, player.ErrRoutineNotFound):
		pkg.WriteJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, player.ErrNoExercises):
		pkg.WriteJSONError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, document.ErrPersistence):
		log.Errorf("%s: %s", op, err)
		if handler.metricsManager != nil {
			handler.metricsManager.CounterPersistenceErrors.Inc()
		}
		pkg.WriteJSONError(w, http.StatusInternalServerError, document.ErrPersistence.Error())
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "internal error")
	}
}
