//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"

	"github.com/2beens/physioroutines/internal/api"
	"github.com/2beens/physioroutines/internal/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestRoutines() {
	ctx := context.Background()
	t := s.T()

	var routines []document.Routine
	s.doRequest(ctx, "GET", "/routines", nil, http.StatusOK, &routines)
	assert.Empty(t, routines)

	var created document.Routine
	s.doRequest(ctx, "POST", "/routines", api.CreateRoutineRequest{
		Name:      "  back pain  ",
		Exercises: []string{"5", "7"},
	}, http.StatusCreated, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "back pain", created.Name)
	assert.Nil(t, created.LastUsed)

	s.doRequest(ctx, "POST", "/routines", api.CreateRoutineRequest{Name: " "}, http.StatusBadRequest, nil)

	// persisted in postgres
	doc := s.storedDocument()
	require.Len(t, doc.Routines, 1)
	assert.Equal(t, created.ID, doc.Routines[0].ID)

	var updated document.Routine
	s.doRequest(ctx, "PUT", "/routines/"+created.ID, map[string]any{
		"name": "lower back",
	}, http.StatusOK, &updated)
	assert.Equal(t, "lower back", updated.Name)
	assert.Equal(t, []string{"5", "7"}, updated.Exercises)
	assert.NotNil(t, updated.LastUsed)

	var changed api.RoutineExerciseResponse
	s.doRequest(ctx, "POST", "/routines/"+created.ID+"/exercises/8", nil, http.StatusOK, &changed)
	assert.True(t, changed.Changed)
	s.doRequest(ctx, "POST", "/routines/"+created.ID+"/exercises/8", nil, http.StatusOK, &changed)
	assert.False(t, changed.Changed)
	s.doRequest(ctx, "POST", "/routines/"+created.ID+"/exercises/nope", nil, http.StatusNotFound, nil)

	s.doRequest(ctx, "DELETE", "/routines/"+created.ID+"/exercises/5", nil, http.StatusOK, &changed)
	assert.True(t, changed.Changed)

	var fetched document.Routine
	s.doRequest(ctx, "GET", "/routines/"+created.ID, nil, http.StatusOK, &fetched)
	assert.Equal(t, []string{"7", "8"}, fetched.Exercises)

	var deleted api.DeleteRoutineResponse
	s.doRequest(ctx, "DELETE", "/routines/"+created.ID, nil, http.StatusOK, &deleted)
	assert.Equal(t, created.ID, deleted.DeletedID)
	s.doRequest(ctx, "DELETE", "/routines/"+created.ID, nil, http.StatusNotFound, nil)
	s.doRequest(ctx, "GET", "/routines/"+created.ID, nil, http.StatusNotFound, nil)
}

func (s *IntegrationTestSuite) TestRoutineSession() {
	ctx := context.Background()
	t := s.T()

	var created document.Routine
	s.doRequest(ctx, "POST", "/routines", api.CreateRoutineRequest{
		Name:      "knee",
		Exercises: []string{"12", "removed-exercise", "15"},
	}, http.StatusCreated, &created)

	var started api.StartRoutineResponse
	s.doRequest(ctx, "POST", "/routines/"+created.ID+"/start", nil, http.StatusOK, &started)
	assert.NotNil(t, started.Routine.LastUsed)
	require.Len(t, started.Exercises, 2)
	assert.Equal(t, "12", started.Exercises[0].ID)
	assert.Equal(t, "15", started.Exercises[1].ID)

	var entry document.ProgressEntry
	s.doRequest(ctx, "POST", "/routines/"+created.ID+"/complete", api.CompleteRoutineRequest{
		Duration: 12,
	}, http.StatusCreated, &entry)
	assert.Equal(t, 1, entry.ActivityLevel)
	require.Len(t, entry.RoutinesCompleted, 1)
	assert.Equal(t, "knee", entry.RoutinesCompleted[0].RoutineName)

	s.doRequest(ctx, "POST", "/routines/missing/start", nil, http.StatusNotFound, nil)
	s.doRequest(ctx, "POST", "/routines/missing/complete", api.CompleteRoutineRequest{}, http.StatusNotFound, nil)

	var empty document.Routine
	s.doRequest(ctx, "POST", "/routines", api.CreateRoutineRequest{Name: "empty"}, http.StatusCreated, &empty)
	s.doRequest(ctx, "POST", "/routines/"+empty.ID+"/start", nil, http.StatusUnprocessableEntity, nil)
}
