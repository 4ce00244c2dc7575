//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"

	"github.com/2beens/physioroutines/internal/analytics"
	"github.com/2beens/physioroutines/internal/api"
	"github.com/2beens/physioroutines/internal/catalog"
	"github.com/2beens/physioroutines/internal/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestProgress() {
	ctx := context.Background()
	t := s.T()

	var stats analytics.Stats
	s.doRequest(ctx, "GET", "/progress/stats", nil, http.StatusOK, &stats)
	assert.Equal(t, analytics.Stats{}, stats)

	var morning, evening document.Routine
	s.doRequest(ctx, "POST", "/routines", api.CreateRoutineRequest{Name: "morning"}, http.StatusCreated, &morning)
	s.doRequest(ctx, "POST", "/routines", api.CreateRoutineRequest{Name: "evening"}, http.StatusCreated, &evening)

	for _, r := range []document.Routine{morning, evening, morning, evening} {
		s.doRequest(ctx, "POST", "/routines/"+r.ID+"/complete", api.CompleteRoutineRequest{
			Duration: 10,
		}, http.StatusCreated, nil)
	}

	s.doRequest(ctx, "GET", "/progress/stats", nil, http.StatusOK, &stats)
	assert.Equal(t, 1, stats.ActiveDays7)
	assert.Equal(t, 4, stats.Routines30)
	assert.Equal(t, 40, stats.Duration7)
	assert.Equal(t, 1, stats.CurrentStreak)

	var entries []document.ProgressEntry
	s.doRequest(ctx, "GET", "/progress?days=7", nil, http.StatusOK, &entries)
	require.Len(t, entries, 1)
	assert.Equal(t, document.MaxActivityLevel, entries[0].ActivityLevel)
	assert.Len(t, entries[0].RoutinesCompleted, 4)

	var recent []document.CompletionRecord
	s.doRequest(ctx, "GET", "/progress/recent?limit=3", nil, http.StatusOK, &recent)
	require.Len(t, recent, 3)
	assert.Equal(t, "evening", recent[0].RoutineName)

	s.doRequest(ctx, "GET", "/progress?days=week", nil, http.StatusBadRequest, nil)

	// deleting a routine drops its completions
	s.doRequest(ctx, "DELETE", "/routines/"+morning.ID, nil, http.StatusOK, nil)
	s.doRequest(ctx, "GET", "/progress/recent", nil, http.StatusOK, &recent)
	require.Len(t, recent, 2)
	for _, rc := range recent {
		assert.Equal(t, evening.ID, rc.RoutineID)
	}
	doc := s.storedDocument()
	require.Len(t, doc.Progress, 1)
	assert.Equal(t, document.MaxActivityLevel, doc.Progress[0].ActivityLevel)
}

func (s *IntegrationTestSuite) TestExercises() {
	ctx := context.Background()
	t := s.T()

	var exercises []catalog.Exercise
	s.doRequest(ctx, "GET", "/exercises?category=shoulder", nil, http.StatusOK, &exercises)
	require.NotEmpty(t, exercises)
	for _, e := range exercises {
		assert.Equal(t, "shoulder", e.Category)
	}

	var categories []string
	s.doRequest(ctx, "GET", "/exercises/categories", nil, http.StatusOK, &categories)
	assert.Contains(t, categories, "knee")

	var plank catalog.Exercise
	s.doRequest(ctx, "GET", "/exercises/15", nil, http.StatusOK, &plank)
	assert.Equal(t, "Plank", plank.Name)
	s.doRequest(ctx, "GET", "/exercises/999", nil, http.StatusNotFound, nil)

	duration := 45
	var added catalog.Exercise
	s.doRequest(ctx, "POST", "/exercises", catalog.Exercise{
		Name:         "Side Plank",
		Category:     "core",
		Description:  "Plank on one side.",
		Instructions: "Lie on the side\n\nLift the hips",
		Sets:         2,
		Duration:     &duration,
	}, http.StatusCreated, &added)
	require.NotEmpty(t, added.ID)
	assert.Equal(t, []string{"Lie on the side", "Lift the hips"}, added.Steps())

	s.doRequest(ctx, "GET", "/exercises/"+added.ID, nil, http.StatusOK, nil)
	s.doRequest(ctx, "POST", "/exercises", catalog.Exercise{Name: "No Sets"}, http.StatusBadRequest, nil)
}
