//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/2beens/sensefit/internal/stats"
	"github.com/2beens/sensefit/internal/workout"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) doRequest(
	ctx context.Context,
	method, path, body string,
	expectedStatus int,
) []byte {
	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reader)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	require.Equal(s.T(), expectedStatus, resp.StatusCode, string(respBytes))
	return respBytes
}

func decodeInto[T any](s *IntegrationTestSuite, raw []byte) T {
	var v T
	require.NoError(s.T(), json.NewDecoder(bytes.NewReader(raw)).Decode(&v))
	return v
}

func (s *IntegrationTestSuite) finishWorkout(ctx context.Context, name string) workout.Workout {
	s.doRequest(ctx, "POST", "/workout/start", `{"name":"`+name+`"}`, http.StatusCreated)

	exercise := decodeInto[workout.Exercise](s, s.doRequest(ctx, "POST", "/workout/exercises", `{"libraryId":"back-1"}`, http.StatusCreated))
	completed := decodeInto[workout.Set](s, s.doRequest(ctx, "POST", "/workout/exercises/"+exercise.ID+"/sets", `{"weight":100,"reps":10}`, http.StatusCreated))
	s.doRequest(ctx, "POST", "/workout/exercises/"+exercise.ID+"/sets/"+completed.ID+"/toggle", "", http.StatusOK)
	// prefilled from the last set, left uncompleted
	s.doRequest(ctx, "POST", "/workout/exercises/"+exercise.ID+"/sets", "", http.StatusCreated)

	return decodeInto[workout.Workout](s, s.doRequest(ctx, "POST", "/workout/finish", "", http.StatusOK))
}

func (s *IntegrationTestSuite) TestWorkoutLifecycle() {
	t := s.T()
	ctx := context.Background()

	finished := s.finishWorkout(ctx, "Pull Day")
	assert.Equal(t, testUserID, finished.UserID)
	assert.Equal(t, workout.StatusCompleted, finished.Status)
	require.NotNil(t, finished.TotalVolume)
	// finish volume counts all sets
	assert.Equal(t, 2000.0, *finished.TotalVolume)
	require.NotNil(t, finished.TotalSets)
	assert.Equal(t, 2, *finished.TotalSets)

	// history is persisted in postgres
	var raw []byte
	require.NoError(t, s.DB.QueryRowContext(ctx, `SELECT value FROM blob_store WHERE key = $1`, "workouts").Scan(&raw))
	assert.Contains(t, string(raw), finished.ID)

	history := decodeInto[[]workout.Workout](s, s.doRequest(ctx, "GET", "/workouts", "", http.StatusOK))
	require.NotEmpty(t, history)
	assert.Equal(t, finished.ID, history[0].ID)

	progress := decodeInto[stats.Progress](s, s.doRequest(ctx, "GET", "/stats/progress", "", http.StatusOK))
	assert.GreaterOrEqual(t, progress.TotalWorkouts, 1)
	// stats volume counts completed sets only
	assert.GreaterOrEqual(t, progress.TotalVolume, 1000.0)

	s.doRequest(ctx, "DELETE", "/workouts/"+finished.ID, "", http.StatusOK)
	history = decodeInto[[]workout.Workout](s, s.doRequest(ctx, "GET", "/workouts", "", http.StatusOK))
	for _, w := range history {
		assert.NotEqual(t, finished.ID, w.ID)
	}
}

func (s *IntegrationTestSuite) TestWorkoutStateErrors() {
	ctx := context.Background()

	s.doRequest(ctx, "POST", "/workout/finish", "", http.StatusConflict)
	s.doRequest(ctx, "POST", "/workout/start", `{"name":"A"}`, http.StatusCreated)
	s.doRequest(ctx, "POST", "/workout/start", `{"name":"B"}`, http.StatusConflict)
	s.doRequest(ctx, "POST", "/workout/exercises/nope/sets", `{"weight":-1}`, http.StatusBadRequest)
	s.doRequest(ctx, "POST", "/workout/discard", "", http.StatusOK)
	s.doRequest(ctx, "GET", "/workout/active", "", http.StatusNotFound)
}

func (s *IntegrationTestSuite) TestMCPOverHTTP() {
	t := s.T()
	ctx := context.Background()
	s.finishWorkout(ctx, "MCP Day")

	client := mcp.NewClient(&mcp.Implementation{Name: "integration-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: serverEndpoint + "/mcp"}, nil)
	require.NoError(t, err)
	defer session.Close()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "list_workouts",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "MCP Day")
}
