package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wallhug/geom"
	"github.com/katalvlaran/wallhug/hug"
)

func serve(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	as := NewAPIServer("127.0.0.1:0", false)
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	as.server.Handler.ServeHTTP(rec, req)
	return rec
}

func TestAPI_Healthz(t *testing.T) {
	rec := serve(t, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestAPI_Solve(t *testing.T) {
	rec := serve(t, http.MethodPost, "/solve",
		`{"instructions": "R2,R2,L3,L2,R2", "hand": "both", "reference": true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp solveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(9), resp.Length)
	assert.Equal(t, "right", resp.Hand)
	assert.Equal(t, geom.V(0, -1), resp.Start)
	assert.Equal(t, []geom.Vec2{geom.V(7, 0), geom.V(0, 1)}, resp.Steps)
	assert.Equal(t, geom.V(7, 0), resp.End)
	assert.Len(t, resp.Walls, 5)
	require.NotNil(t, resp.Reference)
	assert.Equal(t, int64(9), *resp.Reference)
	require.Len(t, resp.Variants, 2)
	assert.Equal(t, "left", resp.Variants[0].Hand)
	assert.Equal(t, int64(13), resp.Variants[0].Length)
}

func TestAPI_SolveErrors(t *testing.T) {
	cases := []struct {
		name   string
		method string
		body   string
		status int
	}{
		{"BadJSON", http.MethodPost, `{"instructions":`, http.StatusUnprocessableEntity},
		{"BadInstruction", http.MethodPost, `{"instructions": "R0"}`, http.StatusBadRequest},
		{"BadHand", http.MethodPost, `{"instructions": "R3,L1", "hand": "up"}`, http.StatusBadRequest},
		{"Sealed", http.MethodPost, `{"instructions": "R4,R2,R4,R1,R3", "hand": "right"}`, http.StatusUnprocessableEntity},
		{"HugeWall", http.MethodPost, `{"instructions": "R9223372036854775807", "reference": true}`, http.StatusBadRequest},
		{"WrongMethod", http.MethodGet, "", http.StatusMethodNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(t, tc.method, "/solve", tc.body)
			assert.Equal(t, tc.status, rec.Code, rec.Body.String())
		})
	}
}

func TestRunSolve_SingleHand(t *testing.T) {
	resp, err := runSolve(context.Background(), solveRequest{Instructions: "R3,R2,R3,R1", Hand: "left"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Length)
	assert.Equal(t, "left", resp.Hand)
	assert.NotNil(t, resp.Steps)
	assert.Empty(t, resp.Steps)
	assert.Nil(t, resp.Reference)
	assert.Len(t, resp.Variants, 1)
}

func TestRunSolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := runSolve(ctx, solveRequest{Instructions: "R2,R2,L3,L2,R2", Reference: true})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, http.StatusServiceUnavailable, solveStatus(err))
}

func TestSolveStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, solveStatus(fmt.Errorf("%w: R0", errBadRequest)))
	assert.Equal(t, http.StatusServiceUnavailable, solveStatus(fmt.Errorf("solver: %w", context.DeadlineExceeded)))
	assert.Equal(t, http.StatusUnprocessableEntity, solveStatus(hug.ErrTraversalExhausted))
}

func TestParseHands(t *testing.T) {
	both := []hug.Handedness{hug.LeftHand, hug.RightHand}
	for in, want := range map[string][]hug.Handedness{
		"":      both,
		"both":  both,
		"left":  {hug.LeftHand},
		"r":     {hug.RightHand},
		"right": {hug.RightHand},
	} {
		got, err := parseHands(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := parseHands("sideways")
	assert.ErrorIs(t, err, hug.ErrOptionViolation)
}
