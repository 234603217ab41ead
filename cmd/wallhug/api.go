package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/wallhug/geom"
	"github.com/katalvlaran/wallhug/hug"
	"github.com/katalvlaran/wallhug/solver"
	"github.com/katalvlaran/wallhug/wall"
)

var errBadRequest = errors.New("bad request")

// solveTimeout keeps a solve inside the server's WriteTimeout.
const solveTimeout = 4 * time.Second

type APIServer struct {
	server *http.Server
}

// solveRequest is the body of POST /solve and the CLI's parsed input.
type solveRequest struct {
	Instructions string `json:"instructions"`
	Hand         string `json:"hand"` // left, right or both (default)
	Reference    bool   `json:"reference"`
}

type variantResponse struct {
	Hand   string `json:"hand"`
	Raw    int64  `json:"raw,omitempty"`
	Length int64  `json:"length,omitempty"`
	Error  string `json:"error,omitempty"`
}

// solveResponse carries enough for a renderer to draw the wall and the path.
type solveResponse struct {
	Length    int64             `json:"length"`
	Hand      string            `json:"hand"`
	Origin    geom.Vec2         `json:"origin"`
	End       geom.Vec2         `json:"end"`
	Start     geom.Vec2         `json:"start"`
	Steps     []geom.Vec2       `json:"steps"`
	Walls     []geom.Segment    `json:"walls"`
	Variants  []variantResponse `json:"variants"`
	Reference *int64            `json:"reference,omitempty"`
}

func jsonResponse(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	log.Printf("%d %s %s", status, r.Method, r.URL.Path)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	e := json.NewEncoder(w)
	e.Encode(data)
}

func errorResponse(w http.ResponseWriter, r *http.Request, status int, err error) {
	jsonResponse(w, r, status, map[string]interface{}{"error": err.Error()})
}

func NewAPIServer(listenAddr string, trace bool) *APIServer {
	router := mux.NewRouter()
	server := &http.Server{
		Addr:           listenAddr,
		Handler:        router,
		ReadTimeout:    1 * time.Second,
		WriteTimeout:   5 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, r, http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"version": version,
		})
	}).Methods("GET")

	router.HandleFunc("/solve", func(w http.ResponseWriter, r *http.Request) {
		var req solveRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
			errorResponse(w, r, http.StatusUnprocessableEntity, err)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), solveTimeout)
		defer cancel()
		resp, err := runSolve(ctx, req, traceOptions(trace)...)
		if err != nil {
			errorResponse(w, r, solveStatus(err), err)
			return
		}
		jsonResponse(w, r, http.StatusOK, resp)
	}).Methods("POST")

	router.HandleFunc("/trace", handleTrace).Methods("GET")

	return &APIServer{server: server}
}

func (as *APIServer) Start() {
	log.Printf("Listening on http://%s", as.server.Addr)
	log.Fatal(as.server.ListenAndServe())
}

// runSolve decodes req, solves it and shapes the response.
func runSolve(ctx context.Context, req solveRequest, extra ...solver.Option) (solveResponse, error) {
	ins, err := wall.ParseInstructions(req.Instructions)
	if err != nil {
		return solveResponse{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	m, err := wall.New(geom.Up, ins)
	if err != nil {
		return solveResponse{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	hands, err := parseHands(req.Hand)
	if err != nil {
		return solveResponse{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}

	opts := append([]solver.Option{
		solver.WithHands(hands...),
		solver.WithReference(req.Reference),
	}, extra...)
	res, err := solver.Solve(ctx, m, opts...)
	if err != nil {
		return solveResponse{}, err
	}

	resp := solveResponse{
		Length:   res.Length,
		Hand:     res.Hand.String(),
		Origin:   m.Origin(),
		End:      m.End(),
		Start:    res.Path.Start,
		Steps:    res.Path.Steps,
		Walls:    m.Segments(),
		Variants: make([]variantResponse, len(res.Variants)),
	}
	if resp.Steps == nil {
		resp.Steps = []geom.Vec2{}
	}
	for i, v := range res.Variants {
		vr := variantResponse{Hand: v.Hand.String(), Raw: v.Raw, Length: v.Length}
		if v.Err != nil {
			vr.Error = v.Err.Error()
		}
		resp.Variants[i] = vr
	}
	if res.Reference >= 0 {
		ref := res.Reference
		resp.Reference = &ref
	}

	return resp, nil
}

// solveStatus maps a runSolve error to its HTTP status.
func solveStatus(err error) int {
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	}
	return http.StatusUnprocessableEntity
}

// parseHands accepts left, right or both; empty means both.
func parseHands(s string) ([]hug.Handedness, error) {
	if s == "" || s == "both" {
		return []hug.Handedness{hug.LeftHand, hug.RightHand}, nil
	}
	h, err := hug.ParseHandedness(s)
	if err != nil {
		return nil, err
	}
	return []hug.Handedness{h}, nil
}
