package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/coder/websocket"

	"github.com/katalvlaran/wallhug/geom"
	"github.com/katalvlaran/wallhug/hug"
	"github.com/katalvlaran/wallhug/reduce"
	"github.com/katalvlaran/wallhug/solver"
)

// traceEvent is one websocket message of GET /trace. Type is "move",
// "rewrite", "result" or "error".
type traceEvent struct {
	Type   string         `json:"type"`
	Hand   string         `json:"hand,omitempty"`
	Kind   string         `json:"kind,omitempty"` // move kind or rewrite rule
	Wall   int            `json:"wall,omitempty"`
	Index  int            `json:"index,omitempty"`
	From   *geom.Vec2     `json:"from,omitempty"`
	Step   *geom.Vec2     `json:"step,omitempty"`
	Before int64          `json:"before,omitempty"`
	After  int64          `json:"after,omitempty"`
	Result *solveResponse `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// recorder collects hook events from the concurrently running variants.
type recorder struct {
	mu     sync.Mutex
	events []traceEvent
}

func (rc *recorder) add(ev traceEvent) {
	rc.mu.Lock()
	rc.events = append(rc.events, ev)
	rc.mu.Unlock()
}

func (rc *recorder) options() []solver.Option {
	return []solver.Option{
		solver.WithOnMove(func(h hug.Handedness, mv hug.Move) {
			from, step := mv.From, mv.Step
			rc.add(traceEvent{Type: "move", Hand: h.String(), Kind: mv.Kind.String(), Wall: mv.Wall, From: &from, Step: &step})
		}),
		solver.WithOnRewrite(func(h hug.Handedness, rw reduce.Rewrite) {
			rc.add(traceEvent{Type: "rewrite", Hand: h.String(), Kind: rw.Rule.String(), Index: rw.Index, Before: rw.Before, After: rw.After})
		}),
	}
}

// handleTrace solves the wall named by the query string and streams every
// move and rewrite, then the result, over a websocket.
//
//	GET /trace?instructions=R3,L1&hand=right&reference=true
func handleTrace(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := solveRequest{
		Instructions: q.Get("instructions"),
		Hand:         q.Get("hand"),
		Reference:    q.Get("reference") == "true",
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		log.Printf("trace: accept: %v", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")
	ctx := r.Context()

	var rc recorder
	solveCtx, cancel := context.WithTimeout(ctx, solveTimeout)
	resp, err := runSolve(solveCtx, req, rc.options()...)
	cancel()
	// Variants interleave; the stream keeps the order the hooks fired in.
	for _, ev := range rc.events {
		if err := writeEvent(ctx, conn, ev); err != nil {
			log.Printf("trace: write: %v", err)
			return
		}
	}
	final := traceEvent{Type: "result", Result: &resp}
	if err != nil {
		final = traceEvent{Type: "error", Error: err.Error()}
	}
	if err := writeEvent(ctx, conn, final); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("trace: write: %v", err)
	}
}

func writeEvent(ctx context.Context, conn *websocket.Conn, ev traceEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, data)
}
