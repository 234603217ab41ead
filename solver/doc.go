// Package solver runs the whole pipeline on one wall: each handedness is
// traversed and reduced in its own goroutine, the optional reference search
// in another, and the shortest successful variant wins.
//
// The wall model is shared read-only; every goroutine writes only its own
// slot of the result, so the join is the only synchronisation.
//
// Cancelling the context stops every goroutine at its next cancellation
// check, and Solve returns the context error.
package solver
