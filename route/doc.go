// Package route holds the rectilinear Path produced by wall-hugging traversal
// and rewritten by the reducer.
//
// A Path starts at an anchor cell next to the origin and is a list of
// axis-aligned steps. Its invariants, checked by Validate:
//
//   - summing the steps from Start reaches the wall's end;
//   - every step is nonzero and consecutive steps alternate axis;
//   - no point traced by a step is a wall cell, except the final point End.
//
// Add keeps the alternation invariant while a path is being emitted, so a
// path is valid at every stage, not only once finished.
package route
