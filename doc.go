// Package wallhug finds a short route along a rectilinear wall that is given
// only as turn/distance instructions, without ever drawing the wall on a grid.
//
// The wall starts at the origin and ends at the target. Coordinates can be
// far too large to rasterise, so everything works on whole segments:
//
//	instructions ─► wall.Model ─► hug.Traverse ─► reduce.Reduce ─► length
//	                    │
//	                    └────────► astar.Search   (small walls only, ground truth)
//	                                   │
//	                                   └─► gridgraph   (raster, BFS)
//
// Packages:
//
//	geom/         Vec2, Segment and Rect on the integer plane (y grows downward)
//	wall/         instruction decoding, replay into a segment list, clearance queries
//	route/        the anchored step list and its invariants
//	hug/          left- or right-hand wall following, one segment per iteration
//	reduce/       local rewrites that shorten a path until none applies
//	gridgraph/    bounded grid raster of a wall and breadth-first search over it
//	astar/        exact shortest route over the bounded grid, for cross-checks
//	solver/       runs both hands and the reference concurrently, keeps the best
//	cmd/wallhug/  CLI and JSON/websocket API for renderers
//
// Quick example, a wall with a two-cell notch:
//
//	m := wall.MustNew(geom.Up, wall.MustParse("R2,R2,L3,L2,R2"))
//	res, _ := solver.Solve(ctx, m)   // res.Length == 9, res.Hand == hug.RightHand
//
//	O##..##E    the right hand walks along row -1, dips into the
//	..#..#..    notch and climbs out; the reducer folds the dip
//	..####..    away, leaving 1 + 7 + 1 = 9
package wallhug
