// Package reduce shortens a wall-hugging path by local rewrites until none
// applies, without ever letting the path touch the wall.
//
// The loop scans the steps for the first applicable rewrite, applies it and
// restarts from the beginning (first-applicable-wins):
//
//  1. DropZero: a zero step left by an earlier rewrite is deleted and its
//     neighbours, which share an axis, are merged.
//  2. For each window [A, B, C] in order (A and C share an axis):
//     ReorderMerge travels C right after A and then B; when that stays
//     clear and shortens A/C or B and its successor D, C folds into A and
//     B folds into D.
//     ShiftShorten, when A and C point opposite ways, moves k units of A's
//     tail into C, shifting B back by k; k is the largest value for which
//     every shifted B stays clear.
//
// Every rewrite strictly shortens the path or removes a step, and the length
// is bounded below by the Manhattan distance to the end, so the loop
// terminates. The rewrite cap only guards against a defect.
package reduce
