package hug_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wallhug/geom"
	"github.com/katalvlaran/wallhug/hug"
	"github.com/katalvlaran/wallhug/route"
	"github.com/katalvlaran/wallhug/wall"
)

func model(t *testing.T, s string) *wall.Model {
	t.Helper()
	ins, err := wall.ParseInstructions(s)
	require.NoError(t, err)
	m, err := wall.New(geom.Up, ins)
	require.NoError(t, err)
	return m
}

// record collects every emitted move.
func record(moves *[]hug.Move) hug.Option {
	return hug.WithOnMove(func(mv hug.Move) { *moves = append(*moves, mv) })
}

func kinds(moves []hug.Move) []hug.MoveKind {
	out := make([]hug.MoveKind, len(moves))
	for i, mv := range moves {
		out[i] = mv.Kind
	}
	return out
}

func TestTraverse_SquareLoop(t *testing.T) {
	// The wall closes on itself: the end is the origin.
	m := model(t, "R1,R1,R1,R1")
	require.Equal(t, m.Origin(), m.End())

	for _, h := range []hug.Handedness{hug.LeftHand, hug.RightHand} {
		var moves []hug.Move
		p, err := hug.Traverse(m, hug.WithHand(h), record(&moves))
		require.NoError(t, err, h)
		assert.Equal(t, m.Origin(), p.Start, h)
		assert.Empty(t, p.Steps, h)
		assert.Zero(t, p.Length(), h)
		assert.Empty(t, moves, h)
		assert.NoError(t, p.Validate(m), h)
	}
}

func TestTraverse_AnchorOnWall(t *testing.T) {
	// The wall doubles back under the origin, so the left-hand anchor (0,1)
	// is a wall cell:
	//
	//	.O##
	//	####    end (-1,1) at the left of this row
	m := model(t, "R2,R1,R3")
	require.Equal(t, geom.V(-1, 1), m.End())

	_, err := hug.Traverse(m, hug.WithHand(hug.LeftHand))
	assert.ErrorIs(t, err, route.ErrWallCrossed)
	assert.ErrorIs(t, err, geom.ErrInvariantViolation)

	p, err := hug.Traverse(m, hug.WithHand(hug.RightHand))
	require.NoError(t, err)
	assert.Equal(t, geom.V(0, -1), p.Start)
	assert.Equal(t, []geom.Vec2{geom.V(3, 0), geom.V(0, 3), geom.V(-4, 0), geom.V(0, -1)}, p.Steps)
	assert.Equal(t, int64(12), p.Length())
}

func TestTraverse_NotchBumps(t *testing.T) {
	m := model(t, "R2,R2,L3,L2,R2")
	require.Equal(t, geom.V(7, 0), m.End())

	var moves []hug.Move
	p, err := hug.Traverse(m, hug.WithHand(hug.RightHand), record(&moves))
	require.NoError(t, err)
	assert.Equal(t, geom.V(0, -1), p.Start)
	assert.Equal(t, []geom.Vec2{
		geom.V(3, 0), geom.V(0, 2), geom.V(1, 0), geom.V(0, -2), geom.V(3, 0), geom.V(0, 1),
	}, p.Steps)
	assert.Equal(t, int64(13), p.Length())

	assert.Equal(t, []hug.MoveKind{
		hug.MoveHug, hug.MoveTurn, hug.MoveBump, hug.MoveBump,
		hug.MoveHug, hug.MoveTurn, hug.MoveBeeLine, hug.MoveBeeLine,
	}, kinds(moves))
	var bumped []int
	for _, mv := range moves {
		if mv.Kind == hug.MoveBump {
			bumped = append(bumped, mv.Wall)
		}
	}
	assert.Equal(t, []int{1, 2}, bumped)

	p, err = hug.Traverse(m, hug.WithHand(hug.LeftHand))
	require.NoError(t, err)
	assert.Equal(t, geom.V(0, 1), p.Start)
	assert.Equal(t, []geom.Vec2{
		geom.V(1, 0), geom.V(0, 2), geom.V(5, 0), geom.V(0, -2), geom.V(1, 0), geom.V(0, -1),
	}, p.Steps)
	assert.Equal(t, int64(13), p.Length())
}

func TestTraverse_BeeLineFromBump(t *testing.T) {
	// The end is on the hugger's row before the first corner is reached.
	m := model(t, "R3,L1")
	require.Equal(t, geom.V(3, -1), m.End())

	var moves []hug.Move
	p, err := hug.Traverse(m, hug.WithHand(hug.RightHand), record(&moves))
	require.NoError(t, err)
	assert.Equal(t, []geom.Vec2{geom.V(3, 0)}, p.Steps)
	assert.Equal(t, int64(4), p.Length())

	require.Len(t, moves, 2)
	for _, mv := range moves {
		assert.Equal(t, hug.MoveBeeLine, mv.Kind)
		assert.Equal(t, 0, mv.Wall)
	}
	assert.True(t, moves[0].Step.IsZero(), "cursor already on the end's row")
}

func TestTraverse_StartOnEnd(t *testing.T) {
	// Left-hand anchor of this box is the open cell E itself.
	m := model(t, "R3,R2,R3,R1")
	p, err := hug.Traverse(m, hug.WithHand(hug.LeftHand))
	require.NoError(t, err)
	assert.Empty(t, p.Steps)
	assert.Equal(t, m.End(), p.Start)
	assert.Equal(t, int64(1), p.Length())

	p, err = hug.Traverse(m, hug.WithHand(hug.RightHand))
	require.NoError(t, err)
	assert.Equal(t, []geom.Vec2{
		geom.V(4, 0), geom.V(0, 4), geom.V(-5, 0), geom.V(0, -2), geom.V(1, 0),
	}, p.Steps)
	assert.Equal(t, int64(16), p.StepsLength())
}

func TestTraverse_Exhausted(t *testing.T) {
	// The end (3,1) is walled in from the outside.
	m := model(t, "R4,R2,R4,R1,R3")
	_, err := hug.Traverse(m, hug.WithHand(hug.RightHand))
	assert.ErrorIs(t, err, hug.ErrTraversalExhausted)
}

func TestTraverse_PathInvariants(t *testing.T) {
	cases := []struct {
		wall string
		hand hug.Handedness
		err  error
	}{
		{"R1,R1,R1,R1", hug.LeftHand, nil},
		{"R1,R1,R1,R1", hug.RightHand, nil},
		{"R2,R2,L3,L2,R2", hug.LeftHand, nil},
		{"R2,R2,L3,L2,R2", hug.RightHand, nil},
		{"R3,L1", hug.LeftHand, nil},
		{"R3,L1", hug.RightHand, nil},
		{"R3,R2,R3,R1", hug.LeftHand, nil},
		{"R3,R2,R3,R1", hug.RightHand, nil},
		{"R4,L2", hug.LeftHand, nil},
		{"R4,L2", hug.RightHand, nil},
		{"R2,R1,R3", hug.LeftHand, route.ErrWallCrossed},
		{"R2,R1,R3", hug.RightHand, nil},
		{"R4,R2,R4,R1,R3", hug.RightHand, hug.ErrTraversalExhausted},
	}
	for _, tc := range cases {
		t.Run(tc.wall+"/"+tc.hand.String(), func(t *testing.T) {
			m := model(t, tc.wall)
			var moves []hug.Move
			p, err := hug.Traverse(m, hug.WithHand(tc.hand), record(&moves))
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			require.NoError(t, p.Validate(m))
			assert.Equal(t, m.End(), p.Endpoint())

			// Every move is accounted for in the merged path.
			sum := p.Start
			for _, mv := range moves {
				assert.Equal(t, sum, mv.From)
				sum = sum.Add(mv.Step)
			}
			assert.Equal(t, m.End(), sum)
			assert.GreaterOrEqual(t, p.StepsLength(), p.Start.Dist(m.End()))
		})
	}
}

func TestTraverse_Errors(t *testing.T) {
	_, err := hug.Traverse(nil)
	assert.ErrorIs(t, err, hug.ErrNilModel)

	m := model(t, "R3,L1")
	_, err = hug.Traverse(m, hug.WithHand(0))
	assert.ErrorIs(t, err, hug.ErrOptionViolation)
	_, err = hug.Traverse(m, hug.WithHand(2))
	assert.ErrorIs(t, err, hug.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = hug.Traverse(model(t, "R2,R2,L3,L2,R2"), hug.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	// A nil context is ignored.
	_, err = hug.Traverse(m, hug.WithContext(nil))
	assert.NoError(t, err)
}

func TestParseHandedness(t *testing.T) {
	cases := []struct {
		in   string
		want hug.Handedness
	}{
		{"left", hug.LeftHand},
		{"l", hug.LeftHand},
		{"L", hug.LeftHand},
		{"right", hug.RightHand},
		{"r", hug.RightHand},
		{"R", hug.RightHand},
	}
	for _, tc := range cases {
		h, err := hug.ParseHandedness(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, h, tc.in)
	}

	_, err := hug.ParseHandedness("up")
	assert.ErrorIs(t, err, hug.ErrOptionViolation)

	assert.Equal(t, "left", hug.LeftHand.String())
	assert.Equal(t, "right", hug.RightHand.String())
	assert.Equal(t, "Handedness(0)", hug.Handedness(0).String())
	assert.Equal(t, "bee-line", hug.MoveBeeLine.String())
}
