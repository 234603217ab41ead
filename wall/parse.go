package wall

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseInstructions decodes the comma-separated puzzle form, e.g.
// "R3,R4,L3,L4". Tokens may be surrounded by whitespace; each is a turn
// letter followed by a positive decimal distance.
// Returns ErrMalformedWall for an empty input or any bad token.
func ParseInstructions(s string) ([]Instruction, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty instruction list", ErrMalformedWall)
	}
	parts := strings.Split(s, ",")
	out := make([]Instruction, 0, len(parts))
	for i, tok := range parts {
		tok = strings.TrimSpace(tok)
		if len(tok) < 2 {
			return nil, fmt.Errorf("%w: token %d %q is too short", ErrMalformedWall, i, tok)
		}
		turn := Turn(tok[0])
		if turn != TurnLeft && turn != TurnRight {
			return nil, fmt.Errorf("%w: token %d %q has unknown turn", ErrMalformedWall, i, tok)
		}
		n, err := strconv.ParseInt(tok[1:], 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: token %d %q has bad distance", ErrMalformedWall, i, tok)
		}
		out = append(out, Instruction{Turn: turn, Distance: n})
	}

	return out, nil
}

// MustParse is ParseInstructions for literals in tests and examples.
func MustParse(s string) []Instruction {
	ins, err := ParseInstructions(s)
	if err != nil {
		panic(err)
	}
	return ins
}
