// core/profile/state.go
package profile

import (
	"fmt"
	"math"
	"strconv"
)

// Kind is the role of a profile HMM state.
type Kind uint8

const (
	Start Kind = iota
	Insert
	Match
	Delete
	End
)

func (k Kind) String() string {
	switch k {
	case Start:
		return "S"
	case Insert:
		return "I"
	case Match:
		return "M"
	case Delete:
		return "D"
	case End:
		return "E"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// State identifies a node of the profile topology. Index is the column
// position: 0..m for Insert, 1..m for Match and Delete, 0 for Start and End.
type State struct {
	Kind  Kind
	Index int
}

var (
	StartState = State{Kind: Start}
	EndState   = State{Kind: End}
)

func M(k int) State { return State{Kind: Match, Index: k} }
func D(k int) State { return State{Kind: Delete, Index: k} }
func I(k int) State { return State{Kind: Insert, Index: k} }

// String renders the canonical label: S, E, M3, D3, I0, ...
func (s State) String() string {
	switch s.Kind {
	case Start, End:
		return s.Kind.String()
	}
	return s.Kind.String() + strconv.Itoa(s.Index)
}

// Emits reports whether the state produces a symbol.
func (s State) Emits() bool { return s.Kind == Match || s.Kind == Insert }

// rank orders states as S, I0, M1, D1, I1, M2, ..., E.
func (s State) rank() int {
	switch s.Kind {
	case Start:
		return 0
	case Insert:
		return 3*s.Index + 1
	case Match:
		return 3*s.Index - 1
	case Delete:
		return 3 * s.Index
	}
	return math.MaxInt
}

// Less orders states the way matrix headers list them.
func Less(a, b State) bool { return a.rank() < b.rank() }

// States lists every state of a topology with m match columns in header order.
func States(m int) []State {
	out := make([]State, 0, 3*m+3)
	out = append(out, StartState, I(0))
	for k := 1; k <= m; k++ {
		out = append(out, M(k), D(k), I(k))
	}
	return append(out, EndState)
}

// ParseState is the inverse of State.String.
func ParseState(label string) (State, error) {
	switch label {
	case "S":
		return StartState, nil
	case "E":
		return EndState, nil
	case "":
		return State{}, fmt.Errorf("empty state label")
	}
	var kind Kind
	switch label[0] {
	case 'M':
		kind = Match
	case 'D':
		kind = Delete
	case 'I':
		kind = Insert
	default:
		return State{}, fmt.Errorf("unknown state label %q", label)
	}
	k, err := strconv.Atoi(label[1:])
	if err != nil || k < 0 || (k == 0 && kind != Insert) {
		return State{}, fmt.Errorf("bad state index in %q", label)
	}
	return State{Kind: kind, Index: k}, nil
}
