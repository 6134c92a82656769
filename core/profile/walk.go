// core/profile/walk.go
package profile

import "phmm-core/alignment"

// Event is one step of a sequence's path through the profile. Emits is set
// when To is a Match or Insert state and Symbol was produced there.
type Event struct {
	From, To State
	Symbol   byte
	Emits    bool
}

// Path is the replay of one aligned sequence.
type Path struct {
	Events []Event
	// Terminal is the index of the last state before End.
	Terminal int
}

// Walk replays seq through the topology implied by cols.
func Walk(seq string, cols Columns) Path {
	var p Path
	p.Terminal = walk(seq, cols, func(e Event) { p.Events = append(p.Events, e) })
	return p
}

// walk calls visit for every event, in order, and returns the terminal index.
// Gaps in insertion columns produce no event.
func walk(seq string, cols Columns, visit func(Event)) int {
	cur := StartState
	for i := 0; i < len(seq); i++ {
		sym := seq[i]
		var next State
		if cols.Ignored(i) {
			if sym == alignment.Gap {
				continue
			}
			// Start is index 0, so Start, Insert(k), Match(k) and Delete(k)
			// all move to Insert(k).
			next = I(cur.Index)
		} else if sym == alignment.Gap {
			next = D(cur.Index + 1)
		} else {
			next = M(cur.Index + 1)
		}
		e := Event{From: cur, To: next}
		if sym != alignment.Gap {
			e.Symbol, e.Emits = sym, true
		}
		visit(e)
		cur = next
	}
	visit(Event{From: cur, To: EndState})
	return cur.Index
}
