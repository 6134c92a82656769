// core/profile/matrix.go
package profile

import "gonum.org/v1/gonum/mat"

// TransitionMatrix returns the dense transition table; rows and columns follow
// m.States(). This is the layout decoders index by state position.
func (m *Model) TransitionMatrix() *mat.Dense {
	states := m.States()
	pos := make(map[State]int, len(states))
	for i, s := range states {
		pos[s] = i
	}
	out := mat.NewDense(len(states), len(states), nil)
	for from, row := range m.Transitions {
		i, ok := pos[from]
		if !ok {
			continue
		}
		for to, p := range row {
			if j, ok := pos[to]; ok {
				out.Set(i, j, p)
			}
		}
	}
	return out
}

// EmissionMatrix returns the dense emission table: rows follow m.States(),
// columns follow m.Alphabet. Non-emitting rows are zero.
func (m *Model) EmissionMatrix() *mat.Dense {
	states := m.States()
	out := mat.NewDense(len(states), len(m.Alphabet), nil)
	for i, s := range states {
		row := m.Emissions[s]
		for j, sym := range m.Alphabet {
			out.Set(i, j, row[sym])
		}
	}
	return out
}
