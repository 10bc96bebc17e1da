package damage

import (
	"fmt"
	"sort"
)

// TypeDefinition describes one type from the defending side: which attacking
// types hit it for double, half, or no damage.
type TypeDefinition struct {
	ID          Type
	Name        string
	Weaknesses  []Type
	Resistances []Type
	Immunities  []Type
	IsRealType  bool
}

// TypeChart is an attack type × defense type lookup. It is never mutated after
// NewTypeChart returns, so one chart may be shared by any number of goroutines.
type TypeChart struct {
	mult  map[Type]map[Type]float64
	names map[Type]string
	real  []Type
}

// NewTypeChart builds the chart from per-type definitions. Every type named in a
// weakness, resistance or immunity list must itself be defined.
func NewTypeChart(defs []TypeDefinition) (*TypeChart, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("type chart: no types defined")
	}

	tc := &TypeChart{
		mult:  make(map[Type]map[Type]float64, len(defs)),
		names: make(map[Type]string, len(defs)),
	}
	for _, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("type chart: type with empty id")
		}
		if _, dup := tc.names[d.ID]; dup {
			return nil, fmt.Errorf("type chart: duplicate type %s", d.ID)
		}
		tc.names[d.ID] = d.Name
		if d.IsRealType {
			tc.real = append(tc.real, d.ID)
		}
	}
	for atk := range tc.names {
		row := make(map[Type]float64, len(defs))
		for _, d := range defs {
			row[d.ID] = 1
		}
		tc.mult[atk] = row
	}

	for _, d := range defs {
		apply := func(list []Type, v float64) error {
			for _, atk := range list {
				row, ok := tc.mult[atk]
				if !ok {
					return fmt.Errorf("type chart: %s references undefined type %s", d.ID, atk)
				}
				row[d.ID] = v
			}
			return nil
		}
		// immunities win over resistances, resistances over weaknesses
		if err := apply(d.Weaknesses, 2); err != nil {
			return nil, err
		}
		if err := apply(d.Resistances, 0.5); err != nil {
			return nil, err
		}
		if err := apply(d.Immunities, 0); err != nil {
			return nil, err
		}
	}

	sort.Slice(tc.real, func(i, j int) bool { return tc.real[i] < tc.real[j] })
	return tc, nil
}

// Effectiveness returns the multiplier of attack against a single defending type.
func (tc *TypeChart) Effectiveness(attack, defend Type) (float64, error) {
	row, ok := tc.mult[attack]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownType, attack)
	}
	v, ok := row[defend]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownType, defend)
	}
	return v, nil
}

// Matchup multiplies the effectiveness against both defending types.
// An empty defend2 is ignored.
func (tc *TypeChart) Matchup(attack, defend1, defend2 Type) (float64, error) {
	m, err := tc.Effectiveness(attack, defend1)
	if err != nil {
		return 0, err
	}
	if defend2 == "" {
		return m, nil
	}
	m2, err := tc.Effectiveness(attack, defend2)
	if err != nil {
		return 0, err
	}
	return m * m2, nil
}

func (tc *TypeChart) Has(t Type) bool {
	_, ok := tc.names[t]
	return ok
}

// Name returns the display name of t, or the id if it has none.
func (tc *TypeChart) Name(t Type) string {
	if n := tc.names[t]; n != "" {
		return n
	}
	return string(t)
}

// Types lists the real types in id order.
func (tc *TypeChart) Types() []Type {
	return append([]Type(nil), tc.real...)
}
