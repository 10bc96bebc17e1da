package damage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testChart(t *testing.T) *TypeChart {
	t.Helper()
	tc, err := NewTypeChart([]TypeDefinition{
		{ID: "NORMAL", Name: "Normal", IsRealType: true},
		{ID: "FIRE", Name: "Fire", Weaknesses: []Type{"WATER"}, Resistances: []Type{"FIRE", "GRASS"}, IsRealType: true},
		{ID: "WATER", Name: "Water", Weaknesses: []Type{"GRASS"}, Resistances: []Type{"FIRE", "WATER"}, IsRealType: true},
		{ID: "GRASS", Name: "Grass", Weaknesses: []Type{"FIRE"}, Resistances: []Type{"WATER", "GRASS"}, IsRealType: true},
		{ID: "BUG", Name: "Bug", Weaknesses: []Type{"FIRE"}, Resistances: []Type{"GRASS"}, IsRealType: true},
		{ID: "GHOST", Name: "Ghost", Immunities: []Type{"NORMAL"}, IsRealType: true},
		{ID: "QMARKS", Name: "???"},
	})
	require.NoError(t, err)
	return tc
}

func testCalculator(t *testing.T, opts ...Option) *Calculator {
	t.Helper()
	c, err := NewCalculator(testChart(t), opts...)
	require.NoError(t, err)
	return c
}

// attacker: level 50, 120 in both attacking stats, Fire type so Normal moves get no STAB.
func attacker() Combatant {
	return Combatant{
		ID:    "attacker",
		Name:  "Attacker",
		Level: 50,
		Stats: Stats{HP: 200, Attack: 120, Defense: 90, Speed: 160, SpAtk: 120, SpDef: 90},
		Type1: "FIRE",
	}
}

// defender: 100 in both defending stats, 150 HP, pure Normal.
func defender() Combatant {
	return Combatant{
		ID:    "defender",
		Name:  "Defender",
		Level: 50,
		Stats: Stats{HP: 150, Attack: 80, Defense: 100, Speed: 70, SpAtk: 80, SpDef: 100},
		Type1: "NORMAL",
	}
}

func tackle() Move {
	return Move{ID: "TACKLE", Name: "Tackle", Type: "NORMAL", Category: Physical, BasePower: 80}
}
