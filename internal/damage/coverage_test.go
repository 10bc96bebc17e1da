package damage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverage(t *testing.T) {
	t.Parallel()

	ember := Move{ID: "EMBER", Type: "FIRE", Category: Special, BasePower: 40}
	vine := Move{ID: "VINEWHIP", Type: "GRASS", Category: Physical, BasePower: 45}
	growl := Move{ID: "GROWL", Type: "NORMAL", Category: Status}

	party := []PartyMember{
		{Combatant: Combatant{Type1: "FIRE"}, Moves: []Move{ember, tackle()}},
		{Combatant: Combatant{Type1: "GRASS"}, Moves: []Move{growl, vine}},
		// no damaging move: defensive counts only
		{Combatant: Combatant{Type1: "WATER"}, Moves: []Move{growl}},
	}

	got, err := Coverage(testChart(t), party)
	require.NoError(t, err)

	assert.Equal(t, []TypeCoverage{
		{Type: "BUG", Name: "Bug", SuperEffective: 1, NotVeryEffective: 1},
		{Type: "FIRE", Name: "Fire", NotVeryEffective: 1, Weak: 1, Resists: 2},
		{Type: "GHOST", Name: "Ghost"},
		{Type: "GRASS", Name: "Grass", SuperEffective: 1, NotVeryEffective: 1, Weak: 1, Resists: 2},
		{Type: "NORMAL", Name: "Normal"},
		{Type: "WATER", Name: "Water", SuperEffective: 1, Weak: 1, Resists: 2},
	}, got)
}

func TestCoverage_BestMoveAndDualTypes(t *testing.T) {
	t.Parallel()

	chart := testChart(t)
	// Fire beats Bug, Normal is stopped by Ghost; the best move decides.
	ember := Move{ID: "EMBER", Type: "FIRE", Category: Special, BasePower: 40}
	party := []PartyMember{
		{Combatant: Combatant{Type1: "GHOST", Type2: "BUG"}, Moves: []Move{tackle(), ember}},
	}

	got, err := Coverage(chart, party)
	require.NoError(t, err)

	byType := map[Type]TypeCoverage{}
	for _, c := range got {
		byType[c.Type] = c
	}
	assert.Equal(t, 1, byType["BUG"].SuperEffective)
	assert.Equal(t, 0, byType["GHOST"].NotVeryEffective, "ember is neutral on Ghost")
	assert.Equal(t, 1, byType["NORMAL"].Resists, "immunity counts as resisting")
	assert.Equal(t, 1, byType["FIRE"].Weak, "bug weakness carries through the second type")
	assert.Equal(t, 1, byType["GRASS"].Resists)
}

func TestCoverage_EmptyParty(t *testing.T) {
	t.Parallel()

	got, err := Coverage(testChart(t), nil)
	require.NoError(t, err)
	require.Len(t, got, 6)
	for _, c := range got {
		assert.Zero(t, c.SuperEffective+c.NotVeryEffective+c.Weak+c.Resists, c.Type)
	}
}

func TestCoverage_UnknownMoveType(t *testing.T) {
	t.Parallel()

	party := []PartyMember{
		{Combatant: Combatant{Type1: "FIRE"}, Moves: []Move{{ID: "X", Type: "SHADOW", Category: Physical, BasePower: 10}}},
	}
	_, err := Coverage(testChart(t), party)
	assert.ErrorIs(t, err, ErrUnknownType)
}
