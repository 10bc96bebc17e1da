package damage

// PartyMember is a combatant together with the moves it can use.
type PartyMember struct {
	Combatant Combatant
	Moves     []Move
}

// TypeCoverage counts how a party fares against a single type.
//
// SuperEffective and NotVeryEffective count members whose best damaging
// move hits a pure defender of Type for more or less than neutral damage.
// Weak and Resists count members that take more or less than neutral damage
// from an attack of Type. Immunity counts as resisting.
type TypeCoverage struct {
	Type             Type   `json:"type"`
	Name             string `json:"name"`
	SuperEffective   int    `json:"superEffective"`
	NotVeryEffective int    `json:"notVeryEffective"`
	Weak             int    `json:"weak"`
	Resists          int    `json:"resists"`
}

// Coverage summarises the party's offensive and defensive matchups against
// every real type of chart, in the chart's type order. Members with no
// damaging move are left out of the offensive counts.
func Coverage(chart *TypeChart, party []PartyMember) ([]TypeCoverage, error) {
	types := chart.Types()
	out := make([]TypeCoverage, 0, len(types))
	for _, t := range types {
		tc := TypeCoverage{Type: t, Name: chart.Name(t)}
		for _, member := range party {
			best, ok, err := bestMatchup(chart, member.Moves, t)
			if err != nil {
				return nil, err
			}
			if ok {
				switch {
				case best > 1:
					tc.SuperEffective++
				case best < 1:
					tc.NotVeryEffective++
				}
			}

			taken, err := chart.Matchup(t, member.Combatant.Type1, member.Combatant.Type2)
			if err != nil {
				return nil, err
			}
			switch {
			case taken > 1:
				tc.Weak++
			case taken < 1:
				tc.Resists++
			}
		}
		out = append(out, tc)
	}
	return out, nil
}

// bestMatchup is the highest multiplier any damaging move reaches against a
// pure defender of type t.
func bestMatchup(chart *TypeChart, moves []Move, t Type) (float64, bool, error) {
	var best float64
	found := false
	for _, mv := range moves {
		if mv.Category == Status {
			continue
		}
		m, err := chart.Matchup(mv.Type, t, "")
		if err != nil {
			return 0, false, err
		}
		if !found || m > best {
			best, found = m, true
		}
	}
	return best, found, nil
}
