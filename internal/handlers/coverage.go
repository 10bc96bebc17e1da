package handlers

import (
	"context"
	"net/http"

	"github.com/JadedPigeon/tectoniccalc/internal/damage"
	"github.com/JadedPigeon/tectoniccalc/internal/database"
)

// partyForCoverage loads every party member with its species' moves. Moves
// are fetched once per species.
func (cfg *Config) partyForCoverage(ctx context.Context, rows []database.GetAllUserPokemonRow) ([]damage.PartyMember, error) {
	movesBySpecies := map[int32][]damage.Move{}
	members := make([]damage.PartyMember, 0, len(rows))
	for _, row := range rows {
		c, err := combatant(row.UserPokemonID.String(), database.Pokedex{
			ID:             row.ID,
			Name:           row.Name,
			Type1:          row.Type1,
			Type2:          row.Type2,
			Hp:             row.Hp,
			Attack:         row.Attack,
			Defense:        row.Defense,
			SpecialAttack:  row.SpecialAttack,
			SpecialDefense: row.SpecialDefense,
			Speed:          row.Speed,
		}, row.Level, row.Status)
		if err != nil {
			return nil, err
		}

		moves, ok := movesBySpecies[row.ID]
		if !ok {
			dbMoves, err := cfg.DB.GetPokemonMoves(ctx, row.ID)
			if err != nil {
				return nil, err
			}
			for _, m := range dbMoves {
				mv, err := moveFromRow(m)
				if err != nil {
					return nil, err
				}
				moves = append(moves, mv)
			}
			movesBySpecies[row.ID] = moves
		}
		members = append(members, damage.PartyMember{Combatant: c, Moves: moves})
	}
	return members, nil
}

// PartyCoverageHandler reports, for every type, how many party members hit it
// super effectively or not very effectively with their best move, and how
// many are weak to or resist it.
func (cfg *Config) PartyCoverageHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, ErrUnauthorized.Error())
		return
	}

	ctx := r.Context()
	rows, err := cfg.DB.GetAllUserPokemon(ctx, user.ID)
	if err != nil {
		cfg.fail(w, err, "")
		return
	}
	party, err := cfg.partyForCoverage(ctx, rows)
	if err != nil {
		cfg.fail(w, err, "")
		return
	}

	coverage, err := damage.Coverage(cfg.Calc.Chart(), party)
	if err != nil {
		cfg.fail(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, coverage)
}
