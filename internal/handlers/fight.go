package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/JadedPigeon/tectoniccalc/internal/damage"
	"github.com/JadedPigeon/tectoniccalc/internal/database"
	"github.com/JadedPigeon/tectoniccalc/internal/describe"
	"go.uber.org/zap"
)

type moveDTO struct {
	ID          int32   `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Power       int32   `json:"power"`
	Spread      bool    `json:"spread,omitempty"`
	MinHits     *int32  `json:"min_hits,omitempty"`
	MaxHits     *int32  `json:"max_hits,omitempty"`
	Description *string `json:"description,omitempty"`
}

func toMoveDTO(m database.Move) moveDTO {
	dto := moveDTO{
		ID:       m.MoveID,
		Name:     m.Name,
		Type:     m.Type,
		Category: m.Category,
		Power:    m.Power,
		Spread:   m.IsSpread,
	}
	if m.MinHits.Valid {
		dto.MinHits = &m.MinHits.Int32
	}
	if m.MaxHits.Valid {
		dto.MaxHits = &m.MaxHits.Int32
	}
	if m.Description.Valid {
		dto.Description = &m.Description.String
	}
	return dto
}

// MoveOutcome is one move resolved against the opposing side.
type MoveOutcome struct {
	Move    moveDTO       `json:"move"`
	Result  damage.Result `json:"result"`
	Summary string        `json:"summary"`
}

type FightResponse struct {
	Battle     damage.BattleState `json:"battle"`
	Pokemon    damage.Combatant   `json:"pokemon"`
	Challenger damage.Combatant   `json:"challenger"`
	// Attacks are the active member's moves against the challenger,
	// Defends the challenger's moves against the active member.
	Attacks []MoveOutcome `json:"attacks"`
	Defends []MoveOutcome `json:"defends"`
}

func parseBattleState(r *http.Request) (damage.BattleState, error) {
	var bs damage.BattleState
	q := r.URL.Query()
	for name, dst := range map[string]*bool{
		"multi_battle": &bs.MultiBattle,
		"critical_hit": &bs.CriticalHit,
	} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return bs, err
		}
		*dst = b
	}
	return bs, nil
}

type fighter struct {
	combatant damage.Combatant
	moves     []database.Move
}

func (cfg *Config) loadFighter(ctx context.Context, id string, pokemonID, level int32, status string) (fighter, error) {
	species, err := cfg.DB.FetchPokemonDataById(ctx, pokemonID)
	if err != nil {
		return fighter{}, err
	}
	c, err := combatant(id, species, level, status)
	if err != nil {
		return fighter{}, err
	}
	moves, err := cfg.DB.GetPokemonMoves(ctx, pokemonID)
	if err != nil {
		return fighter{}, err
	}
	return fighter{combatant: c, moves: moves}, nil
}

func (cfg *Config) outcomes(ctx context.Context, attacker, defender fighter, battle damage.BattleState) ([]MoveOutcome, error) {
	out := make([]MoveOutcome, 0, len(attacker.moves))
	for _, row := range attacker.moves {
		mv, err := moveFromRow(row)
		if err != nil {
			return nil, err
		}
		res, err := cfg.Calc.Resolve(mv, attacker.combatant, defender.combatant, battle)
		if err != nil {
			return nil, err
		}
		summary, err := cfg.describer().DescribeAction(ctx, describe.ActionContext{
			Source: attacker.combatant.Name,
			Target: defender.combatant.Name,
			Move:   mv.Name,
			Result: res,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, MoveOutcome{Move: toMoveDTO(row), Result: res, Summary: summary})
	}
	return out, nil
}

// FightHandler previews every move exchanged between the user's active
// party member and their challenger.
func (cfg *Config) FightHandler(w http.ResponseWriter, r *http.Request) {
	battle, err := parseBattleState(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "multi_battle and critical_hit must be booleans")
		return
	}

	ctx := r.Context()
	user, ok := currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, ErrUnauthorized.Error())
		return
	}

	active, err := cfg.DB.GetActiveUserPokemon(ctx, user.ID)
	if err != nil {
		cfg.fail(w, err, "No active pokemon found")
		return
	}
	challenge, err := cfg.DB.GetUserChallengePokemon(ctx, user.ID)
	if err != nil {
		cfg.fail(w, err, "No challenge pokemon found")
		return
	}

	mine, err := cfg.loadFighter(ctx, active.ID.String(), active.PokemonID.Int32, active.Level, active.Status)
	if err != nil {
		cfg.fail(w, err, "Active pokemon data not found")
		return
	}
	theirs, err := cfg.loadFighter(ctx, challenge.ID.String(), challenge.PokemonID.Int32, challenge.Level, challenge.Status)
	if err != nil {
		cfg.fail(w, err, "Challenge pokemon data not found")
		return
	}

	attacks, err := cfg.outcomes(ctx, mine, theirs, battle)
	if err != nil {
		cfg.fail(w, err, "")
		return
	}
	defends, err := cfg.outcomes(ctx, theirs, mine, battle)
	if err != nil {
		cfg.fail(w, err, "")
		return
	}

	cfg.logger().Debug("fight previewed",
		zap.String("username", user.Username),
		zap.String("pokemon", mine.combatant.Name),
		zap.String("challenger", theirs.combatant.Name),
	)
	writeJSON(w, http.StatusOK, FightResponse{
		Battle:     battle,
		Pokemon:    mine.combatant,
		Challenger: theirs.combatant,
		Attacks:    attacks,
		Defends:    defends,
	})
}
