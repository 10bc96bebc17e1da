package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/JadedPigeon/tectoniccalc/internal/catalog"
	"github.com/JadedPigeon/tectoniccalc/internal/damage"
	"github.com/JadedPigeon/tectoniccalc/internal/database"
)

// lookupSpecies finds a pokedex entry by number or by name.
func (cfg *Config) lookupSpecies(ctx context.Context, identifier string) (database.Pokedex, error) {
	if id, err := strconv.Atoi(identifier); err == nil {
		return cfg.DB.FetchPokemonDataById(ctx, int32(id))
	}
	return cfg.DB.FetchPokemonDataByName(ctx, strings.ToLower(strings.TrimSpace(identifier)))
}

func (cfg *Config) parseLevel(s string) (int, error) {
	if s == "" {
		if cfg.DefaultLevel == 0 {
			return 50, nil
		}
		return cfg.DefaultLevel, nil
	}
	level, err := strconv.Atoi(s)
	if err != nil || level < 1 || level > 100 {
		return 0, fmt.Errorf("level must be between 1 and 100")
	}
	return level, nil
}

func parseStatus(s string) (damage.Condition, error) {
	c, ok := damage.ParseCondition(s)
	if !ok {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return c, nil
}

func combatant(id string, p database.Pokedex, level int32, status string) (damage.Combatant, error) {
	cond, ok := damage.ParseCondition(status)
	if !ok {
		return damage.Combatant{}, fmt.Errorf("%w: stored status %q", damage.ErrInvalidInput, status)
	}
	c := damage.Combatant{
		ID:     id,
		Name:   p.Name,
		Level:  int(level),
		Status: cond,
		Stats: damage.Stats{
			HP:      int(p.Hp),
			Attack:  int(p.Attack),
			Defense: int(p.Defense),
			Speed:   int(p.Speed),
			SpAtk:   int(p.SpecialAttack),
			SpDef:   int(p.SpecialDefense),
		},
		Type1: catalog.NormalizeType(p.Type1),
	}
	if p.Type2.Valid {
		c.Type2 = catalog.NormalizeType(p.Type2.String)
	}
	return c, nil
}

func moveFromRow(m database.Move) (damage.Move, error) {
	cat, ok := damage.ParseCategory(m.Category)
	if !ok {
		return damage.Move{}, fmt.Errorf("%w: move %s has category %q", damage.ErrInvalidInput, m.Name, m.Category)
	}
	mv := damage.Move{
		ID:        strconv.Itoa(int(m.MoveID)),
		Name:      m.Name,
		Type:      catalog.NormalizeType(m.Type),
		Category:  cat,
		BasePower: int(m.Power),
		Spread:    m.IsSpread,
	}
	for _, s := range m.IgnoresStatus {
		c, ok := damage.ParseCondition(s)
		if !ok {
			return damage.Move{}, fmt.Errorf("%w: move %s ignores unknown status %q", damage.ErrInvalidInput, m.Name, s)
		}
		mv.IgnoresStatuses = append(mv.IgnoresStatuses, c)
	}
	if m.MinHits.Valid && m.MaxHits.Valid {
		mv.Hits = &damage.HitRange{Min: int(m.MinHits.Int32), Max: int(m.MaxHits.Int32)}
	}
	return mv, nil
}
