package damage

import "math"

// resolveStats picks the attacking and defending stat for the move's category.
// Status moves are filtered out before this is called.
func resolveStats(move Move, user, target Combatant) (attack, defense int) {
	// TODO: stat steps, and moves that borrow another battler's stat (Foul Play, Body Press)
	if move.Category == Physical {
		return user.Stats.Attack, target.Stats.Defense
	}
	return user.Stats.SpAtk, target.Stats.SpDef
}

// maxDamageValue bounds every scaled input and intermediate result so the
// conversions to int stay exact.
const maxDamageValue = math.MaxInt32

// baseDamage is the level/power/attack/defense core of the damage formula. The
// result is already floored; it stays a float so callers can range-check it
// before converting.
func baseDamage(power, level, attack, defense int) float64 {
	pseudoLevel := 15.0 + float64(level)/2.0
	levelMultiplier := 2.0 + 0.4*pseudoLevel
	return math.Floor(2.0 + (levelMultiplier*float64(power)*float64(attack))/float64(defense)/50.0)
}

func scaledInput(name string, v float64) (int, error) {
	if v > maxDamageValue {
		return 0, invalid("scaled %s %g out of range", name, v)
	}
	return roundMin1(v), nil
}

// scaledBaseDamage rounds each scaled input to an integer (minimum 1) before
// running the core formula. The separate rounding steps are part of the game's
// arithmetic and must not be folded into one float expression.
func scaledBaseDamage(power float64, attack, defense, level int, m Multipliers) (int, error) {
	p, err := scaledInput("power", power*m.BaseDamage)
	if err != nil {
		return 0, err
	}
	a, err := scaledInput("attack", float64(attack)*m.Attack)
	if err != nil {
		return 0, err
	}
	d, err := scaledInput("defense", float64(defense)*m.Defense)
	if err != nil {
		return 0, err
	}
	raw := baseDamage(p, level, a, d)
	if raw > maxDamageValue {
		return 0, invalid("base damage %g out of range", raw)
	}
	return int(raw), nil
}
