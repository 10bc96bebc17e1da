package damage

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInput marks a resolution request that breaks the input contract.
	// Callers should report "cannot compute" rather than a number.
	ErrInvalidInput = errors.New("invalid damage input")
	ErrUnknownType  = fmt.Errorf("%w: unknown type", ErrInvalidInput)
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func validateCombatant(role string, c Combatant) error {
	if c.Level < 1 {
		return invalid("%s level %d", role, c.Level)
	}
	if c.Type1 == "" {
		return invalid("%s has no type", role)
	}
	if c.Stats.HP < 1 {
		return invalid("%s hp %d", role, c.Stats.HP)
	}
	return nil
}

func validateMove(m Move) error {
	if m.Type == "" {
		return invalid("move %q has no type", m.Name)
	}
	if m.Category != Physical && m.Category != Special {
		return invalid("move %q has category %q", m.Name, m.Category)
	}
	if h := m.Hits; h != nil && (h.Min < 1 || h.Max < h.Min) {
		return invalid("move %q hits %d-%d", m.Name, h.Min, h.Max)
	}
	return nil
}

func validatePower(m Move, power float64) error {
	if math.IsNaN(power) || math.IsInf(power, 0) || power < 0 || power > maxDamageValue {
		return invalid("move %q power %v", m.Name, power)
	}
	return nil
}

func validateStats(attack, defense int) error {
	if attack < 1 {
		return invalid("attacking stat %d", attack)
	}
	if defense < 1 {
		return invalid("defending stat %d", defense)
	}
	return nil
}
