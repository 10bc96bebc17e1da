package damage

import (
	"math"
	"strings"
)

// Type identifies an elemental type, e.g. "FIRE". The empty Type means "none".
type Type string

type Category string

const (
	Physical Category = "Physical"
	Special  Category = "Special"
	Status   Category = "Status"
)

// ParseCategory accepts any casing of the three category names.
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "physical":
		return Physical, true
	case "special":
		return Special, true
	case "status":
		return Status, true
	}
	return "", false
}

// Condition is a combatant's non-volatile status condition.
type Condition string

const (
	NoCondition Condition = ""
	Burn        Condition = "Burn"
	Frostbite   Condition = "Frostbite"
	Numb        Condition = "Numb"
	Dizzy       Condition = "Dizzy"
	Waterlog    Condition = "Waterlog"
	Fracture    Condition = "Fracture"
	Poison      Condition = "Poison"
	Sleep       Condition = "Sleep"
	Leeched     Condition = "Leeched"
)

var conditions = []Condition{Burn, Frostbite, Numb, Dizzy, Waterlog, Fracture, Poison, Sleep, Leeched}

// ParseCondition maps user input to a Condition. "" and "none" yield NoCondition.
func ParseCondition(s string) (Condition, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return NoCondition, true
	}
	for _, c := range conditions {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}

type Stats struct {
	HP      int `json:"hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Speed   int `json:"speed"`
	SpAtk   int `json:"spatk"`
	SpDef   int `json:"spdef"`
}

// Combatant is a battler snapshot as consumed by one resolution call.
type Combatant struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Level  int       `json:"level"`
	Status Condition `json:"status"`
	Stats  Stats     `json:"stats"`
	Type1  Type      `json:"type1"`
	Type2  Type      `json:"type2,omitempty"`
}

func (c Combatant) HasType(t Type) bool {
	return t != "" && (c.Type1 == t || c.Type2 == t)
}

// PowerFunc computes a move's power from the state of the user.
type PowerFunc func(user Combatant) float64

// HitRange marks a move as multi-hit.
type HitRange struct {
	Min int `json:"minHits"`
	Max int `json:"maxHits"`
}

type Move struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Type            Type        `json:"type"`
	Category        Category    `json:"category"`
	BasePower       int         `json:"power"`
	Spread          bool        `json:"spread"`
	IgnoresStatuses []Condition `json:"ignoresStatuses,omitempty"`
	Hits            *HitRange   `json:"hits,omitempty"`

	// PowerFunc overrides BasePower when set.
	PowerFunc PowerFunc `json:"-"`
}

// Power returns the move's power when used by user.
func (m Move) Power(user Combatant) float64 {
	if m.PowerFunc != nil {
		return m.PowerFunc(user)
	}
	return float64(m.BasePower)
}

func (m Move) IsSpread() bool {
	return m.Spread
}

// IgnoresStatus reports whether the damage modifier of s does not apply to this move.
func (m Move) IgnoresStatus(s Condition) bool {
	for _, c := range m.IgnoresStatuses {
		if c == s {
			return true
		}
	}
	return false
}

type BattleState struct {
	MultiBattle bool `json:"multiBattle"`
	CriticalHit bool `json:"criticalHit"`
}

// Multipliers accumulates the effects of every pipeline stage for one hit.
// BaseDamage, Attack and Defense scale the formula inputs; FinalDamage scales its output.
type Multipliers struct {
	BaseDamage  float64
	Attack      float64
	Defense     float64
	FinalDamage float64
}

func NewMultipliers() Multipliers {
	return Multipliers{BaseDamage: 1, Attack: 1, Defense: 1, FinalDamage: 1}
}

// Result is the outcome of resolving one move against one target.
// The Min/Max fields are set only for multi-hit moves.
type Result struct {
	Damage         int      `json:"damage"`
	Percentage     float64  `json:"percentage"`
	Hits           int      `json:"hits"`
	TypeEffectMult float64  `json:"typeEffectMult"`
	MinTotal       *int     `json:"minTotal,omitempty"`
	MaxTotal       *int     `json:"maxTotal,omitempty"`
	MinPercentage  *float64 `json:"minPercentage,omitempty"`
	MaxPercentage  *float64 `json:"maxPercentage,omitempty"`
}

func (r Result) MultiHit() bool {
	return r.MinTotal != nil
}

func roundMin1(x float64) int {
	return max(int(math.Round(x)), 1)
}
