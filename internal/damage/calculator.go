package damage

import (
	"errors"
	"math"

	"go.uber.org/zap"
)

// Calculator resolves moves against targets. It holds no per-call state and is
// safe for concurrent use.
type Calculator struct {
	chart    *TypeChart
	pipeline *Pipeline
	log      *zap.Logger
}

type Option func(*Calculator)

func WithPipeline(p *Pipeline) Option {
	return func(c *Calculator) { c.pipeline = p }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Calculator) { c.log = l }
}

func NewCalculator(chart *TypeChart, opts ...Option) (*Calculator, error) {
	if chart == nil {
		return nil, errors.New("damage: nil type chart")
	}
	c := &Calculator{
		chart:    chart,
		pipeline: DefaultPipeline(),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Calculator) Chart() *TypeChart {
	return c.chart
}

// Resolve computes the damage of one use of move by user against target.
// Status moves yield the zero Result. Inputs that break the contract return an
// error wrapping ErrInvalidInput.
func (c *Calculator) Resolve(move Move, user, target Combatant, battle BattleState) (Result, error) {
	if move.Category == Status {
		return Result{}, nil
	}

	dmg, eff, err := c.ResolveHit(move, user, target, battle)
	if err != nil {
		return Result{}, err
	}

	// ResolveHit never returns less than 1, so the divisions below are safe.
	hp := target.Stats.HP
	res := Result{
		Damage:         dmg,
		Percentage:     float64(dmg) / float64(hp),
		Hits:           (hp + dmg - 1) / dmg,
		TypeEffectMult: eff,
	}
	if h := move.Hits; h != nil {
		// every hit of the sequence deals the same damage
		minTotal, maxTotal := dmg*h.Min, dmg*h.Max
		minPct, maxPct := float64(minTotal)/float64(hp), float64(maxTotal)/float64(hp)
		res.MinTotal, res.MaxTotal = &minTotal, &maxTotal
		res.MinPercentage, res.MaxPercentage = &minPct, &maxPct
	}
	return res, nil
}

// ResolveHit returns the damage of a single hit and the type effectiveness
// multiplier that was applied to it. The damage is at least 1.
func (c *Calculator) ResolveHit(move Move, user, target Combatant, battle BattleState) (int, float64, error) {
	if err := validateMove(move); err != nil {
		return 0, 0, err
	}
	if err := validateCombatant("user", user); err != nil {
		return 0, 0, err
	}
	if err := validateCombatant("target", target); err != nil {
		return 0, 0, err
	}
	if !c.chart.Has(user.Type1) || (user.Type2 != "" && !c.chart.Has(user.Type2)) {
		return 0, 0, invalid("user types %s/%s", user.Type1, user.Type2)
	}

	// TODO: moves that change their own type
	t := move.Type
	power := move.Power(user)
	if err := validatePower(move, power); err != nil {
		return 0, 0, err
	}

	attack, defense := resolveStats(move, user, target)
	if err := validateStats(attack, defense); err != nil {
		return 0, 0, err
	}

	m, eff, err := c.pipeline.Compute(c.chart, move, user, target, battle, t)
	if err != nil {
		return 0, 0, err
	}
	if !m.finite() {
		return 0, 0, invalid("non-finite multipliers %+v", m)
	}

	raw, err := scaledBaseDamage(power, attack, defense, user.Level, m)
	if err != nil {
		return 0, 0, err
	}
	final := float64(raw) * m.FinalDamage
	if final > maxDamageValue {
		return 0, 0, invalid("damage %g out of range", final)
	}
	dmg := roundMin1(final)
	dmg = c.pipeline.reduce(StageContext{
		Move:          move,
		User:          user,
		Target:        target,
		Battle:        battle,
		Type:          t,
		Effectiveness: eff,
	}, dmg)

	c.log.Debug("resolved hit",
		zap.String("move", move.Name),
		zap.String("user", user.Name),
		zap.String("target", target.Name),
		zap.Int("raw", raw),
		zap.Float64("final_multiplier", m.FinalDamage),
		zap.Float64("effectiveness", eff),
		zap.Int("damage", dmg),
	)
	return dmg, eff, nil
}

// finite reports whether every multiplier is a usable number.
func (m Multipliers) finite() bool {
	for _, v := range [...]float64{m.BaseDamage, m.Attack, m.Defense, m.FinalDamage} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
