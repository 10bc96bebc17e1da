package damage

// StageContext is the read-only input every pipeline stage sees.
type StageContext struct {
	Move   Move
	User   Combatant
	Target Combatant
	Battle BattleState

	// Type is the type the move is used as. Effectiveness is the chart
	// multiplier of Type against the target's types.
	Type          Type
	Effectiveness float64
}

// Stage transforms the multiplier bundle for one hit. Stages must not retain
// or mutate anything outside the returned value.
type Stage interface {
	Name() string
	Apply(sc StageContext, m Multipliers) Multipliers
}

// StageFunc adapts a plain function into a named Stage.
type StageFunc struct {
	Label string
	Fn    func(sc StageContext, m Multipliers) Multipliers
}

func (s StageFunc) Name() string { return s.Label }

func (s StageFunc) Apply(sc StageContext, m Multipliers) Multipliers { return s.Fn(sc, m) }

// FlatReduction adjusts the already rounded damage of a hit. The pipeline
// re-clamps to at least 1 after all reductions have run.
type FlatReduction interface {
	Name() string
	Reduce(sc StageContext, damage int) int
}

// Position is an insertion point for extra stages between the built-in ones.
type Position int

const (
	// PreType runs after the status stage and before type/STAB.
	PreType Position = iota
	// PostType runs after type/STAB and before the spread stage.
	PostType
	// PreFinal runs after the critical-hit stage and before variance.
	PreFinal
	// PostFinal runs after variance.
	PostFinal

	positionCount
)

// Pipeline is the ordered list of multiplier stages. It is immutable; the With
// methods return modified copies.
type Pipeline struct {
	hooks [positionCount][]Stage
	flat  []FlatReduction
}

// DefaultPipeline runs only the built-in stages.
func DefaultPipeline() *Pipeline {
	return &Pipeline{}
}

func (p *Pipeline) clone() *Pipeline {
	c := &Pipeline{flat: append([]FlatReduction(nil), p.flat...)}
	for i := range p.hooks {
		c.hooks[i] = append([]Stage(nil), p.hooks[i]...)
	}
	return c
}

// WithStage returns a copy of p with s appended at pos.
func (p *Pipeline) WithStage(pos Position, s Stage) *Pipeline {
	if pos < 0 || pos >= positionCount {
		panic("damage: invalid stage position")
	}
	c := p.clone()
	c.hooks[pos] = append(c.hooks[pos], s)
	return c
}

// WithFlatReduction returns a copy of p with r appended to the flat reductions.
func (p *Pipeline) WithFlatReduction(r FlatReduction) *Pipeline {
	c := p.clone()
	c.flat = append(c.flat, r)
	return c
}

// Stages returns every stage in execution order.
func (p *Pipeline) Stages() []Stage {
	out := make([]Stage, 0, 5+len(p.hooks[PreType])+len(p.hooks[PostType])+len(p.hooks[PreFinal])+len(p.hooks[PostFinal]))
	out = append(out, statusStage)
	out = append(out, p.hooks[PreType]...)
	out = append(out, typeStage)
	out = append(out, p.hooks[PostType]...)
	out = append(out, spreadStage, criticalStage)
	out = append(out, p.hooks[PreFinal]...)
	out = append(out, varianceStage)
	out = append(out, p.hooks[PostFinal]...)
	return out
}

// Compute runs every stage over a fresh bundle. The type effectiveness is
// looked up once from chart and returned next to the bundle for display.
func (p *Pipeline) Compute(chart *TypeChart, move Move, user, target Combatant, battle BattleState, t Type) (Multipliers, float64, error) {
	eff, err := chart.Matchup(t, target.Type1, target.Type2)
	if err != nil {
		return Multipliers{}, 0, err
	}
	sc := StageContext{
		Move:          move,
		User:          user,
		Target:        target,
		Battle:        battle,
		Type:          t,
		Effectiveness: eff,
	}
	m := NewMultipliers()
	for _, s := range p.Stages() {
		m = s.Apply(sc, m)
	}
	return m, eff, nil
}

func (p *Pipeline) reduce(sc StageContext, damage int) int {
	for _, r := range p.flat {
		damage = r.Reduce(sc, damage)
	}
	return max(damage, 1)
}
