package damage

const (
	stabMultiplier     = 1.5
	spreadMultiplier   = 0.75
	criticalMultiplier = 1.5

	// The game rolls 85-100%; the calculator reports the typical hit instead.
	varianceMultiplier = 0.9

	burnReduction      = 1.0 / 3.0
	frostbiteReduction = 1.0 / 3.0
	numbReduction      = 1.0 / 4.0
	fractureMultiplier = 0.66

	dizzyIncrease    = 1.0 / 4.0
	waterlogIncrease = 1.0 / 4.0
)

var (
	statusStage   = StageFunc{Label: "status", Fn: applyStatuses}
	typeStage     = StageFunc{Label: "type", Fn: applyType}
	spreadStage   = StageFunc{Label: "spread", Fn: applySpread}
	criticalStage = StageFunc{Label: "critical", Fn: applyCritical}
	varianceStage = StageFunc{Label: "variance", Fn: applyVariance}
)

func reduce(m Multipliers, reduction float64) Multipliers {
	m.FinalDamage *= 1.0 - min(reduction, 1)
	return m
}

func applyStatuses(sc StageContext, m Multipliers) Multipliers {
	user, target, move := sc.User, sc.Target, sc.Move

	if user.Status == Burn && move.Category == Physical && !move.IgnoresStatus(Burn) {
		m = reduce(m, burnReduction)
	}
	if user.Status == Frostbite && move.Category == Special && !move.IgnoresStatus(Frostbite) {
		m = reduce(m, frostbiteReduction)
	}
	if user.Status == Numb {
		m = reduce(m, numbReduction)
	}
	if target.Status == Dizzy {
		m.FinalDamage *= 1.0 + dizzyIncrease
	}
	if target.Status == Waterlog {
		m.FinalDamage *= 1.0 + waterlogIncrease
	}
	if user.Status == Fracture {
		m.FinalDamage *= fractureMultiplier
	}
	return m
}

func applyType(sc StageContext, m Multipliers) Multipliers {
	if sc.User.HasType(sc.Type) {
		m.FinalDamage *= stabMultiplier
	}
	m.FinalDamage *= sc.Effectiveness
	return m
}

func applySpread(sc StageContext, m Multipliers) Multipliers {
	if sc.Move.IsSpread() && sc.Battle.MultiBattle {
		m.FinalDamage *= spreadMultiplier
	}
	return m
}

func applyCritical(sc StageContext, m Multipliers) Multipliers {
	if sc.Battle.CriticalHit {
		m.FinalDamage *= criticalMultiplier
	}
	return m
}

func applyVariance(_ StageContext, m Multipliers) Multipliers {
	m.FinalDamage *= varianceMultiplier
	return m
}
