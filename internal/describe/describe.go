package describe

import (
	"context"
	"strconv"

	"github.com/JadedPigeon/tectoniccalc/internal/damage"
)

// ActionContext = one move being used by one Pokémon on another, with its
// resolved outcome.
type ActionContext struct {
	Source string
	Target string
	Move   string
	Result damage.Result
}

type Describer interface {
	DescribeAction(ctx context.Context, a ActionContext) (string, error)
}

// Effectiveness labels a type multiplier the way the games announce it.
func Effectiveness(mult float64) string {
	switch {
	case mult == 0:
		return "no effect"
	case mult > 1:
		return "super effective"
	case mult < 1:
		return "not very effective"
	}
	return ""
}

// KO names the number of hits needed to knock out, e.g. "OHKO" or "3HKO".
func KO(hits int) string {
	switch {
	case hits <= 0:
		return ""
	case hits == 1:
		return "OHKO"
	}
	return strconv.Itoa(hits) + "HKO"
}
