package describe

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Plain is a deterministic summary built only from the resolved numbers.
// Numbers are formatted for Lang; the zero value formats for English.
type Plain struct {
	Lang language.Tag
}

func (p Plain) printer() *message.Printer {
	tag := p.Lang
	if tag == language.Und {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

func (p Plain) DescribeAction(ctx context.Context, a ActionContext) (string, error) {
	r := a.Result
	var b strings.Builder

	// Status moves deal nothing to report.
	if r.Damage == 0 {
		fmt.Fprintf(&b, "%s used %s.", a.Source, a.Move)
		return b.String(), nil
	}

	fmt.Fprintf(&b, "%s used %s on %s.", a.Source, a.Move, a.Target)
	switch Effectiveness(r.TypeEffectMult) {
	case "no effect":
		fmt.Fprintf(&b, " It doesn't affect %s...", a.Target)
		return b.String(), nil
	case "super effective":
		b.WriteString(" It's super effective!")
	case "not very effective":
		b.WriteString(" It's not very effective...")
	}

	pr := p.printer()
	if r.MultiHit() {
		b.WriteString(pr.Sprintf(" %d damage per hit, %d-%d total", r.Damage, *r.MinTotal, *r.MaxTotal))
		fmt.Fprintf(&b, " (%s-%s)", p.percent(pr, *r.MinPercentage), p.percent(pr, *r.MaxPercentage))
	} else {
		b.WriteString(pr.Sprintf(" %d damage", r.Damage))
		fmt.Fprintf(&b, " (%s)", p.percent(pr, r.Percentage))
	}
	fmt.Fprintf(&b, ", %s.", KO(r.Hits))
	return b.String(), nil
}

func (Plain) percent(pr *message.Printer, frac float64) string {
	return pr.Sprintf("%.1f", frac*100) + "%"
}
