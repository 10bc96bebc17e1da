package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/JadedPigeon/tectoniccalc/internal/catalog"
	"github.com/JadedPigeon/tectoniccalc/internal/damage"
	"github.com/JadedPigeon/tectoniccalc/internal/describe"
)

type CalcRequest struct {
	User   damage.Combatant   `json:"user"`
	Target damage.Combatant   `json:"target"`
	Move   damage.Move        `json:"move"`
	Battle damage.BattleState `json:"battle"`
}

type CalcResponse struct {
	Result  damage.Result `json:"result"`
	Summary string        `json:"summary"`
}

// normalize accepts the same loose spellings the form handlers do.
func (req *CalcRequest) normalize() error {
	for _, c := range []*damage.Combatant{&req.User, &req.Target} {
		c.Type1 = catalog.NormalizeType(string(c.Type1))
		c.Type2 = catalog.NormalizeType(string(c.Type2))
		s, ok := damage.ParseCondition(string(c.Status))
		if !ok {
			return fmt.Errorf("%w: unknown status %q", damage.ErrInvalidInput, c.Status)
		}
		c.Status = s
	}

	req.Move.Type = catalog.NormalizeType(string(req.Move.Type))
	if cat, ok := damage.ParseCategory(string(req.Move.Category)); ok {
		req.Move.Category = cat
	}
	for i, s := range req.Move.IgnoresStatuses {
		c, ok := damage.ParseCondition(string(s))
		if !ok {
			return fmt.Errorf("%w: unknown status %q", damage.ErrInvalidInput, s)
		}
		req.Move.IgnoresStatuses[i] = c
	}
	return nil
}

// CalcHandler resolves one move between two inline combatants.
func (cfg *Config) CalcHandler(w http.ResponseWriter, r *http.Request) {
	var req CalcRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad JSON body")
		return
	}
	if err := req.normalize(); err != nil {
		cfg.fail(w, err, "")
		return
	}

	res, err := cfg.Calc.Resolve(req.Move, req.User, req.Target, req.Battle)
	if err != nil {
		cfg.fail(w, err, "")
		return
	}

	summary, err := cfg.describer().DescribeAction(r.Context(), describe.ActionContext{
		Source: req.User.Name,
		Target: req.Target.Name,
		Move:   req.Move.Name,
		Result: res,
	})
	if err != nil {
		cfg.fail(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, CalcResponse{Result: res, Summary: summary})
}

// TypeChartHandler reports the multiplier of one attacking type against one or
// two defending types.
func (cfg *Config) TypeChartHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	attack := catalog.NormalizeType(q.Get("attack"))
	defend1 := catalog.NormalizeType(q.Get("defend1"))
	defend2 := catalog.NormalizeType(q.Get("defend2"))
	if attack == "" || defend1 == "" {
		writeError(w, http.StatusBadRequest, "attack and defend1 are required")
		return
	}

	chart := cfg.Calc.Chart()
	m, err := chart.Matchup(attack, defend1, defend2)
	if err != nil {
		cfg.fail(w, err, "")
		return
	}

	defend := []string{chart.Name(defend1)}
	if defend2 != "" {
		defend = append(defend, chart.Name(defend2))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"attack":        chart.Name(attack),
		"defend":        defend,
		"multiplier":    m,
		"effectiveness": describe.Effectiveness(m),
	})
}

// TypesHandler lists the selectable types.
func (cfg *Config) TypesHandler(w http.ResponseWriter, r *http.Request) {
	chart := cfg.Calc.Chart()
	types := chart.Types()
	out := make([]map[string]string, 0, len(types))
	for _, t := range types {
		out = append(out, map[string]string{"id": string(t), "name": chart.Name(t)})
	}
	writeJSON(w, http.StatusOK, out)
}
