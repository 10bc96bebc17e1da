package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/JadedPigeon/tectoniccalc/internal/damage"
	"gopkg.in/yaml.v3"
)

//go:embed types.yaml
var defaultTypes string

type typeFile struct {
	Types []typeEntry `yaml:"types"`
}

type typeEntry struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Weaknesses  []string `yaml:"weaknesses"`
	Resistances []string `yaml:"resistances"`
	Immunities  []string `yaml:"immunities"`
	// Pseudo types (e.g. "???") exist for records but are not listed.
	Pseudo bool `yaml:"pseudo"`
}

func toTypes(ids []string) []damage.Type {
	out := make([]damage.Type, 0, len(ids))
	for _, id := range ids {
		out = append(out, NormalizeType(id))
	}
	return out
}

// NormalizeType maps "fire", " Fire " and "FIRE" to the same id.
func NormalizeType(s string) damage.Type {
	return damage.Type(strings.ToUpper(strings.TrimSpace(s)))
}

// ParseTypes decodes a YAML type fixture.
func ParseTypes(r io.Reader) ([]damage.TypeDefinition, error) {
	var f typeFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode types: %w", err)
	}

	defs := make([]damage.TypeDefinition, 0, len(f.Types))
	for _, t := range f.Types {
		defs = append(defs, damage.TypeDefinition{
			ID:          NormalizeType(t.ID),
			Name:        t.Name,
			Weaknesses:  toTypes(t.Weaknesses),
			Resistances: toTypes(t.Resistances),
			Immunities:  toTypes(t.Immunities),
			IsRealType:  !t.Pseudo,
		})
	}
	return defs, nil
}

// LoadTypeChart builds the chart from the fixture at path, or from the
// embedded default when path is empty.
func LoadTypeChart(path string) (*damage.TypeChart, error) {
	var r io.Reader = strings.NewReader(defaultTypes)
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open type chart: %w", err)
		}
		defer f.Close()
		r = f
	}

	defs, err := ParseTypes(r)
	if err != nil {
		return nil, err
	}
	return damage.NewTypeChart(defs)
}
