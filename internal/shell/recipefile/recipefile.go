// Package recipefile reads recipe snapshots from YAML files and writes
// derived recipes back as YAML.
package recipefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/artpar/doughcalc/internal/core/dough"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// ErrEmptyInput is returned when the recipe document is blank.
	ErrEmptyInput = errors.New("recipe file is empty")

	// ErrInvalidYAML is returned when the document is not valid YAML or has
	// unknown fields.
	ErrInvalidYAML = errors.New("invalid recipe YAML")
)

// FileError wraps errors with the path of the recipe file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("recipe file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// =============================================================================
// File Format
// =============================================================================

// document is the on-disk shape of a recipe snapshot. Absent fields keep
// the value of the base snapshot.
type document struct {
	TotalDoughWeight *int            `yaml:"total_dough_weight"`
	Percentages      *percentagesDoc `yaml:"percentages"`
	Blend            []flourDoc      `yaml:"blend"`
	Starter          *starterDoc     `yaml:"starter"`
}

type percentagesDoc struct {
	Flour   *float64 `yaml:"flour"`
	Water   *float64 `yaml:"water"`
	Salt    *float64 `yaml:"salt"`
	Starter *float64 `yaml:"starter"`
}

type flourDoc struct {
	Name       string  `yaml:"name"`
	Percentage float64 `yaml:"percentage"`
}

type starterDoc struct {
	Hydration    *float64  `yaml:"hydration"`
	Ratio        *ratioDoc `yaml:"ratio"`
	ManualWeight *int      `yaml:"manual_weight"`
}

type ratioDoc struct {
	Starter int `yaml:"starter"`
	Flour   int `yaml:"flour"`
	Water   int `yaml:"water"`
}

// =============================================================================
// Loading
// =============================================================================

// Load reads the recipe file at path on top of base.
func Load(path string, base dough.Inputs) (dough.Inputs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return dough.Inputs{}, &FileError{Path: path, Err: err}
	}
	in, err := Parse(data, base)
	if err != nil {
		return dough.Inputs{}, &FileError{Path: path, Err: err}
	}
	return in, nil
}

// Parse decodes a recipe document on top of base. The returned snapshot is
// validated so callers get field-level errors before deriving anything.
func Parse(data []byte, base dough.Inputs) (dough.Inputs, error) {
	if strings.TrimSpace(string(data)) == "" {
		return dough.Inputs{}, ErrEmptyInput
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return dough.Inputs{}, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	in := apply(base.Clone(), doc)
	if err := in.Validate(); err != nil {
		return dough.Inputs{}, err
	}
	return in, nil
}

func apply(in dough.Inputs, doc document) dough.Inputs {
	if doc.TotalDoughWeight != nil {
		in.TotalDoughWeight = *doc.TotalDoughWeight
	}

	if p := doc.Percentages; p != nil {
		setFloat(&in.Percentages.Flour, p.Flour)
		setFloat(&in.Percentages.Water, p.Water)
		setFloat(&in.Percentages.Salt, p.Salt)
		setFloat(&in.Percentages.Starter, p.Starter)
	}

	if len(doc.Blend) > 0 {
		in.Blend = make(dough.Blend, 0, len(doc.Blend))
		for _, f := range doc.Blend {
			in.Blend = append(in.Blend, dough.FlourEntry{Name: f.Name, Percentage: f.Percentage})
		}
	}

	if s := doc.Starter; s != nil {
		setFloat(&in.Starter.Hydration, s.Hydration)
		if s.Ratio != nil {
			in.Starter.Ratio = dough.BuildRatio{
				Starter: s.Ratio.Starter,
				Flour:   s.Ratio.Flour,
				Water:   s.Ratio.Water,
			}
		}
		if s.ManualWeight != nil {
			in = dough.SetManualStarterWeight(in, *s.ManualWeight)
		}
	}

	return in
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// =============================================================================
// Encoding
// =============================================================================

// Report is the YAML shape of a derived recipe.
type Report struct {
	TargetWeight     int           `yaml:"target_weight"`
	CalculatedWeight int           `yaml:"calculated_weight"`
	Flour            flourReport   `yaml:"flour"`
	Water            waterReport   `yaml:"water"`
	Starter          starterReport `yaml:"starter"`
	Salt             int           `yaml:"salt"`
	Build            buildReport   `yaml:"build"`
	Notices          []string      `yaml:"notices,omitempty"`
}

type flourReport struct {
	Direct     int           `yaml:"direct"`
	Total      int           `yaml:"total"`
	BlendTotal float64       `yaml:"blend_total"`
	Blend      []blendReport `yaml:"blend"`
}

type blendReport struct {
	Name       string  `yaml:"name"`
	Percentage float64 `yaml:"percentage"`
	Weight     int     `yaml:"weight"`
}

type waterReport struct {
	Total       int `yaml:"total"`
	Direct      int `yaml:"direct"`
	FromStarter int `yaml:"from_starter"`
}

type starterReport struct {
	Total int `yaml:"total"`
	Flour int `yaml:"flour"`
	Water int `yaml:"water"`
}

type buildReport struct {
	Target      int `yaml:"target"`
	SeedStarter int `yaml:"seed_starter"`
	FreshFlour  int `yaml:"fresh_flour"`
	FreshWater  int `yaml:"fresh_water"`
}

// NewReport converts a derived recipe into its YAML shape.
func NewReport(r dough.Recipe) Report {
	rep := Report{
		TargetWeight:     r.TargetTotal,
		CalculatedWeight: r.CalculatedTotal,
		Flour: flourReport{
			Direct:     r.DirectFlour,
			Total:      r.TotalFlour,
			BlendTotal: r.BlendTotal,
			Blend:      make([]blendReport, 0, len(r.Flours)),
		},
		Water: waterReport{
			Total:       r.TotalWater,
			Direct:      r.DirectWater,
			FromStarter: r.StarterWater,
		},
		Starter: starterReport{
			Total: r.TotalStarter,
			Flour: r.StarterFlour,
			Water: r.StarterWater,
		},
		Salt: r.Salt,
		Build: buildReport{
			Target:      r.EffectiveStarter,
			SeedStarter: r.Build.Starter,
			FreshFlour:  r.Build.Flour,
			FreshWater:  r.Build.Water,
		},
	}
	for _, f := range r.Flours {
		rep.Flour.Blend = append(rep.Flour.Blend, blendReport{
			Name:       f.Name,
			Percentage: f.Percentage,
			Weight:     f.Weight,
		})
	}
	for _, n := range r.Notices {
		rep.Notices = append(rep.Notices, string(n))
	}
	return rep
}

// Encode writes the derived recipe to w as YAML.
func Encode(w io.Writer, r dough.Recipe) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewReport(r)); err != nil {
		return fmt.Errorf("failed to encode recipe: %w", err)
	}
	return enc.Close()
}
