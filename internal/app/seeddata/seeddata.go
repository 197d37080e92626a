// Package seeddata holds the demo insurer and plan catalog.
package seeddata

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen/lifequote/internal/domain"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is a set of insurers, each carrying its own plans.
type Catalog struct {
	Insurers []Insurer `yaml:"insurers"`
}

// Insurer is one catalog insurer and the plans it offers.
type Insurer struct {
	Name    string   `yaml:"name"`
	LogoURL string   `yaml:"logo_url"`
	Rating  *float64 `yaml:"rating"`
	Tagline string   `yaml:"tagline"`
	Plans   []Plan   `yaml:"plans"`
}

// Plan is one catalog plan. The insurer reference is implied by nesting.
type Plan struct {
	Name             string    `yaml:"name"`
	CoverageAmount   int       `yaml:"coverage_amount"`
	TermYears        int       `yaml:"term_years"`
	SmokerMultiplier float64   `yaml:"smoker_multiplier"`
	MaleFactor       float64   `yaml:"male_factor"`
	AgeBand          []int     `yaml:"age_band"`
	BaseRates        []float64 `yaml:"base_rates"`
	Features         []string  `yaml:"features"`
}

// Default returns the embedded demo catalog.
func Default() (*Catalog, error) {
	return Parse(bytes.NewReader(defaultCatalog))
}

// Load reads a catalog from path, or returns the embedded catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	f, err := os.Open(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("opening catalog %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes a YAML catalog. Unknown keys are rejected.
func Parse(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &c, nil
		}

		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	return &c, nil
}

// DomainInsurer converts the entry to a domain.Insurer, applying the default rating.
func (i *Insurer) DomainInsurer() domain.Insurer {
	rating := domain.DefaultInsurerRating
	if i.Rating != nil {
		rating = *i.Rating
	}

	return domain.Insurer{
		Name:    i.Name,
		LogoURL: i.LogoURL,
		Rating:  rating,
		Tagline: i.Tagline,
	}
}

// DomainPlan converts the entry to a domain.Plan owned by insurerID.
func (p *Plan) DomainPlan(insurerID string) domain.Plan {
	plan := domain.Plan{
		InsurerID:        insurerID,
		Name:             p.Name,
		CoverageAmount:   p.CoverageAmount,
		TermYears:        p.TermYears,
		SmokerMultiplier: p.SmokerMultiplier,
		MaleFactor:       p.MaleFactor,
		AgeBand:          append([]int(nil), p.AgeBand...),
		BaseRates:        append([]float64(nil), p.BaseRates...),
		Features:         append([]string(nil), p.Features...),
	}
	plan.ApplyDefaults()

	return plan
}

// Validate checks every insurer and plan before anything is written.
// Plans are checked with a placeholder insurer id since real ids are
// assigned on insert.
func (c *Catalog) Validate() error {
	if len(c.Insurers) == 0 {
		return domain.NewValidationError("insurers", "catalog has no insurers")
	}

	if _, plans := c.Counts(); plans == 0 {
		return domain.NewValidationError("plans", "catalog has no plans")
	}

	for i := range c.Insurers {
		ins := c.Insurers[i].DomainInsurer()
		if err := ins.Validate(); err != nil {
			return fmt.Errorf("insurer %d: %w", i, err)
		}

		for j := range c.Insurers[i].Plans {
			plan := c.Insurers[i].Plans[j].DomainPlan("pending")
			if err := plan.Validate(); err != nil {
				return fmt.Errorf("insurer %q plan %q: %w", ins.Name, plan.Name, err)
			}
		}
	}

	return nil
}

// Counts returns the number of insurers and plans in the catalog.
func (c *Catalog) Counts() (insurers, plans int) {
	for i := range c.Insurers {
		plans += len(c.Insurers[i].Plans)
	}

	return len(c.Insurers), plans
}
