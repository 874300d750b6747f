package catalog

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
)

// weightTolerance is how far ScoringWeights.Sum may drift from 1.
const weightTolerance = 1e-6

// Load reads a YAML override file and merges it onto the default tables.
// Any table present in the file replaces the corresponding default table
// entry by entry; tables absent from the file keep their defaults.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse merges YAML override data onto the default tables.
func Parse(data []byte) (*Catalog, error) {
	var override Catalog
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("catalog: parsing overrides: %w", err)
	}

	c := Default()
	for k, v := range override.Categories {
		c.Categories[k] = v
	}
	if len(override.Vendors) > 0 {
		c.Vendors = CloneVendors(override.Vendors)
	}
	for k, v := range override.LaunchVehicles {
		c.LaunchVehicles[k] = v
	}
	if len(override.OrbitBands) > 0 {
		c.OrbitBands = append([]OrbitBand(nil), override.OrbitBands...)
	}
	for k, v := range override.DeorbitMethods {
		c.DeorbitMethods[k] = v
	}
	for k, v := range override.SSAStrategies {
		c.SSAStrategies[k] = v
	}
	for k, v := range override.Markets {
		c.Markets[k] = v
	}
	if override.Weights != (ScoringWeights{}) {
		c.Weights = override.Weights
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the invariants the engines rely on.
func (c *Catalog) Validate() error {
	if sum := c.Weights.Sum(); math.Abs(sum-1) > weightTolerance {
		return fmt.Errorf("catalog: scoring weights sum to %.4f, want 1", sum)
	}
	for _, v := range c.Vendors {
		if v.Vendor == "" {
			return fmt.Errorf("catalog: vendor entry without a name")
		}
		for _, s := range v.Stages {
			if !knownStage(s.Stage) {
				return fmt.Errorf("catalog: vendor %s: unknown stage %q", v.Vendor, s.Stage)
			}
			if s.CostUSD < 0 {
				return fmt.Errorf("catalog: vendor %s: negative %s cost", v.Vendor, s.Stage)
			}
		}
	}
	return nil
}

func knownStage(s interfaces.Stage) bool {
	for _, st := range interfaces.Stages {
		if st == s {
			return true
		}
	}
	return false
}
