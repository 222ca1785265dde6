package suite

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/mcalc/internal/calcerr"
	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}

	templates, err := newTemplateSet(s.Templates)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = true

		if c.Template != "" {
			if c.Expression != nil {
				return nil, fmt.Errorf("case %q sets both expression and template", c.ID)
			}
			expr, err := templates.render(c.Template, c.Params)
			if err != nil {
				return nil, fmt.Errorf("case %q: %w", c.ID, err)
			}
			c.Expression = &expr
		}
		if c.Expression == nil {
			return nil, fmt.Errorf("case %q has no expression", c.ID)
		}
		if c.Expect != nil && c.Error != "" {
			return nil, fmt.Errorf("case %q sets both expect and error", c.ID)
		}
		if c.Expect == nil && c.Error == "" {
			return nil, fmt.Errorf("case %q sets neither expect nor error", c.ID)
		}
		if c.Error != "" {
			if _, err := calcerr.ParseKind(c.Error); err != nil {
				return nil, fmt.Errorf("case %q: %w", c.ID, err)
			}
		}
		if c.Tolerance < 0 {
			return nil, fmt.Errorf("case %q has negative tolerance", c.ID)
		}
	}

	return &s, nil
}
