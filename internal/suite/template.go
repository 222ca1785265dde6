package suite

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
)

// Template is a named expression with {{name}} placeholders, e.g.
// "{{a}} + {{b}} * {{c}}". Cases refer to it by id and supply params.
type Template struct {
	ID         string `yaml:"id" schema:"required,minLength=1"`
	Expression string `yaml:"expression" schema:"required,minLength=1"`
}

type Params map[string]any

var placeholder = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Render substitutes every placeholder. Unknown params are ignored;
// a placeholder with no param is an error.
func (t *Template) Render(params Params) (string, error) {
	var missing []string
	out := placeholder.ReplaceAllStringFunc(t.Expression, func(match string) string {
		key := match[2 : len(match)-2]
		v, ok := params[key]
		if !ok {
			if !slices.Contains(missing, key) {
				missing = append(missing, key)
			}
			return match
		}
		return formatParam(v)
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("template %q missing params: %v", t.ID, missing)
	}
	return out, nil
}

// Placeholders lists the distinct placeholder names in order of first use.
func (t *Template) Placeholders() []string {
	var names []string
	for _, m := range placeholder.FindAllStringSubmatch(t.Expression, -1) {
		if !slices.Contains(names, m[1]) {
			names = append(names, m[1])
		}
	}
	return names
}

func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("template has no id")
	}
	if t.Expression == "" {
		return fmt.Errorf("template %q has no expression", t.ID)
	}
	return nil
}

// formatParam renders numbers in plain decimal so the tokenizer accepts them.
func formatParam(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

type templateSet map[string]*Template

func newTemplateSet(templates []Template) (templateSet, error) {
	set := make(templateSet, len(templates))
	for i := range templates {
		t := &templates[i]
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, exists := set[t.ID]; exists {
			return nil, fmt.Errorf("template %q already defined", t.ID)
		}
		set[t.ID] = t
	}
	return set, nil
}

func (s templateSet) render(id string, params Params) (string, error) {
	t, ok := s[id]
	if !ok {
		return "", fmt.Errorf("template %q not found", id)
	}
	return t.Render(params)
}
