package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

const draft = "https://json-schema.org/draft/2020-12/schema"

// JSONSchema is the subset of JSON Schema the generator emits.
type JSONSchema struct {
	Schema      string                 `json:"$schema,omitempty"`
	ID          string                 `json:"$id,omitempty"`
	Title       string                 `json:"title,omitempty"`
	Description string                 `json:"description,omitempty"`
	Type        string                 `json:"type"`
	Required    []string               `json:"required,omitempty"`
	Properties  map[string]*JSONSchema `json:"properties,omitempty"`
	Items       *JSONSchema            `json:"items,omitempty"`
	Enum        []string               `json:"enum,omitempty"`
	MinLength   *int                   `json:"minLength,omitempty"`
	MinItems    *int                   `json:"minItems,omitempty"`

	AdditionalProperties *bool `json:"additionalProperties,omitempty"`
}

// Generator builds schemas from Go structs. Property names come from the
// tag named by TagName (yaml by default); constraints come from the
// `schema` tag (required, enum=a|b, minLength=N, minItems=N) and
// descriptions from the `description` tag.
type Generator struct {
	TagName string
	BaseID  string
}

func NewGenerator(baseID string) *Generator {
	return &Generator{TagName: "yaml", BaseID: strings.TrimSuffix(baseID, "/")}
}

// Generate returns the root schema for v, which must be a struct or a pointer to one.
func (g *Generator) Generate(v any) (*JSONSchema, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("root type must be a struct, got %v", t)
	}

	root, err := g.forType(t)
	if err != nil {
		return nil, err
	}
	root.Schema = draft
	root.Title = t.Name()
	if g.BaseID != "" {
		root.ID = g.BaseID + "/" + strings.ToLower(t.Name())
	}
	return root, nil
}

// GenerateJSON renders the schema for v as indented JSON.
func (g *Generator) GenerateJSON(v any) ([]byte, error) {
	s, err := g.Generate(v)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}

func (g *Generator) forType(t reflect.Type) (*JSONSchema, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		return g.forStruct(t)
	case reflect.Slice, reflect.Array:
		items, err := g.forType(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("array items: %w", err)
		}
		return &JSONSchema{Type: "array", Items: items}, nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return nil, fmt.Errorf("map keys must be strings, got %s", t.Key().Kind())
		}
		return &JSONSchema{Type: "object"}, nil
	case reflect.String:
		return &JSONSchema{Type: "string"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &JSONSchema{Type: "integer"}, nil
	case reflect.Float32, reflect.Float64:
		return &JSONSchema{Type: "number"}, nil
	case reflect.Bool:
		return &JSONSchema{Type: "boolean"}, nil
	default:
		return nil, fmt.Errorf("unsupported kind %s", t.Kind())
	}
}

func (g *Generator) forStruct(t reflect.Type) (*JSONSchema, error) {
	closed := false
	s := &JSONSchema{
		Type:                 "object",
		Properties:           make(map[string]*JSONSchema),
		AdditionalProperties: &closed,
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, ok := g.fieldName(f)
		if !ok {
			continue
		}

		fs, err := g.forType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		fs.Description = f.Tag.Get("description")
		if applyConstraints(f.Tag.Get("schema"), fs) {
			s.Required = append(s.Required, name)
		}
		s.Properties[name] = fs
	}

	return s, nil
}

func (g *Generator) fieldName(f reflect.StructField) (string, bool) {
	tag := f.Tag.Get(g.TagName)
	if tag == "-" {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		name = strings.ToLower(f.Name)
	}
	return name, true
}

// applyConstraints reports whether the tag marks the field required.
func applyConstraints(tag string, s *JSONSchema) bool {
	required := false
	for _, part := range strings.Split(tag, ",") {
		key, val, _ := strings.Cut(strings.TrimSpace(part), "=")
		switch key {
		case "required":
			required = true
		case "enum":
			s.Enum = strings.Split(val, "|")
		case "minLength":
			if n, err := strconv.Atoi(val); err == nil {
				s.MinLength = &n
			}
		case "minItems":
			if n, err := strconv.Atoi(val); err == nil {
				s.MinItems = &n
			}
		}
	}
	return required
}
