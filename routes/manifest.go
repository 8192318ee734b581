package routes

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vitalvas/routemap/schema"
)

// manifest is the YAML form of a route table.
//
//	routes:
//	  - path: /posts/details/:postId/:commentId
//	    metadata:
//	      section: posts
//	    search:
//	      - name: query
//	        type: string
//	        default: hello world
//	      - name: page
//	        type: int
//	        required: false
type manifest struct {
	Routes []manifestRoute `yaml:"routes"`
}

type manifestRoute struct {
	Path     string          `yaml:"path"`
	Metadata map[string]any  `yaml:"metadata"`
	Search   []manifestParam `yaml:"search"`
}

type manifestParam struct {
	Name     string   `yaml:"name"`
	Type     string   `yaml:"type"`
	Default  any      `yaml:"default"`
	Required *bool    `yaml:"required"`
	Enum     []string `yaml:"enum"`
}

// Load registers every route declared in a YAML route table. Search
// params are declared as an ordered list, so the serialization order of
// built query strings follows the manifest. Load stops at the first
// invalid or duplicate route, leaving earlier routes registered.
func (r *Registry) Load(data []byte) error {
	if r.frozen {
		return ErrFrozen
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("routes: parsing manifest: %w", err)
	}

	for _, route := range m.Routes {
		var opts []RouteOption
		if route.Metadata != nil {
			opts = append(opts, WithMetadata(route.Metadata))
		}

		if len(route.Search) > 0 {
			fields := make([]schema.Field, 0, len(route.Search))
			for _, p := range route.Search {
				f, err := p.field()
				if err != nil {
					return err
				}
				fields = append(fields, f)
			}
			opts = append(opts, WithSearchParams(schema.Object(fields...)))
		}

		if err := r.Add(route.Path, opts...); err != nil {
			return err
		}
	}

	return nil
}

// field converts a manifest param declaration to a schema field.
func (p manifestParam) field() (schema.Field, error) {
	var f schema.Field
	switch p.Type {
	case "", "string":
		f = schema.String(p.Name)
	case "int":
		f = schema.Int(p.Name)
	case "float":
		f = schema.Float(p.Name)
	case "bool":
		f = schema.Bool(p.Name)
	case "uuid":
		f = schema.UUID(p.Name)
	default:
		return schema.Field{}, fmt.Errorf("routes: unknown search param type %q for %q", p.Type, p.Name)
	}

	if len(p.Enum) > 0 {
		f = f.Enum(p.Enum...)
	}
	if p.Default != nil {
		f = f.Default(p.Default)
	}
	if p.Required != nil && !*p.Required {
		f = f.Optional()
	}

	return f, nil
}
