package provider

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/invopop/jsonschema"
)

// GenerateSchema reflects T into a JSON schema that OpenAI accepts in strict
// mode: every object is closed and lists all of its properties as required.
func GenerateSchema[T any]() (map[string]any, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	schema := reflector.Reflect(v)
	b, err := schema.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}
	// Strict mode rejects these keywords at the top level.
	delete(m, "$schema")
	delete(m, "$id")
	closeObjects(m)
	return m, nil
}

// MustGenerateSchema is GenerateSchema for package-level schema variables.
func MustGenerateSchema[T any]() map[string]any {
	m, err := GenerateSchema[T]()
	if err != nil {
		panic(err)
	}
	return m
}

const (
	propertiesKey           = "properties"
	additionalPropertiesKey = "additionalProperties"
	typeKey                 = "type"
	requiredKey             = "required"
	itemsKey                = "items"
)

func closeObjects(schema map[string]any) {
	properties, hasProps := schema[propertiesKey].(map[string]any)
	if t, ok := schema[typeKey].(string); ok && t == "object" {
		schema[additionalPropertiesKey] = false
		if hasProps && len(properties) > 0 {
			required := make([]string, 0, len(properties))
			for name := range properties {
				required = append(required, name)
			}
			sort.Strings(required)
			schema[requiredKey] = required
		}
	}
	for _, prop := range properties {
		if sub, ok := prop.(map[string]any); ok {
			closeObjects(sub)
		}
	}
	if items, ok := schema[itemsKey].(map[string]any); ok {
		closeObjects(items)
	}
}
