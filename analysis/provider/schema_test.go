package provider

import (
	"reflect"
	"testing"
)

type schemaProbe struct {
	Name  string   `json:"name"`
	Tags  []string `json:"tags"`
	Inner struct {
		Level string `json:"level" jsonschema:"enum=low,enum=high"`
		Score int    `json:"score"`
	} `json:"inner"`
	Items []struct {
		Text string `json:"text"`
	} `json:"items"`
}

func TestGenerateSchema_ClosesEveryObject(t *testing.T) {
	t.Parallel()

	s, err := GenerateSchema[schemaProbe]()
	if err != nil {
		t.Fatalf("GenerateSchema: %v", err)
	}
	if _, ok := s["$schema"]; ok {
		t.Fatalf("$schema should be removed")
	}
	if s["additionalProperties"] != false {
		t.Fatalf("root additionalProperties=%v", s["additionalProperties"])
	}
	if got := s["required"]; !reflect.DeepEqual(got, []string{"inner", "items", "name", "tags"}) {
		t.Fatalf("required=%v", got)
	}

	props := s["properties"].(map[string]any)
	inner := props["inner"].(map[string]any)
	if inner["additionalProperties"] != false {
		t.Fatalf("inner not closed: %v", inner)
	}
	if got := inner["required"]; !reflect.DeepEqual(got, []string{"level", "score"}) {
		t.Fatalf("inner required=%v", got)
	}
	level := inner["properties"].(map[string]any)["level"].(map[string]any)
	if !reflect.DeepEqual(level["enum"], []any{"low", "high"}) {
		t.Fatalf("level enum=%v", level["enum"])
	}

	item := props["items"].(map[string]any)["items"].(map[string]any)
	if item["additionalProperties"] != false {
		t.Fatalf("array item not closed: %v", item)
	}
}
