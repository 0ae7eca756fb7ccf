package analysis

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/theimaginaryfoundation/diary-lens/analysis/fileutils"
)

func TestParseResponse_PreservesKeyOrder(t *testing.T) {
	t.Parallel()

	r, err := ParseResponse("\n  {\"summary\": \"s\", \"risk_level\": \"low\", \"mood_trends\": {\"overall_trend\": \"stable\"}, \"follow_up_suggested\": false}\n")
	if err != nil {
		t.Fatalf("ParseResponse: %v", err)
	}
	want := []string{"summary", "risk_level", "mood_trends", "follow_up_suggested"}
	if got := r.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("keys=%v want=%v", got, want)
	}
	trends, ok := r.Get("mood_trends")
	if !ok {
		t.Fatalf("missing mood_trends")
	}
	if m, ok := trends.(map[string]any); !ok || m["overall_trend"] != "stable" {
		t.Fatalf("mood_trends=%#v", trends)
	}
	if v, _ := r.Get("follow_up_suggested"); v != false {
		t.Fatalf("follow_up_suggested=%#v", v)
	}
}

func TestParseResponse_NoSchemaValidation(t *testing.T) {
	t.Parallel()

	r, err := ParseResponse(`{"unexpected": 1}`)
	if err != nil {
		t.Fatalf("ParseResponse: %v", err)
	}
	if r.Len() != 1 {
		t.Fatalf("len=%d", r.Len())
	}
}

func TestParseResponse_Rejects(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"",
		"   ",
		"Here is the analysis: {\"summary\": \"s\"}",
		"```json\n{\"summary\": \"s\"}\n```",
		`{"summary": "s"`,
		`["summary"]`,
		`"summary"`,
		`{"a": 1} {"b": 2}`,
	} {
		_, err := ParseResponse(in)
		if err == nil {
			t.Fatalf("ParseResponse(%q) succeeded, want error", in)
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("ParseResponse(%q) err=%T, want *ParseError", in, err)
		}
	}
}

func TestResultMarshal_KeepsOrderAndHTMLCharacters(t *testing.T) {
	t.Parallel()

	r, err := ParseResponse(`{"summary": "<ok> & fine", "risk_level": "low", "mood_trends": {"b": 1, "a": "x<y"}}`)
	if err != nil {
		t.Fatalf("ParseResponse: %v", err)
	}
	r.stamp(ModeCBT, 3, "2025-03-01T12:00:00.000000Z")

	b, err := r.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	want := `{"summary":"<ok> & fine","risk_level":"low","mood_trends":{"a":"x<y","b":1},` +
		`"analysis_mode":"CBT","analyzed_entries_count":3,"analysis_date":"2025-03-01T12:00:00.000000Z"}`
	if string(b) != want {
		t.Fatalf("got=%s\nwant=%s", b, want)
	}

	pretty, err := fileutils.MarshalPretty(r)
	if err != nil {
		t.Fatalf("MarshalPretty: %v", err)
	}
	if !strings.Contains(string(pretty), `"summary": "<ok> & fine"`) {
		t.Fatalf("pretty output escaped: %s", pretty)
	}
}

func TestResultMarshal_Empty(t *testing.T) {
	t.Parallel()

	b, err := NewResult().MarshalJSON()
	if err != nil || string(b) != "{}" {
		t.Fatalf("b=%s err=%v", b, err)
	}
}
