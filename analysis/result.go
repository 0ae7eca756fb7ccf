package analysis

import (
	"bytes"
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Result is the JSON object produced by one analysis call. Keys keep the
// order the model emitted them in; metadata keys are appended.
type Result struct {
	*orderedmap.OrderedMap[string, any]
}

// NewResult returns an empty Result.
func NewResult() Result {
	return Result{OrderedMap: orderedmap.New[string, any]()}
}

// StringValue returns the string value at key, or "" when absent or not a string.
func (r Result) StringValue(key string) string {
	v, ok := r.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Keys returns the keys in order.
func (r Result) Keys() []string {
	keys := make([]string, 0, r.Len())
	for pair := r.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// MarshalJSON writes the keys in order without HTML-escaping values, so model
// text keeps its <, > and & characters.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.OrderedMap == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for pair := r.Oldest(); pair != nil; pair = pair.Next() {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		if err := encodeRaw(&buf, pair.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeRaw(&buf, pair.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeRaw(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}

const (
	keyError             = "error"
	keySummary           = "summary"
	keyRiskLevel         = "risk_level"
	keyFollowUpSuggested = "follow_up_suggested"
	keyAnalysisMode      = "analysis_mode"
	keyAnalyzedCount     = "analyzed_entries_count"
	keyAnalysisDate      = "analysis_date"

	riskUnknown = "unknown"
)

// Envelope builds the degraded result returned on a handled failure.
func Envelope(message, summary string, followUp bool) Result {
	r := NewResult()
	r.Set(keyError, message)
	r.Set(keySummary, summary)
	r.Set(keyRiskLevel, riskUnknown)
	r.Set(keyFollowUpSuggested, followUp)
	return r
}

func (r Result) stamp(mode Mode, count int, date string) {
	r.Set(keyAnalysisMode, mode.Label())
	r.Set(keyAnalyzedCount, count)
	r.Set(keyAnalysisDate, date)
}
