package analysis

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Entry is one diary record as produced by the diary service.
// Only its position in the input identifies it.
type Entry struct {
	EntryDate Field `json:"entryDate"`
	Mood      Field `json:"mood"`
	Content   Field `json:"content"`
}

// UnmarshalJSON reads the record keys exactly as spelled; other keys are ignored.
func (e *Entry) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*e = Entry{}
	for key, dst := range map[string]*Field{
		"entryDate": &e.EntryDate,
		"mood":      &e.Mood,
		"content":   &e.Content,
	} {
		v, ok := raw[key]
		if !ok {
			continue
		}
		if err := dst.UnmarshalJSON(v); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// Field is an optional scalar text value. Absent keys and JSON null decode as unset.
type Field struct {
	Value string
	Set   bool
}

// Text returns a set Field holding s.
func Text(s string) Field {
	return Field{Value: s, Set: true}
}

// Or returns the value, or def when the field is unset.
func (f Field) Or(def string) string {
	if !f.Set {
		return def
	}
	return f.Value
}

func (f *Field) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = Field{}
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = Text(s)
	case '{', '[':
		return fmt.Errorf("expected a string, got %s", kindOf(b[0]))
	default:
		// Numbers and booleans keep their literal JSON text.
		*f = Text(string(b))
	}
	return nil
}

func (f Field) MarshalJSON() ([]byte, error) {
	if !f.Set {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

func kindOf(c byte) string {
	if c == '{' {
		return "object"
	}
	return "array"
}

// DecodeEntries parses a JSON array of diary entries.
func DecodeEntries(b []byte) ([]Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	var entries []Entry
	if err := dec.Decode(&entries); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after entries array")
	}
	return entries, nil
}

const (
	unknownDate = "Unknown date"
	unknownMood = "Unknown"
	entryRule   = "---"
)

// FormatEntries renders entries, in order, into the text block embedded in a prompt.
func FormatEntries(entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Date: %s\nMood: %s\nContent: %s\n%s",
			entryDay(e.EntryDate), e.Mood.Or(unknownMood), e.Content.Or(""), entryRule)
	}
	return b.String()
}

// entryDay drops the time component of an ISO-8601 timestamp.
func entryDay(f Field) string {
	if !f.Set {
		return unknownDate
	}
	day, _, _ := strings.Cut(f.Value, "T")
	return day
}
