package analysis

import (
	"testing"
)

func TestFormatEntries_SingleEntryTruncatesTime(t *testing.T) {
	t.Parallel()

	got := FormatEntries([]Entry{{
		EntryDate: Text("2024-01-15T10:00:00"),
		Mood:      Text("happy"),
		Content:   Text("Good day"),
	}})
	want := "Date: 2024-01-15\nMood: happy\nContent: Good day\n---"
	if got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func TestFormatEntries_Empty(t *testing.T) {
	t.Parallel()

	if got := FormatEntries(nil); got != "" {
		t.Fatalf("got=%q", got)
	}
	if got := FormatEntries([]Entry{}); got != "" {
		t.Fatalf("got=%q", got)
	}
}

func TestFormatEntries_DefaultsAndOrder(t *testing.T) {
	t.Parallel()

	got := FormatEntries([]Entry{
		{Content: Text("second thoughts")},
		{EntryDate: Text("2024-02-01"), Mood: Text("calm")},
		{EntryDate: Text("2024-02-01"), Mood: Text("calm")},
	})
	want := "Date: Unknown date\nMood: Unknown\nContent: second thoughts\n---\n" +
		"Date: 2024-02-01\nMood: calm\nContent: \n---\n" +
		"Date: 2024-02-01\nMood: calm\nContent: \n---"
	if got != want {
		t.Fatalf("got=%q\nwant=%q", got, want)
	}
}

func TestDecodeEntries_HeterogeneousRecords(t *testing.T) {
	t.Parallel()

	entries, err := DecodeEntries([]byte(`[
		{"entryDate": "2024-01-15T10:00:00.000Z", "mood": null, "content": "slept badly"},
		{"mood": 4, "content": "ok", "extra": {"ignored": true}},
		{}
	]`))
	if err != nil {
		t.Fatalf("DecodeEntries: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len=%d, want 3", len(entries))
	}
	if entries[0].Mood.Set {
		t.Fatalf("null mood should be unset: %+v", entries[0].Mood)
	}
	if entries[1].Mood.Value != "4" || !entries[1].Mood.Set {
		t.Fatalf("numeric mood=%+v", entries[1].Mood)
	}
	if entries[2].EntryDate.Set || entries[2].Content.Set {
		t.Fatalf("empty record should be unset: %+v", entries[2])
	}

	got := FormatEntries(entries[:1])
	if got != "Date: 2024-01-15\nMood: Unknown\nContent: slept badly\n---" {
		t.Fatalf("got=%q", got)
	}
}

func TestDecodeEntries_Rejects(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		`not json`,
		`{"entryDate": "2024-01-01"}`,
		`[{"content": {"nested": 1}}]`,
		`[] []`,
		`[]]`,
		`[{"content":"x"}] }`,
		`[1]`,
		``,
	} {
		if _, err := DecodeEntries([]byte(in)); err == nil {
			t.Fatalf("DecodeEntries(%q) succeeded, want error", in)
		}
	}
}

func TestDecodeEntries_NullIsEmpty(t *testing.T) {
	t.Parallel()

	entries, err := DecodeEntries([]byte(`null`))
	if err != nil {
		t.Fatalf("DecodeEntries: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("entries=%v", entries)
	}
}

func TestDecodeEntries_KeysAreCaseSensitive(t *testing.T) {
	t.Parallel()

	entries, err := DecodeEntries([]byte(`[{"CONTENT": "x", "Mood": "m", "entrydate": "2024-01-01", "content": "kept"}]`))
	if err != nil {
		t.Fatalf("DecodeEntries: %v", err)
	}
	e := entries[0]
	if e.Mood.Set || e.EntryDate.Set {
		t.Fatalf("miscased keys should be ignored: %+v", e)
	}
	if e.Content.Value != "kept" {
		t.Fatalf("content=%+v", e.Content)
	}
	if got := FormatEntries(entries); got != "Date: Unknown date\nMood: Unknown\nContent: kept\n---" {
		t.Fatalf("got=%q", got)
	}
}
