package analysis

import (
	"fmt"
	"strings"
)

// Mode selects the therapeutic framework used for an analysis.
type Mode int

const (
	ModeCBT Mode = iota
	ModeMBT
)

var modeTokens = map[Mode]string{
	ModeCBT: "cbt",
	ModeMBT: "mbt",
}

// Modes lists every supported mode.
func Modes() []Mode {
	return []Mode{ModeCBT, ModeMBT}
}

// ParseMode matches a mode token case-insensitively. Unknown tokens are rejected.
func ParseMode(s string) (Mode, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	for m, t := range modeTokens {
		if t == token {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown analysis mode %q (want cbt or mbt)", s)
}

// String returns the lowercase mode token.
func (m Mode) String() string {
	if t, ok := modeTokens[m]; ok {
		return t
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Label is the uppercase token reported as analysis_mode.
func (m Mode) Label() string {
	return strings.ToUpper(m.String())
}
