package resolve

import (
	"path"
	"strconv"
	"strings"

	"github.com/srlehn/ninepatch/internal/consts"
	"github.com/srlehn/ninepatch/patch"
)

// Name is a parsed asset file name, e.g. "button-pressed@2x.9.png".
type Name struct {
	Base      string  // "button-pressed"
	Density   float64 // 2
	NinePatch bool    // true
	Ext       string  // ".png"
}

// ParseName splits an asset file name into its parts.
// Directories are stripped. A missing or malformed density suffix
// yields a density of 1.
func ParseName(name string) Name {
	name = path.Base(strings.ReplaceAll(name, `\`, `/`))
	n := Name{Density: 1}
	n.Ext = path.Ext(name)
	stem := strings.TrimSuffix(name, n.Ext)
	if s, ok := strings.CutSuffix(stem, consts.NinePatchMarker); ok {
		n.NinePatch = true
		stem = s
	}
	if i := strings.LastIndex(stem, consts.DensityPrefix); i > 0 {
		if d, ok := parseDensity(stem[i+len(consts.DensityPrefix):]); ok {
			n.Density = d
			stem = stem[:i]
		}
	}
	n.Base = stem
	return n
}

func parseDensity(s string) (float64, bool) {
	s, ok := strings.CutSuffix(s, consts.DensitySuffix)
	if !ok || len(s) == 0 {
		return 0, false
	}
	d, err := strconv.ParseFloat(s, 64)
	if err != nil || !patch.ValidDensity(d) {
		return 0, false
	}
	return d, true
}

// String formats the name back into a file name.
func (n Name) String() string {
	var b strings.Builder
	b.WriteString(n.Base)
	if n.Density > 1 {
		b.WriteString(consts.DensityPrefix)
		b.WriteString(strconv.FormatFloat(n.Density, 'f', -1, 64))
		b.WriteString(consts.DensitySuffix)
	}
	if n.NinePatch {
		b.WriteString(consts.NinePatchMarker)
	}
	b.WriteString(n.Ext)
	return b.String()
}

// State is a set of widget states. An asset for a state is named with the
// state suffix appended to the base name, e.g. "button-pressed".
type State uint8

const (
	Focused State = 1 << iota
	Hover
	Pressed
	Checked

	Normal State = 0
)

// priority order of the state suffixes
var states = []struct {
	state  State
	suffix string
}{
	{Checked, consts.StateChecked},
	{Pressed, consts.StatePressed},
	{Hover, consts.StateHover},
	{Focused, consts.StateFocused},
}

func (s State) String() string {
	if s == Normal {
		return `normal`
	}
	var parts []string
	for _, st := range states {
		if s&st.state != 0 {
			parts = append(parts, strings.TrimPrefix(st.suffix, `-`))
		}
	}
	return strings.Join(parts, `|`)
}

// ParseState parses a state set like "checked|hover".
// The empty string and "normal" are Normal.
func ParseState(s string) (State, bool) {
	var st State
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == `normal` || len(part) == 0 {
			continue
		}
		var found bool
		for _, c := range states {
			if `-`+part == c.suffix {
				st |= c.state
				found = true
				break
			}
		}
		if !found {
			return Normal, false
		}
	}
	return st, true
}

// Candidates lists the base names to try for base in state s, most
// specific first. The plain base name is always last.
func Candidates(base string, s State) []string {
	c := make([]string, 0, len(states)+1)
	for _, st := range states {
		if s&st.state != 0 {
			c = append(c, base+st.suffix)
		}
	}
	return append(c, base)
}
