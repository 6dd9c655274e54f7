package segment

import (
	"slices"
)

// Role names the font a run of text must be drawn with.
type Role int

const (
	RoleDefault Role = iota
	RolePhonetic
	RoleMath
)

func (r Role) String() string {
	switch r {
	case RolePhonetic:
		return "phonetic"
	case RoleMath:
		return "math"
	default:
		return "default"
	}
}

// Segment is a run of text rendered with a single font role.
type Segment struct {
	Text string
	Role Role
}

// specials are runes that always form a segment of their own.
var specials = map[rune]Role{
	'ⵐ': RolePhonetic, // half-sharp, Tifinagh block
	'⩨': RoleMath,     // sesquisharp, math block
	'ȸ': RoleDefault,  // half-flat
	'𝄫': RoleDefault,  // double flat
	'#': RoleDefault,
	'b': RoleDefault,
	'/': RoleDefault,
}

// RoleOf returns the role a rune needs and whether it is a special rune.
func RoleOf(r rune) (Role, bool) {
	role, ok := specials[r]
	return role, ok
}

// Specials returns the special runes assigned to role, in code point order.
func Specials(role Role) string {
	var rs []rune
	for r, rl := range specials {
		if rl == role {
			rs = append(rs, r)
		}
	}
	slices.Sort(rs)
	return string(rs)
}

// Split breaks s into runs at special runes. Every special rune becomes a
// one-rune segment tagged with its role; text between them becomes
// RoleDefault segments. Joining the texts in order yields s.
func Split(s string) []Segment {
	var out []Segment
	start := 0
	for i, r := range s {
		role, ok := specials[r]
		if !ok {
			continue
		}
		if start < i {
			out = append(out, Segment{Text: s[start:i], Role: RoleDefault})
		}
		end := i + len(string(r))
		out = append(out, Segment{Text: s[i:end], Role: role})
		start = end
	}
	if start < len(s) {
		out = append(out, Segment{Text: s[start:], Role: RoleDefault})
	}
	return out
}

// Join concatenates segment texts.
func Join(segs []Segment) string {
	n := 0
	for _, sg := range segs {
		n += len(sg.Text)
	}
	b := make([]byte, 0, n)
	for _, sg := range segs {
		b = append(b, sg.Text...)
	}
	return string(b)
}
