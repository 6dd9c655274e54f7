package segment

import (
	"testing"

	"chance-dice/internal/dice"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Segment
	}{
		{
			name: "sesquisharp",
			in:   "C⩨/Dd",
			want: []Segment{
				{"C", RoleDefault},
				{"⩨", RoleMath},
				{"/", RoleDefault},
				{"Dd", RoleDefault},
			},
		},
		{
			name: "half sharp and half flat",
			in:   "Cⵐ/Dȸ",
			want: []Segment{
				{"C", RoleDefault},
				{"ⵐ", RolePhonetic},
				{"/", RoleDefault},
				{"D", RoleDefault},
				{"ȸ", RoleDefault},
			},
		},
		{
			name: "sharp and flat",
			in:   "C#/Db",
			want: []Segment{
				{"C", RoleDefault},
				{"#", RoleDefault},
				{"/", RoleDefault},
				{"D", RoleDefault},
				{"b", RoleDefault},
			},
		},
		{
			name: "plain",
			in:   "C",
			want: []Segment{{"C", RoleDefault}},
		},
		{
			name: "adjacent specials",
			in:   "𝄫#",
			want: []Segment{{"𝄫", RoleDefault}, {"#", RoleDefault}},
		},
		{
			name: "empty",
			in:   "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.in))
		})
	}
}

func TestSplit_RoundTripsEveryPitchFace(t *testing.T) {
	for _, die := range []dice.Die{dice.Pitch12, dice.Pitch24} {
		for _, f := range die.Faces() {
			segs := Split(string(f))
			assert.Equal(t, string(f), Join(segs), "face %q", f)
			for _, sg := range segs {
				assert.NotEmpty(t, sg.Text)
			}
		}
	}
}

func TestSplit_RoundTripsArbitraryText(t *testing.T) {
	inputs := []string{
		"abcdef",
		"ⵐⵐⵐ",
		"x⩨y⩨z",
		"ünïcödé/b#",
		"\xff\xfeC#",
	}
	for _, in := range inputs {
		assert.Equal(t, in, Join(Split(in)), "input %q", in)
	}
}

func TestRoleOf(t *testing.T) {
	role, ok := RoleOf('ⵐ')
	assert.True(t, ok)
	assert.Equal(t, RolePhonetic, role)

	role, ok = RoleOf('⩨')
	assert.True(t, ok)
	assert.Equal(t, RoleMath, role)

	_, ok = RoleOf('d')
	assert.False(t, ok)
}

func TestSpecials(t *testing.T) {
	assert.Equal(t, "ⵐ", Specials(RolePhonetic))
	assert.Equal(t, "⩨", Specials(RoleMath))
	assert.Equal(t, "#/bȸ𝄫", Specials(RoleDefault))
}
