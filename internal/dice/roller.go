package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=dicemock github.com/KirkDiggler/rpg-toolkit/dice Roller

import (
	"fmt"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"
)

// Tuning selects the pitch die: 12 or 24 equal divisions of the octave.
type Tuning int

const (
	Tuning12 Tuning = 12
	Tuning24 Tuning = 24
)

// ParseTuning maps a raw toggle value to a Tuning. Anything other than 24 is 12.
func ParseTuning(v int) Tuning {
	if v == int(Tuning24) {
		return Tuning24
	}
	return Tuning12
}

// PitchDie returns the pitch die for the tuning.
func (t Tuning) PitchDie() Die {
	if t == Tuning24 {
		return Pitch24
	}
	return Pitch12
}

// RollResult is the outcome of one roll, one face per die.
type RollResult struct {
	Duration     Face   `json:"duration"`
	Pitch        Face   `json:"pitch"`
	Chord        Face   `json:"chord"`
	Augmentation Face   `json:"augmentation"`
	Tuning       Tuning `json:"tet"`
}

func (r RollResult) String() string {
	return fmt.Sprintf("duration=%s pitch=%s chord=%s augmentation=%s (%d-TET)",
		r.Duration, r.Pitch, r.Chord, r.Augmentation, r.Tuning)
}

// Roller draws faces using a toolkit dice roller.
// It holds no draw state of its own; every call is independent.
type Roller struct {
	src toolkitdice.Roller
}

// NewRoller wraps src. A nil src uses the toolkit's default roller.
func NewRoller(src toolkitdice.Roller) *Roller {
	if src == nil {
		src = toolkitdice.DefaultRoller
	}
	return &Roller{src: src}
}

// Draw picks one face of d, each face with probability 1/d.Len().
func (r *Roller) Draw(d Die) (Face, error) {
	n := len(d.faces)
	if n == 0 {
		return "", fmt.Errorf("dice: draw %s: die has no faces", d.name)
	}
	v, err := r.src.Roll(n)
	if err != nil {
		return "", fmt.Errorf("dice: draw %s: %w", d.name, err)
	}
	if v < 1 || v > n {
		return "", fmt.Errorf("dice: draw %s: roller returned %d for d%d", d.name, v, n)
	}
	return d.faces[v-1], nil
}

// RollAll draws every die once. The tuning value picks the pitch die and
// falls back to 12-TET for anything but 24.
func (r *Roller) RollAll(tuning int) (RollResult, error) {
	t := ParseTuning(tuning)
	res := RollResult{Tuning: t}

	var err error
	if res.Duration, err = r.Draw(Duration); err != nil {
		return RollResult{}, err
	}
	if res.Augmentation, err = r.Draw(Augmentation); err != nil {
		return RollResult{}, err
	}
	if res.Chord, err = r.Draw(Chord); err != nil {
		return RollResult{}, err
	}
	if res.Pitch, err = r.Draw(t.PitchDie()); err != nil {
		return RollResult{}, err
	}
	return res, nil
}
